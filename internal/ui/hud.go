//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"bamboo-weaver/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Tunable is a simulation whose parameters the HUD can show and adjust.
type Tunable interface {
	Name() string
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

// HUD renders a translucent parameter panel in the top-right corner.
type HUD struct {
	target  Tunable
	width   int
	visible bool
	title   string
	origin  image.Point

	controls []hudControlState
	p        painter
}

type hudControlState struct {
	control  core.ParameterControl
	value    float64
	label    string
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	controlsTop    = panelPadding + headerBaseline + 12
)

// NewHUD constructs a HUD of the given panel width.
func NewHUD(target Tunable, width int, visible bool) *HUD {
	h := &HUD{target: target, width: max(width, 0), visible: visible, p: newPainter()}
	h.title = fmt.Sprintf("%s controls", strings.ToLower(target.Name()))
	controls := target.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i] = hudControlState{control: ctrl, label: "--", top: top, minusRect: minus, plusRect: plus}
	}
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Height returns the panel height in pixels.
func (h *HUD) Height() int {
	return controlsTop + len(h.controls)*lineHeight + panelPadding
}

// Contains reports whether a screen point falls inside the visible panel.
func (h *HUD) Contains(x, y int) bool {
	if !h.visible {
		return false
	}
	return pointInRect(x, y, image.Rect(h.origin.X, h.origin.Y, h.origin.X+h.width, h.origin.Y+h.Height()))
}

// Update refreshes the values and applies +/- clicks. screenW anchors the
// panel to the right edge.
func (h *HUD) Update(screenW int) {
	if !h.visible {
		return
	}
	h.origin = image.Pt(screenW-h.width-panelPadding, panelPadding)
	h.refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px, py := mx-h.origin.X, my-h.origin.Y
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case pointInRect(px, py, state.minusRect):
			h.adjust(state, -1)
			return
		case pointInRect(px, py, state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) refresh() {
	snap := h.target.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.label = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.value = v
		state.label = formatValue(state.control, v)
		state.hasValue = true
	}
}

func (h *HUD) adjust(state *hudControlState, dir int) {
	target, ok := stepTarget(state.control, state.value, dir)
	if !ok {
		return
	}
	var applied bool
	switch state.control.Type {
	case core.ParamTypeInt:
		applied = h.target.SetIntParameter(state.control.Key, int(target))
	case core.ParamTypeFloat:
		applied = h.target.SetFloatParameter(state.control.Key, target)
	}
	if applied {
		state.value = target
		state.label = formatValue(state.control, target)
	}
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible || h.width <= 0 {
		return
	}
	panel := image.Rect(0, 0, h.width, h.Height()).Add(h.origin)
	h.p.fill(screen, panel, color.RGBA{R: 0xDA, G: 0xD7, B: 0xCD, A: 0xE0})
	h.p.text(screen, h.title, h.origin.X+panelPadding, h.origin.Y+panelPadding+headerBaseline, inkColor)

	for i := range h.controls {
		state := &h.controls[i]
		y := h.origin.Y + state.top + labelBaseline
		h.p.text(screen, state.control.Label, h.origin.X+panelPadding, y, inkColor)

		valueCol := color.Color(inkColor)
		if !state.hasValue {
			valueCol = mutedColor
		}
		minus := state.minusRect.Add(h.origin)
		plus := state.plusRect.Add(h.origin)
		h.p.text(screen, state.label, minus.Min.X-buttonGap-h.p.textWidth(state.label), y, valueCol)

		_, canDec := stepTarget(state.control, state.value, -1)
		_, canInc := stepTarget(state.control, state.value, 1)
		h.drawButton(screen, minus, "-", state.hasValue && canDec)
		h.drawButton(screen, plus, "+", state.hasValue && canInc)
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg, fg := color.Color(sageColor), color.Color(inkColor)
	if !enabled {
		bg = color.RGBA{R: 0xC8, G: 0xC6, B: 0xBC, A: 0xff}
		fg = mutedColor
	}
	h.p.fill(screen, rect, bg)
	h.p.textCentered(screen, label, rect, fg)
}
