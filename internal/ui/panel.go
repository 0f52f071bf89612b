//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	interpretLabel = "Interpret Pattern"
	loadingLabel   = "Consulting the Master..."
)

// ControlPanel is the bottom bar holding the interpret button.
type ControlPanel struct {
	p      painter
	button image.Rectangle
}

// NewControlPanel constructs the panel.
func NewControlPanel() *ControlPanel {
	return &ControlPanel{p: newPainter()}
}

// Update lays the button out for the screen size and reports whether it was
// clicked. Clicks are ignored while loading.
func (c *ControlPanel) Update(screenW, screenH int, loading bool) bool {
	w, h := 220, 40
	area := image.Rect(0, screenH-h-32, screenW, screenH-32)
	c.button = centeredRect(area, w, h)
	if loading || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return pointInRect(mx, my, c.button)
}

// Draw paints the button with a loading label while a request is pending.
func (c *ControlPanel) Draw(screen *ebiten.Image, loading bool) {
	if c.button.Empty() {
		return
	}
	bg, label := color.Color(inkColor), interpretLabel
	if loading {
		bg, label = color.RGBA{R: 0x58, G: 0x81, B: 0x57, A: 0xC0}, loadingLabel
	}
	c.p.fill(screen, c.button, bg)
	c.p.textCentered(screen, label, c.button, paperColor)
	c.p.textCentered(screen, "[I] interpret  [C] capture  [R] reset  [H] panel", c.button.Add(image.Pt(0, 30)), mutedColor)
}
