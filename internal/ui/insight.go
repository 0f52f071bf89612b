//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"bamboo-weaver/internal/oracle"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const insightWrap = 60

// Insight is the modal showing an interpretation. It fades in and out.
type Insight struct {
	p     painter
	fade  *Fade
	lines []insightLine
	box   image.Rectangle
	close image.Rectangle
}

type insightLine struct {
	text  string
	color color.RGBA
	gap   int
}

// NewInsight constructs a hidden modal animated at fps.
func NewInsight(fps int) *Insight {
	return &Insight{p: newPainter(), fade: NewFade(fps)}
}

// Open shows interp.
func (m *Insight) Open(interp oracle.Interpretation) {
	m.lines = m.lines[:0]
	m.lines = append(m.lines, insightLine{text: interp.Title, color: inkColor, gap: 8})
	for _, l := range wrapText(interp.Poem, insightWrap) {
		m.lines = append(m.lines, insightLine{text: l, color: mutedColor})
	}
	m.lines = append(m.lines, insightLine{text: "Weaving Philosophy", color: inkColor, gap: 14})
	for _, l := range wrapText(interp.Philosophy, insightWrap) {
		m.lines = append(m.lines, insightLine{text: l, color: inkColor})
	}
	m.fade.Show()
}

// IsOpen reports whether the modal is shown or fading in.
func (m *Insight) IsOpen() bool { return m.fade.Shown() }

// Update animates the fade and reports whether the user closed the modal by
// clicking the close button or outside the box, or pressing Escape.
func (m *Insight) Update(screenW, screenH int) bool {
	m.fade.Update()
	if !m.fade.Shown() {
		return false
	}
	h := 80
	for _, l := range m.lines {
		h += 16 + l.gap
	}
	m.box = centeredRect(image.Rect(0, 0, screenW, screenH), 7*insightWrap+48, h)
	m.close = image.Rect(m.box.Max.X-28, m.box.Min.Y+8, m.box.Max.X-8, m.box.Min.Y+28)

	closed := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		closed = closed || pointInRect(mx, my, m.close) || !pointInRect(mx, my, m.box)
	}
	if closed {
		m.fade.Hide()
	}
	return closed
}

// Draw paints the backdrop and the modal at the current fade opacity.
func (m *Insight) Draw(screen *ebiten.Image) {
	if !m.fade.Visible() {
		return
	}
	a := m.fade.Alpha()
	m.p.fill(screen, screen.Bounds(), withAlpha(color.RGBA{R: 0x34, G: 0x4E, B: 0x41, A: 0x66}, a))
	m.p.fill(screen, m.box, withAlpha(paperColor, a))
	m.p.fill(screen, image.Rect(m.box.Min.X, m.box.Min.Y, m.box.Max.X, m.box.Min.Y+4), withAlpha(sageColor, a))
	m.p.textCentered(screen, "x", m.close, withAlpha(mutedColor, a))

	y := m.box.Min.Y + 48
	for _, l := range m.lines {
		y += l.gap
		m.p.text(screen, l.text, m.box.Min.X+24, y, withAlpha(l.color, a))
		y += 16
	}
}
