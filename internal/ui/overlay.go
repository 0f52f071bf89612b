//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Status is the per-frame state the overlay reports.
type Status struct {
	Capturing bool
	CameraOn  bool
	Notice    string
	Events    int
	Ticks     uint64
}

// Overlay draws the capture indicator, the error toast and optional debug
// statistics on top of the weave.
type Overlay struct {
	p          painter
	showStats  bool
	phase      float64
	noticeRect image.Rectangle
	closeRect  image.Rectangle
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(showStats bool) *Overlay {
	return &Overlay{p: newPainter(), showStats: showStats}
}

// Update advances the indicator pulse and handles the stats toggle. It
// reports whether the notice close button was clicked.
func (o *Overlay) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStats = !o.showStats
	}
	o.phase += 2 * math.Pi / 90
	if o.phase > 2*math.Pi {
		o.phase -= 2 * math.Pi
	}
	if o.closeRect.Empty() || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return pointInRect(mx, my, o.closeRect)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	o.drawIndicator(screen, st)
	o.drawNotice(screen, st.Notice)
	if o.showStats {
		line := fmt.Sprintf("tick %d  events %d  fps %.0f", st.Ticks, st.Events, ebiten.ActualFPS())
		o.p.text(screen, line, 16, screen.Bounds().Dy()-16, mutedColor)
	}
}

func (o *Overlay) drawIndicator(screen *ebiten.Image, st Status) {
	label := "Motion Active"
	dotCol := color.RGBA{R: 0x60, G: 0x99, B: 0x66, A: 0xff}
	switch {
	case !st.CameraOn:
		label = "No Camera"
		dotCol = color.RGBA{R: 0xB0, G: 0xA6, B: 0x95, A: 0xff}
	case !st.Capturing:
		label = "Motion Paused"
		dotCol = color.RGBA{R: 0xB0, G: 0xA6, B: 0x95, A: 0xff}
	}
	pill := image.Rect(16, 16, 16+34+o.p.textWidth(label), 16+26)
	o.p.fill(screen, pill, color.RGBA{R: 0xF2, G: 0xF0, B: 0xE4, A: 0xD0})

	size := 8.0
	if st.CameraOn && st.Capturing {
		size += 2 * math.Sin(o.phase)
	}
	o.p.dot(screen, float64(pill.Min.X+14), float64(pill.Min.Y+pill.Dy()/2), size, dotCol)
	o.p.text(screen, label, pill.Min.X+26, pill.Min.Y+18, inkColor)
}

func (o *Overlay) drawNotice(screen *ebiten.Image, notice string) {
	if notice == "" {
		o.noticeRect, o.closeRect = image.Rectangle{}, image.Rectangle{}
		return
	}
	b := screen.Bounds()
	lines := wrapText(notice, 48)
	w := 40 + 7*48
	h := 20 + 16*len(lines)
	o.noticeRect = image.Rect(b.Dx()-w-16, b.Dy()-h-16, b.Dx()-16, b.Dy()-16)
	o.closeRect = image.Rect(o.noticeRect.Max.X-22, o.noticeRect.Min.Y+4, o.noticeRect.Max.X-4, o.noticeRect.Min.Y+22)

	o.p.fill(screen, o.noticeRect, color.RGBA{R: 0xF2, G: 0xE4, B: 0xE4, A: 0xF0})
	o.p.fill(screen, image.Rect(o.noticeRect.Min.X, o.noticeRect.Min.Y, o.noticeRect.Min.X+4, o.noticeRect.Max.Y), alertColor)
	for i, line := range lines {
		o.p.text(screen, line, o.noticeRect.Min.X+14, o.noticeRect.Min.Y+22+16*i, alertColor)
	}
	o.p.textCentered(screen, "x", o.closeRect, alertColor)
}
