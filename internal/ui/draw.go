//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	inkColor   = color.RGBA{R: 0x34, G: 0x4E, B: 0x41, A: 0xff}
	mutedColor = color.RGBA{R: 0x58, G: 0x81, B: 0x57, A: 0xff}
	paperColor = color.RGBA{R: 0xF2, G: 0xF0, B: 0xE4, A: 0xff}
	sageColor  = color.RGBA{R: 0xA3, G: 0xB1, B: 0x8A, A: 0xff}
	alertColor = color.RGBA{R: 0xBC, G: 0x47, B: 0x49, A: 0xff}
)

// painter fills rectangles by stretching a single white pixel.
type painter struct {
	pixel *ebiten.Image
	face  font.Face
}

func newPainter() painter {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return painter{pixel: px, face: basicfont.Face7x13}
}

func (p painter) fill(dst *ebiten.Image, rect image.Rectangle, col color.Color) {
	if rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(p.pixel, op)
}

func (p painter) dot(dst *ebiten.Image, x, y, size float64, col color.Color) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(p.pixel, op)
}

func (p painter) text(dst *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(dst, s, p.face, x, y, col)
}

// textCentered draws s centred inside rect.
func (p painter) textCentered(dst *ebiten.Image, s string, rect image.Rectangle, col color.Color) {
	b := text.BoundString(p.face, s)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(dst, s, p.face, x, y, col)
}

func (p painter) textWidth(s string) int {
	return text.BoundString(p.face, s).Dx()
}
