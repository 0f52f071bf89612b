//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Blitter uploads frame pixels into an ebiten image and draws it to screen.
type Blitter struct {
	img  *ebiten.Image
	w, h int
}

// NewBlitter allocates the backing texture.
func NewBlitter(w, h int) *Blitter {
	return &Blitter{img: ebiten.NewImage(w, h), w: w, h: h}
}

// Blit copies src onto screen, reallocating the texture when the size changes.
func (b *Blitter) Blit(screen *ebiten.Image, src *image.RGBA) {
	if src == nil {
		return
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w != b.w || h != b.h {
		b.img.Deallocate()
		b.img = ebiten.NewImage(w, h)
		b.w, b.h = w, h
	}
	b.img.WritePixels(src.Pix)
	screen.DrawImage(b.img, nil)
}
