package render

import (
	"image"

	"bamboo-weaver/internal/core"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// Frame is an offscreen canvas backed by an RGBA image.
type Frame struct {
	size    core.Size
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
}

// NewFrame allocates a frame for the given viewport. Dimensions below one
// pixel are clamped.
func NewFrame(size core.Size) *Frame {
	size.W = max(size.W, 1)
	size.H = max(size.H, 1)
	backend := softwarebackend.New(size.W, size.H)
	cv := canvas.New(backend)
	cv.SetLineCap(canvas.Butt)
	cv.SetLineJoin(canvas.Round)
	return &Frame{size: size, backend: backend, cv: cv}
}

// Size reports the frame dimensions.
func (f *Frame) Size() core.Size { return f.size }

// Surface returns the canvas to paint on.
func (f *Frame) Surface() Surface { return f.cv }

// Image returns the pixels painted so far. The image is reused between
// frames; copy it before handing it to another goroutine.
func (f *Frame) Image() *image.RGBA { return f.backend.Image }

// Clone returns a copy of the current pixels.
func (f *Frame) Clone() *image.RGBA {
	src := f.backend.Image
	out := image.NewRGBA(src.Rect)
	copy(out.Pix, src.Pix)
	return out
}
