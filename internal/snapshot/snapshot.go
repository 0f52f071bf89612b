// Package snapshot encodes rendered frames for the interpretation service.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"bamboo-weaver/internal/render"
	"bamboo-weaver/internal/weave"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// ErrEmptyImage is returned when there is nothing to export.
var ErrEmptyImage = errors.New("snapshot: empty image")

// Options controls the exported image.
type Options struct {
	Size       int
	Background color.RGBA
	Quality    int
}

// DefaultOptions returns a 512x512 JPEG at quality 80 over the paper colour.
func DefaultOptions() Options {
	return Options{Size: 512, Background: weave.PaperTop, Quality: 80}
}

// Export scales img to a square, flattens it onto the background and encodes
// it as JPEG.
func Export(img image.Image, opts Options) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = DefaultOptions().Quality
	}

	scaled := transform.Resize(img, opts.Size, opts.Size, transform.Linear)
	render.Flatten(scaled, opts.Background)

	var buf bytes.Buffer
	if err := imgio.JPEGEncoder(opts.Quality)(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
