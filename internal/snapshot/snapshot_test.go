package snapshot

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func TestExportIsSquareOpaqueJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 320, 200))
	for x := 0; x < 160; x++ {
		for y := 0; y < 200; y++ {
			src.SetRGBA(x, y, color.RGBA{R: 0x55, G: 0x7C, B: 0x55, A: 0xff})
		}
	}

	data, err := Export(src, DefaultOptions())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("expected 512x512, got %v", b)
	}

	// The transparent right half must come out as the paper colour, not black.
	r, g, b, _ := img.At(480, 256).RGBA()
	if r>>8 < 0xE8 || g>>8 < 0xE6 || b>>8 < 0xDA {
		t.Fatalf("transparent area not flattened onto background: %d,%d,%d", r>>8, g>>8, b>>8)
	}
	r, _, _, _ = img.At(32, 256).RGBA()
	if r>>8 > 0x70 {
		t.Fatalf("opaque area should keep its colour, got red %d", r>>8)
	}
}

func TestExportRejectsEmpty(t *testing.T) {
	if _, err := Export(nil, DefaultOptions()); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
	if _, err := Export(image.NewRGBA(image.Rectangle{}), DefaultOptions()); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage for zero bounds, got %v", err)
	}
}
