package render

import (
	"image"
	"image/color"
)

// Flatten composites the premultiplied pixels of img over an opaque
// background in place, leaving every pixel fully opaque.
func Flatten(img *image.RGBA, bg color.RGBA) {
	if img == nil {
		return
	}
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.PixOffset(b.Min.X, y)
		flattenRow(img.Pix[row:row+4*b.Dx()], bg)
	}
}

func flattenRow(buf []byte, bg color.RGBA) {
	for i := 0; i+3 < len(buf); i += 4 {
		a := uint32(buf[i+3])
		if a == 0xff {
			continue
		}
		inv := 0xff - a
		buf[i+0] = uint8(uint32(buf[i+0]) + (uint32(bg.R)*inv+0x7f)/0xff)
		buf[i+1] = uint8(uint32(buf[i+1]) + (uint32(bg.G)*inv+0x7f)/0xff)
		buf[i+2] = uint8(uint32(buf[i+2]) + (uint32(bg.B)*inv+0x7f)/0xff)
		buf[i+3] = 0xff
	}
}
