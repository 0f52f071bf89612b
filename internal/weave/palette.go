package weave

import "image/color"

// Palette is the colour triple used to paint one strip.
type Palette struct {
	Name      string
	Base      color.RGBA
	Highlight color.RGBA
	Shadow    color.RGBA
}

// Palettes lists the natural bamboo tones strips are painted with.
var Palettes = []Palette{
	{Name: "deep forest", Base: rgb(0x557C55), Highlight: rgb(0x7FA865), Shadow: rgb(0x344E41)},
	{Name: "sage", Base: rgb(0xA3B18A), Highlight: rgb(0xDAD7CD), Shadow: rgb(0x588157)},
	{Name: "fresh green", Base: rgb(0x609966), Highlight: rgb(0x9DC08B), Shadow: rgb(0x40513B)},
	{Name: "aged yellow", Base: rgb(0xE9E3B4), Highlight: rgb(0xF5F5DC), Shadow: rgb(0xB0A695)},
}

var (
	// PaperTop and PaperBottom are the background gradient stops.
	PaperTop    = rgb(0xF2F0E4)
	PaperBottom = rgb(0xE6E2D3)
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}
