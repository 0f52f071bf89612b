package motion

import (
	"image"
	"math"
)

// Sweep is a frame source that paints a bright disc moving on a Lissajous
// path over a dark field. It stands in for a camera in headless runs.
type Sweep struct {
	W, H   int
	Radius float64
	Period int

	tick int
}

// NewSweep returns a sweep that loops every period frames.
func NewSweep(w, h, period int) *Sweep {
	if period <= 0 {
		period = 120
	}
	return &Sweep{W: w, H: h, Radius: float64(min(w, h)) / 6, Period: period}
}

// Position returns the disc centre for frame t in frame coordinates.
func (s *Sweep) Position(t int) (float64, float64) {
	phase := 2 * math.Pi * float64(t%s.Period) / float64(s.Period)
	cx := float64(s.W) * (0.5 + 0.35*math.Sin(phase))
	cy := float64(s.H) * (0.5 + 0.3*math.Sin(2*phase))
	return cx, cy
}

// Latest renders the next frame. It is always ready.
func (s *Sweep) Latest() (image.Image, bool) {
	img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	cx, cy := s.Position(s.tick)
	s.tick++
	r2 := s.Radius * s.Radius
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			i := img.PixOffset(x, y)
			v := uint8(24)
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy < r2 {
				v = 230
			}
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 0xff
		}
	}
	return img, true
}
