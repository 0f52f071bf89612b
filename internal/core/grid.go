package core

// LumaFrame stores per-pixel luminance samples in row-major order.
type LumaFrame struct {
	W, H int
	data []float64
}

// NewLumaFrame allocates a frame with the given dimensions.
func NewLumaFrame(w, h int) *LumaFrame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &LumaFrame{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write samples directly.
func (f *LumaFrame) Values() []float64 { return f.data }

// At returns the luminance at (x, y).
func (f *LumaFrame) At(x, y int) float64 { return f.data[y*f.W+x] }

// Fill converts packed 8-bit RGBA pixels (stride 4*W) into luminance using the
// unweighted mean of the three colour channels.
func (f *LumaFrame) Fill(pix []uint8, stride int) {
	for y := 0; y < f.H; y++ {
		row := y * stride
		for x := 0; x < f.W; x++ {
			i := row + x*4
			if i+2 >= len(pix) {
				f.data[y*f.W+x] = 0
				continue
			}
			f.data[y*f.W+x] = (float64(pix[i]) + float64(pix[i+1]) + float64(pix[i+2])) / 3
		}
	}
}
