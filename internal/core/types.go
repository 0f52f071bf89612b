package core

// Size describes the dimensions of the viewport in canvas pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// MotionEvent marks a luminance change detected at a canvas coordinate.
// Events live for a single tick.
type MotionEvent struct {
	X, Y     float64
	Strength float64
}

// Sim defines the contract the window loop drives each tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Resize(size Size)
	Inject(events []MotionEvent)
	Step()
}
