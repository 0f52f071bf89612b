package render

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"bamboo-weaver/internal/core"
	"bamboo-weaver/internal/weave"
)

type recordingSurface struct {
	w, h  int
	calls []string
}

func (r *recordingSurface) log(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) Width() int                          { return r.w }
func (r *recordingSurface) Height() int                         { return r.h }
func (r *recordingSurface) SetFillStyle(v ...interface{})       { r.log("fill %v", v) }
func (r *recordingSurface) SetStrokeStyle(v ...interface{})     { r.log("strokeStyle %v", v) }
func (r *recordingSurface) SetLineWidth(w float64)              { r.log("lineWidth %g", w) }
func (r *recordingSurface) SetGlobalAlpha(a float64)            { r.log("alpha %g", a) }
func (r *recordingSurface) FillRect(x, y, w, h float64)         { r.log("fillRect %g %g %g %g", x, y, w, h) }
func (r *recordingSurface) BeginPath()                          { r.log("begin") }
func (r *recordingSurface) MoveTo(x, y float64)                 { r.log("moveTo %g %g", x, y) }
func (r *recordingSurface) LineTo(x, y float64)                 { r.log("lineTo %g %g", x, y) }
func (r *recordingSurface) QuadraticCurveTo(a, b, c, d float64) { r.log("quad %g %g %g %g", a, b, c, d) }
func (r *recordingSurface) Stroke()                             { r.log("stroke") }
func (r *recordingSurface) Save()                               { r.log("save") }
func (r *recordingSurface) Restore()                            { r.log("restore") }
func (r *recordingSurface) Translate(x, y float64)              { r.log("translate %g %g", x, y) }
func (r *recordingSurface) Rotate(a float64)                    { r.log("rotate %g", a) }

func (r *recordingSurface) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (r *recordingSurface) exact(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func TestDrawSkipsShortStrips(t *testing.T) {
	grid := weave.NewGrid(core.Size{W: 100, H: 100}, 2, 0, core.NewRNG(1))
	s := &recordingSurface{w: 100, h: 100}
	NewRenderer().Draw(s, grid)
	if n := s.exact("stroke"); n != 0 {
		t.Fatalf("single-node strips should not be stroked, got %d strokes", n)
	}
	if n := s.count("fillRect"); n != 1 {
		t.Fatalf("expected only the background fill, got %d", n)
	}
}

func TestDrawStrokesEachStripThreeTimes(t *testing.T) {
	grid := weave.NewGrid(core.Size{W: 400, H: 400}, 4, 4, core.NewRNG(3))
	s := &recordingSurface{w: 400, h: 400}
	NewRenderer().Draw(s, grid)

	strips := grid.Strips()
	if want, got := 3*len(strips), s.exact("stroke"); got != want {
		t.Fatalf("expected %d strokes, got %d", want, got)
	}
	if got := s.exact("alpha 0.4"); got != len(strips) {
		t.Fatalf("expected one translucent highlight per strip, got %d", got)
	}
	joints := 0
	for _, st := range strips {
		joints += len(st.Joints)
	}
	if got := s.exact("save"); got != joints {
		t.Fatalf("expected %d knots, got %d", joints, got)
	}
	if got := s.count("fillRect"); got != joints+1 {
		t.Fatalf("expected background plus %d knots, got %d", joints, got)
	}
	if got := s.exact("begin"); got != 2*len(strips) {
		t.Fatalf("expected two paths per strip, got %d", got)
	}
}

func TestDrawOrderFollowsStrips(t *testing.T) {
	grid := weave.NewGrid(core.Size{W: 100, H: 100}, 1, 2, core.NewRNG(5))
	s := &recordingSurface{w: 100, h: 100}
	NewRenderer().Draw(s, grid)

	var moves []string
	for _, c := range s.calls {
		if len(c) > 6 && c[:6] == "moveTo" {
			moves = append(moves, c)
		}
	}
	want := []string{
		"moveTo 4 4", "moveTo 0 0", // vertical x=0
		"moveTo 104 4", "moveTo 100 0", // vertical x=100
		"moveTo 4 4", "moveTo 0 0", // horizontal y=0
		"moveTo 4 104", "moveTo 0 100", // horizontal y=100
	}
	if len(moves) != len(want) {
		t.Fatalf("expected %d paths, got %v", len(want), moves)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("path %d: want %q got %q", i, want[i], moves[i])
		}
	}
}

func TestCurvePassesThroughMidpoints(t *testing.T) {
	grid := weave.NewGrid(core.Size{W: 100, H: 100}, 1, 2, core.NewRNG(5))
	s := &recordingSurface{w: 100, h: 100}
	NewRenderer().Draw(s, grid)
	// body path of the first vertical strip: nodes at y=0,50,100
	want := []string{"moveTo 0 0", "quad 0 0 0 25", "quad 0 50 0 75", "lineTo 0 100"}
	start := -1
	for i, c := range s.calls {
		if c == "moveTo 0 0" {
			start = i
			break
		}
	}
	if start < 0 {
		t.Fatal("body path not found")
	}
	for i, w := range want {
		if s.calls[start+i] != w {
			t.Fatalf("call %d: want %q got %q", i, w, s.calls[start+i])
		}
	}
}

func TestDrawEvents(t *testing.T) {
	s := &recordingSurface{w: 10, h: 10}
	NewRenderer().DrawEvents(s, []core.MotionEvent{{X: 5, Y: 5, Strength: 0.5}})
	if s.count("fillRect") != 1 {
		t.Fatalf("expected one marker, got %v", s.calls)
	}
	if s.calls[1] != "fillRect 1.5 1.5 7 7" {
		t.Fatalf("unexpected marker geometry %q", s.calls[1])
	}
}

func TestFramePaintsBackground(t *testing.T) {
	size := core.Size{W: 400, H: 400}
	frame := NewFrame(size)
	NewRenderer().Draw(frame.Surface(), weave.NewGrid(size, 4, 30, core.NewRNG(1)))

	img := frame.Image()
	if img.Rect.Dx() != 400 || img.Rect.Dy() != 400 {
		t.Fatalf("unexpected frame size %v", img.Rect)
	}
	c := img.RGBAAt(50, 50)
	if c.A != 0xff || c.R < 0xE0 || c.G < 0xD8 || c.B < 0xC8 {
		t.Fatalf("expected paper background between strips, got %+v", c)
	}
}

func TestFlatten(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 0xff})
	Flatten(img, color.RGBA{R: 200, G: 100, B: 50, A: 0xff})
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 200, G: 100, B: 50, A: 0xff}) {
		t.Fatalf("transparent pixel should take the background, got %+v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 10, G: 20, B: 30, A: 0xff}) {
		t.Fatalf("opaque pixel should be unchanged, got %+v", got)
	}
}
