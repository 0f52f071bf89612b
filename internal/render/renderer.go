package render

import (
	"image/color"
	"math"

	"bamboo-weaver/internal/core"
	"bamboo-weaver/internal/weave"
)

const (
	shadowOffset    = 4.0
	highlightWidth  = 0.4
	highlightAlpha  = 0.4
	knotHalfLength  = 2.0
	knotOverhang    = 2.0
	eventDotMaxSize = 10.0
)

var (
	shadowStroke = color.NRGBA{A: 26}
	eventFill    = color.NRGBA{R: 0xBC, G: 0x47, B: 0x49, A: 0xB0}
)

// Renderer draws the background, strips and knots in creation order.
type Renderer struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// NewRenderer returns a renderer using the paper background.
func NewRenderer() *Renderer {
	return &Renderer{Top: weave.PaperTop, Bottom: weave.PaperBottom}
}

// Draw paints g onto s. A nil surface or grid is ignored.
func (r *Renderer) Draw(s Surface, g *weave.Grid) {
	if s == nil {
		return
	}
	r.background(s)
	if g == nil {
		return
	}
	strips := g.Strips()
	for i := range strips {
		drawStrip(s, &strips[i])
	}
}

func (r *Renderer) background(s Surface) {
	w, h := float64(s.Width()), float64(s.Height())
	if gs, ok := s.(gradientSurface); ok {
		grad := gs.CreateLinearGradient(0, 0, 0, h)
		grad.AddColorStop(0, r.Top)
		grad.AddColorStop(1, r.Bottom)
		s.SetFillStyle(grad)
	} else {
		s.SetFillStyle(r.Top)
	}
	s.FillRect(0, 0, w, h)
}

func drawStrip(s Surface, st *weave.Strip) {
	if len(st.Nodes) < 2 {
		return
	}

	s.BeginPath()
	tracePath(s, st.Nodes, shadowOffset)
	s.SetStrokeStyle(shadowStroke)
	s.SetLineWidth(st.Width)
	s.Stroke()

	s.BeginPath()
	tracePath(s, st.Nodes, 0)
	s.SetStrokeStyle(st.Palette.Base)
	s.SetLineWidth(st.Width)
	s.Stroke()

	s.SetStrokeStyle(st.Palette.Highlight)
	s.SetLineWidth(st.Width * highlightWidth)
	s.SetGlobalAlpha(highlightAlpha)
	s.Stroke()
	s.SetGlobalAlpha(1)

	s.SetFillStyle(st.Palette.Shadow)
	for _, idx := range st.Joints {
		if idx < 0 || idx >= len(st.Nodes) {
			continue
		}
		drawKnot(s, st, idx)
	}
}

// tracePath builds a quadratic curve through the midpoints of consecutive
// nodes, using each node as the control point.
func tracePath(s Surface, nodes []weave.Node, off float64) {
	first := nodes[0].Pos
	s.MoveTo(first.X+off, first.Y+off)
	for i := 0; i < len(nodes)-1; i++ {
		p0, p1 := nodes[i].Pos, nodes[i+1].Pos
		midX := (p0.X + p1.X) / 2
		midY := (p0.Y + p1.Y) / 2
		s.QuadraticCurveTo(p0.X+off, p0.Y+off, midX+off, midY+off)
	}
	last := nodes[len(nodes)-1].Pos
	s.LineTo(last.X+off, last.Y+off)
}

func drawKnot(s Surface, st *weave.Strip, idx int) {
	node := st.Nodes[idx].Pos
	prev, next := node, node
	if idx > 0 {
		prev = st.Nodes[idx-1].Pos
	}
	if idx+1 < len(st.Nodes) {
		next = st.Nodes[idx+1].Pos
	}
	angle := math.Atan2(next.Y-prev.Y, next.X-prev.X)

	s.Save()
	s.Translate(node.X, node.Y)
	s.Rotate(angle)
	s.FillRect(-knotHalfLength, -st.Width/2-knotOverhang, 2*knotHalfLength, st.Width+2*knotOverhang)
	s.Restore()
}

// DrawEvents marks the given motion events with squares sized by strength.
func (r *Renderer) DrawEvents(s Surface, events []core.MotionEvent) {
	if s == nil || len(events) == 0 {
		return
	}
	s.SetFillStyle(eventFill)
	for _, ev := range events {
		size := 2 + ev.Strength*eventDotMaxSize
		s.FillRect(ev.X-size/2, ev.Y-size/2, size, size)
	}
}
