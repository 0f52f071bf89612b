package weave

import (
	"bamboo-weaver/internal/core"

	"gonum.org/v1/gonum/spatial/r2"
)

// Orientation tells whether a strip runs across or down the canvas.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

const (
	baseWidthFactor = 0.65
	widthJitterMin  = 0.8
	widthJitterSpan = 0.4

	jointStartMin  = 2
	jointStartSpan = 4
	jointStepMin   = 4
	jointStepSpan  = 5
	jointTailGap   = 2
)

// Node is a point mass anchored to its rest position. Only Pos and Vel change
// after the grid is built.
type Node struct {
	Pos  r2.Vec
	Rest r2.Vec
	Vel  r2.Vec
}

// Strip is one chain of nodes drawn as a single bamboo curve.
type Strip struct {
	ID          int
	Orientation Orientation
	Nodes       []Node
	Width       float64
	Palette     Palette
	Joints      []int
}

// Grid owns every strip, verticals first then horizontals.
type Grid struct {
	size   core.Size
	strips []Strip
}

// NewGrid lays out strips+1 vertical and strips+1 horizontal strips across the
// viewport, each carrying nodes+1 nodes. rng drives the cosmetic choices
// (palette, width jitter and joint placement) and never affects geometry.
func NewGrid(size core.Size, strips, nodes int, rng core.Rand) *Grid {
	if strips < 0 {
		strips = 0
	}
	if nodes < 0 {
		nodes = 0
	}
	w := float64(max(size.W, 0))
	h := float64(max(size.H, 0))
	xStep, yStep := 0.0, 0.0
	if strips > 0 {
		xStep = w / float64(strips)
		yStep = h / float64(strips)
	}

	g := &Grid{size: size, strips: make([]Strip, 0, 2*(strips+1))}
	for i := 0; i <= strips; i++ {
		x := float64(i) * xStep
		ns := make([]Node, nodes+1)
		for j := range ns {
			ns[j] = restingNode(x, fraction(j, nodes)*h)
		}
		g.strips = append(g.strips, newStrip(len(g.strips), Vertical, ns, xStep*baseWidthFactor, nodes, rng))
	}
	for j := 0; j <= strips; j++ {
		y := float64(j) * yStep
		ns := make([]Node, nodes+1)
		for i := range ns {
			ns[i] = restingNode(fraction(i, nodes)*w, y)
		}
		g.strips = append(g.strips, newStrip(len(g.strips), Horizontal, ns, yStep*baseWidthFactor, nodes, rng))
	}
	return g
}

func restingNode(x, y float64) Node {
	p := r2.Vec{X: x, Y: y}
	return Node{Pos: p, Rest: p}
}

func fraction(i, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(i) / float64(n)
}

func newStrip(id int, o Orientation, nodes []Node, baseWidth float64, nodeCount int, rng core.Rand) Strip {
	palette := Palettes[rng.IntN(len(Palettes))]
	width := baseWidth * (widthJitterMin + rng.Float64()*widthJitterSpan)
	return Strip{
		ID:          id,
		Orientation: o,
		Nodes:       nodes,
		Width:       width,
		Palette:     palette,
		Joints:      placeJoints(nodeCount, rng),
	}
}

// placeJoints returns strictly increasing knot indices: a start in [2,5], then
// steps in [4,8], stopping before the last two nodes.
func placeJoints(count int, rng core.Rand) []int {
	var joints []int
	i := rng.IntN(jointStartSpan) + jointStartMin
	for i < count-jointTailGap {
		joints = append(joints, i)
		i += rng.IntN(jointStepSpan) + jointStepMin
	}
	return joints
}

// Size reports the viewport the grid was built for.
func (g *Grid) Size() core.Size { return g.size }

// Strips exposes the strips in creation order. Callers may mutate node
// positions and velocities in place.
func (g *Grid) Strips() []Strip { return g.strips }

// Strip returns the strip with the given id.
func (g *Grid) Strip(id int) (*Strip, bool) {
	if id < 0 || id >= len(g.strips) {
		return nil, false
	}
	return &g.strips[id], true
}

// NodeCount returns the total number of nodes across all strips.
func (g *Grid) NodeCount() int {
	total := 0
	for i := range g.strips {
		total += len(g.strips[i].Nodes)
	}
	return total
}

// MaxDisplacement returns the largest distance any node sits from its rest
// position.
func (g *Grid) MaxDisplacement() float64 {
	var worst float64
	for i := range g.strips {
		for j := range g.strips[i].Nodes {
			n := &g.strips[i].Nodes[j]
			if d := r2.Norm(r2.Sub(n.Pos, n.Rest)); d > worst {
				worst = d
			}
		}
	}
	return worst
}
