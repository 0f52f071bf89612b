package weave

import (
	"math"

	"bamboo-weaver/internal/core"
)

// Injector pushes nodes away from motion events with a linear radial falloff.
type Injector struct {
	Radius float64
	Force  float64

	// Buckets switches the neighbour search from a full scan to a uniform
	// grid rebuilt on every Apply. Results are identical either way.
	Buckets bool

	index bucketIndex
}

// Apply adds the impulse of every event to the velocity of each node closer
// than Radius. Impulses accumulate without clamping.
func (inj *Injector) Apply(g *Grid, events []core.MotionEvent) {
	if g == nil || len(events) == 0 || inj.Radius <= 0 {
		return
	}
	if inj.Buckets {
		inj.index.rebuild(g, inj.Radius)
		for _, ev := range events {
			inj.index.visit(ev.X, ev.Y, func(n *Node) { inj.push(n, ev) })
		}
		return
	}
	for _, ev := range events {
		for i := range g.strips {
			nodes := g.strips[i].Nodes
			for j := range nodes {
				inj.push(&nodes[j], ev)
			}
		}
	}
}

func (inj *Injector) push(n *Node, ev core.MotionEvent) {
	dx := n.Pos.X - ev.X
	dy := n.Pos.Y - ev.Y
	distSq := dx*dx + dy*dy
	if !(distSq < inj.Radius*inj.Radius) {
		return
	}
	influence := 1 - math.Sqrt(distSq)/inj.Radius
	angle := math.Atan2(dy, dx)
	n.Vel.X += math.Cos(angle) * inj.Force * influence
	n.Vel.Y += math.Sin(angle) * inj.Force * influence
}

type cellKey struct{ x, y int }

// bucketIndex hashes nodes into square cells one radius wide, so every node
// within the radius of a point lies in the 3x3 block of cells around it.
type bucketIndex struct {
	cell  float64
	cells map[cellKey][]*Node
}

func (b *bucketIndex) key(x, y float64) cellKey {
	return cellKey{x: int(math.Floor(x / b.cell)), y: int(math.Floor(y / b.cell))}
}

func (b *bucketIndex) rebuild(g *Grid, cell float64) {
	b.cell = cell
	if b.cells == nil {
		b.cells = make(map[cellKey][]*Node)
	}
	for k, v := range b.cells {
		b.cells[k] = v[:0]
	}
	for i := range g.strips {
		nodes := g.strips[i].Nodes
		for j := range nodes {
			n := &nodes[j]
			if math.IsNaN(n.Pos.X) || math.IsNaN(n.Pos.Y) {
				continue
			}
			k := b.key(n.Pos.X, n.Pos.Y)
			b.cells[k] = append(b.cells[k], n)
		}
	}
}

func (b *bucketIndex) visit(x, y float64, fn func(*Node)) {
	center := b.key(x, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for _, n := range b.cells[cellKey{x: center.x + dx, y: center.y + dy}] {
				fn(n)
			}
		}
	}
}
