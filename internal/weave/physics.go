package weave

import "gonum.org/v1/gonum/spatial/r2"

// Integrator advances every node with semi-implicit Euler: spring toward
// rest, then damping, then position update. Nodes do not interact.
type Integrator struct {
	Spring  float64
	Damping float64
}

// Step advances the grid by one tick.
func (in Integrator) Step(g *Grid) {
	if g == nil {
		return
	}
	for i := range g.strips {
		nodes := g.strips[i].Nodes
		for j := range nodes {
			in.advance(&nodes[j])
		}
	}
}

func (in Integrator) advance(n *Node) {
	accel := r2.Scale(in.Spring, r2.Sub(n.Rest, n.Pos))
	n.Vel = r2.Add(n.Vel, accel)
	n.Vel = r2.Scale(in.Damping, n.Vel)
	n.Pos = r2.Add(n.Pos, n.Vel)
}
