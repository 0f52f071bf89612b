package weave

import (
	"math"
	"testing"

	"bamboo-weaver/internal/core"
)

type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestNewGridStructure(t *testing.T) {
	const strips, nodes = 6, 30
	for seed := int64(1); seed <= 20; seed++ {
		g := NewGrid(core.Size{W: 900, H: 600}, strips, nodes, core.NewRNG(seed))
		all := g.Strips()
		if len(all) != 2*(strips+1) {
			t.Fatalf("seed %d: expected %d strips, got %d", seed, 2*(strips+1), len(all))
		}
		if got, want := g.NodeCount(), 2*(strips+1)*(nodes+1); got != want {
			t.Fatalf("seed %d: expected %d nodes, got %d", seed, want, got)
		}
		for i, s := range all {
			if s.ID != i {
				t.Fatalf("seed %d: strip %d has id %d", seed, i, s.ID)
			}
			wantOrientation := Vertical
			if i > strips {
				wantOrientation = Horizontal
			}
			if s.Orientation != wantOrientation {
				t.Fatalf("seed %d: strip %d orientation %s, want %s", seed, i, s.Orientation, wantOrientation)
			}
			if len(s.Nodes) != nodes+1 {
				t.Fatalf("seed %d: strip %d has %d nodes, want %d", seed, i, len(s.Nodes), nodes+1)
			}
			for j, n := range s.Nodes {
				if n.Pos != n.Rest {
					t.Fatalf("seed %d: strip %d node %d not at rest", seed, i, j)
				}
				if n.Vel.X != 0 || n.Vel.Y != 0 {
					t.Fatalf("seed %d: strip %d node %d has velocity %v", seed, i, j, n.Vel)
				}
			}
			checkJoints(t, s.Joints, nodes)
		}
	}
}

func checkJoints(t *testing.T, joints []int, nodes int) {
	t.Helper()
	for k, j := range joints {
		if j < 2 || j >= nodes-2 {
			t.Fatalf("joint %d out of range for %d nodes: %v", j, nodes, joints)
		}
		if k == 0 {
			if j > 5 {
				t.Fatalf("first joint %d exceeds 5: %v", j, joints)
			}
			continue
		}
		step := j - joints[k-1]
		if step < 4 || step > 8 {
			t.Fatalf("joint step %d outside [4,8]: %v", step, joints)
		}
	}
}

func TestNewGridSpacing(t *testing.T) {
	g := NewGrid(core.Size{W: 400, H: 200}, 4, 4, core.NewRNG(3))
	v, _ := g.Strip(1)
	if got := v.Nodes[0].Rest.X; got != 100 {
		t.Fatalf("vertical strip 1 should sit at x=100, got %f", got)
	}
	if got := v.Nodes[4].Rest.Y; got != 200 {
		t.Fatalf("last vertical node should reach the bottom edge, got %f", got)
	}
	h, _ := g.Strip(5 + 2)
	if got := h.Nodes[0].Rest.Y; got != 100 {
		t.Fatalf("horizontal strip 2 should sit at y=100, got %f", got)
	}
	if got := h.Nodes[2].Rest.X; got != 200 {
		t.Fatalf("middle horizontal node should be at x=200, got %f", got)
	}
	if _, ok := g.Strip(10); ok {
		t.Fatal("strip id 10 should not exist for 4 strips")
	}
}

func TestNewGridUsesInjectedRand(t *testing.T) {
	rng := &scriptedRand{
		ints:   []int{2, 3, 4},
		floats: []float64{0.5},
	}
	g := NewGrid(core.Size{W: 100, H: 100}, 0, 20, rng)
	s := g.Strips()[0]
	if s.Palette.Name != Palettes[2].Name {
		t.Fatalf("expected palette %q, got %q", Palettes[2].Name, s.Palette.Name)
	}
	// zero strips means zero spacing, hence zero base width.
	if s.Width != 0 {
		t.Fatalf("expected zero width for a single strip, got %f", s.Width)
	}
	if len(s.Joints) == 0 || s.Joints[0] != 5 {
		t.Fatalf("expected first joint at 5, got %v", s.Joints)
	}
	if len(s.Joints) < 2 || s.Joints[1] != 13 {
		t.Fatalf("expected second joint at 13, got %v", s.Joints)
	}
}

func TestNewGridWidthJitter(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.5}}
	g := NewGrid(core.Size{W: 200, H: 100}, 2, 4, rng)
	s := g.Strips()[0]
	want := 100 * 0.65 * 1.0
	if math.Abs(s.Width-want) > 1e-9 {
		t.Fatalf("expected width %f, got %f", want, s.Width)
	}
}

func TestNewGridDegenerate(t *testing.T) {
	cases := []struct {
		name          string
		size          core.Size
		strips, nodes int
	}{
		{"zero viewport", core.Size{}, 4, 4},
		{"negative viewport", core.Size{W: -10, H: -10}, 4, 4},
		{"zero strips", core.Size{W: 100, H: 100}, 0, 4},
		{"zero nodes", core.Size{W: 100, H: 100}, 4, 0},
		{"negative counts", core.Size{W: 100, H: 100}, -2, -2},
	}
	for _, tc := range cases {
		g := NewGrid(tc.size, tc.strips, tc.nodes, core.NewRNG(1))
		for _, s := range g.Strips() {
			for _, n := range s.Nodes {
				if math.IsNaN(n.Pos.X) || math.IsNaN(n.Pos.Y) || math.IsInf(n.Pos.X, 0) || math.IsInf(n.Pos.Y, 0) {
					t.Fatalf("%s: node position not finite: %v", tc.name, n.Pos)
				}
			}
		}
	}
	g := NewGrid(core.Size{W: 100, H: 100}, -2, -2, core.NewRNG(1))
	if len(g.Strips()) != 2 || len(g.Strips()[0].Nodes) != 1 {
		t.Fatalf("negative counts should clamp to zero, got %d strips", len(g.Strips()))
	}
}
