package weave

import "bamboo-weaver/internal/core"

// World couples the strip grid with its integrator and force injector.
type World struct {
	cfg  Config
	size core.Size
	grid *Grid

	integrator Integrator
	injector   Injector

	rng core.Rand
}

// New returns a World for the provided viewport using the default tunables.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World seeded from cfg.Seed.
func NewWithConfig(cfg Config) *World {
	return NewWithRand(cfg, core.NewRNG(cfg.Seed))
}

// NewWithRand returns a World whose cosmetic randomness comes from rng.
func NewWithRand(cfg Config, rng core.Rand) *World {
	w := &World{
		cfg:  cfg,
		size: core.Size{W: cfg.Width, H: cfg.Height},
		rng:  rng,
	}
	w.applyParams()
	w.rebuild()
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "bamboo" }

// Size reports the viewport dimensions.
func (w *World) Size() core.Size { return w.size }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the live strip grid.
func (w *World) Grid() *Grid { return w.grid }

// Reset rebuilds the grid from a fresh RNG. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.rebuild()
}

// Resize rebuilds the grid wholesale for a new viewport. Same-size calls are
// ignored so the window loop can call it every frame.
func (w *World) Resize(size core.Size) {
	if size == w.size {
		return
	}
	w.size = size
	w.cfg.Width = size.W
	w.cfg.Height = size.H
	w.rebuild()
}

// Inject applies motion impulses to node velocities.
func (w *World) Inject(events []core.MotionEvent) {
	w.injector.Apply(w.grid, events)
}

// Step advances every node by one tick.
func (w *World) Step() {
	w.integrator.Step(w.grid)
}

func (w *World) applyParams() {
	p := w.cfg.Params
	w.integrator = Integrator{Spring: p.Spring, Damping: p.Damping}
	w.injector.Radius = p.Radius
	w.injector.Force = p.Force
	w.injector.Buckets = p.BucketIndex
}

func (w *World) rebuild() {
	w.grid = NewGrid(w.size, w.cfg.Params.Strips, w.cfg.Params.Nodes, w.rng)
}
