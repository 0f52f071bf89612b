package weave

import "bamboo-weaver/internal/core"

// SettleResult summarises how a configuration responds to a disturbance.
type SettleResult struct {
	Params Params

	PeakDisplacement float64
	// SettleTick counts ticks after the burst until every node is within the
	// tolerance of its rest position.
	SettleTick int
	Settled    bool
	Ticks      int
}

// Settle pushes the grid with a burst of events at the viewport centre, then
// runs until the grid settles within tol or maxTicks elapse.
func Settle(cfg Config, burst, maxTicks int, tol float64) SettleResult {
	world := NewWithConfig(cfg)
	size := world.Size()
	centre := []core.MotionEvent{{X: float64(size.W) / 2, Y: float64(size.H) / 2, Strength: 1}}

	res := SettleResult{Params: cfg.Params}
	for i := 0; i < burst; i++ {
		world.Inject(centre)
		world.Step()
		res.Ticks++
		res.PeakDisplacement = max(res.PeakDisplacement, world.Grid().MaxDisplacement())
	}
	for i := 0; i < maxTicks; i++ {
		d := world.Grid().MaxDisplacement()
		res.PeakDisplacement = max(res.PeakDisplacement, d)
		if d < tol {
			res.Settled = true
			res.SettleTick = i
			return res
		}
		world.Step()
		res.Ticks++
	}
	res.SettleTick = maxTicks
	return res
}
