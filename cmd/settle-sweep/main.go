package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"bamboo-weaver/internal/weave"
)

type paramSet struct {
	spring  float64
	damping float64
	force   float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("spring=%.3f damping=%.2f force=%.2f", p.spring, p.damping, p.force)
}

func main() {
	burst := flag.Int("burst", 30, "ticks of centre disturbance per scenario")
	maxTicks := flag.Int("max-ticks", 4000, "ticks allowed to settle after the burst")
	tol := flag.Float64("tol", 1e-3, "settle tolerance in pixels")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 640, "viewport width")
	height := flag.Int("height", 480, "viewport height")
	flag.Parse()

	baseCfg := weave.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height

	springOptions := []float64{0.01, 0.025, 0.05, 0.1}
	dampingOptions := []float64{0.88, 0.92, 0.94, 0.97}
	forceOptions := []float64{0.06, 0.12, 0.24}

	var sets []paramSet
	for _, spring := range springOptions {
		for _, damping := range dampingOptions {
			for _, force := range forceOptions {
				sets = append(sets, paramSet{spring: spring, damping: damping, force: force})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, burst %d, max %d ticks)\n", len(sets), *workers, *burst, *maxTicks)

	jobs := make(chan paramSet)
	results := make(chan weave.SettleResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				cfg := baseCfg
				cfg.Params.Spring = params.spring
				cfg.Params.Damping = params.damping
				cfg.Params.Force = params.force
				results <- weave.Settle(cfg, *burst, *maxTicks, *tol)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []weave.SettleResult
	unsettled := 0
	for res := range results {
		all = append(all, res)
		if !res.Settled {
			unsettled++
			fmt.Printf("Did not settle within %d ticks: %s (peak %.2f)\n", *maxTicks, describe(res.Params), res.PeakDisplacement)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Settled != all[j].Settled {
			return all[i].Settled
		}
		return all[i].SettleTick < all[j].SettleTick
	})
	elapsed := time.Since(start)

	fmt.Printf("\nFastest 5 (elapsed %s, %d unsettled):\n", elapsed.Round(time.Millisecond), unsettled)
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) settle=%d peak=%.2f params=%s\n", i+1, res.SettleTick, res.PeakDisplacement, describe(res.Params))
	}

	def := weave.Settle(baseCfg, *burst, *maxTicks, *tol)
	fmt.Printf("\nDefaults: settle=%d peak=%.2f params=%s\n", def.SettleTick, def.PeakDisplacement, describe(def.Params))
}

func describe(p weave.Params) string {
	return paramSet{spring: p.Spring, damping: p.Damping, force: p.Force}.String()
}
