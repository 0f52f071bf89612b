package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"bamboo-weaver/internal/app"
	"bamboo-weaver/internal/motion"
	"bamboo-weaver/internal/oracle"
	"bamboo-weaver/internal/snapshot"
	"bamboo-weaver/internal/weave"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#344E41"))
	poemStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#588157")).
			PaddingLeft(2)
	philosophyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#557C55")).
			Width(72)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#A3B18A")).
			Padding(1, 2)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func main() {
	steps := flag.Int("steps", 240, "ticks to simulate before the snapshot")
	width := flag.Int("width", 1280, "canvas width")
	height := flag.Int("height", 800, "canvas height")
	seed := flag.Int64("seed", 1337, "seed for strip cosmetics")
	period := flag.Int("period", 120, "frames per loop of the synthetic motion sweep")
	out := flag.String("out", "weave.jpg", "output JPEG path")
	interpret := flag.Bool("interpret", false, "send the snapshot for interpretation")
	model := flag.String("model", oracle.DefaultModel, "Gemini model")
	timeout := flag.Duration("timeout", oracle.DefaultTimeout, "interpretation timeout")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable, wins over -width/-height/-seed)")
	flag.Parse()

	cfg := app.WeaveConfigFor(*width, *height, *seed, overrides)

	logger := log.New(os.Stderr, "[snapshot] ", log.LstdFlags)
	world := weave.NewWithConfig(cfg)
	sweep := motion.NewSweep(160, 120, *period)
	wctx := app.NewContext(app.Options{
		World:    world,
		Detector: motion.NewDetector(motion.DefaultConfig(), sweep),
		Logger:   logger,
	})

	start := time.Now()
	events := 0
	for i := 0; i < *steps; i++ {
		wctx.Advance()
		events += len(wctx.LastEvents())
	}
	wctx.Paint()
	fmt.Println(dimStyle.Render(fmt.Sprintf("simulated %d ticks over %d nodes (%d events, peak displacement %.2f) in %s",
		*steps, world.Grid().NodeCount(), events, world.Grid().MaxDisplacement(), time.Since(start).Round(time.Millisecond))))

	data, err := snapshot.Export(wctx.Snapshot(), snapshot.DefaultOptions())
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("wrote %s (%d bytes)", *out, len(data))))

	if !*interpret {
		return
	}
	client := oracle.NewGeminiClientWithConfig(oracle.GeminiConfig{
		APIKey:  oracle.APIKeyFromEnv(),
		Model:   *model,
		Timeout: *timeout,
		Logger:  log.New(os.Stderr, "[oracle] ", log.LstdFlags),
	})
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	interp, err := client.Interpret(ctx, data)
	if err != nil {
		log.Fatalf("interpret: %v", err)
	}
	fmt.Println(render(interp))
}

func render(interp oracle.Interpretation) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(interp.Title),
		"",
		poemStyle.Render(interp.Poem),
		"",
		philosophyStyle.Render(interp.Philosophy),
	)
	return boxStyle.Render(body)
}
