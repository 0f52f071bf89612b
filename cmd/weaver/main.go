//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"bamboo-weaver/internal/app"
	"bamboo-weaver/internal/motion"
	"bamboo-weaver/internal/oracle"
	"bamboo-weaver/internal/weave"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logs, err := app.SetupLogging(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	code := run(cfg, logs)
	logs.Close()
	os.Exit(code)
}

// run owns the camera and window. Its deferred cleanup always completes
// before the process exits.
func run(cfg *app.Config, logs *app.Logs) int {
	logger := logs.Logger("weaver")

	world := weave.NewWithConfig(cfg.WeaveConfig())

	var opener app.CameraOpener
	if cfg.Camera {
		camCfg := cfg.CameraConfig()
		camCfg.Logger = logs.Logger("camera")
		opener = func(ctx context.Context) (app.Camera, error) {
			cam, err := motion.OpenCamera(ctx, camCfg)
			if err != nil {
				return nil, err
			}
			return cam, nil
		}
	}

	gemCfg := cfg.GeminiConfig()
	gemCfg.Logger = logs.Logger("oracle")
	if gemCfg.APIKey == "" {
		logger.Printf("GEMINI_API_KEY not set; interpretations will fail")
	}
	session := oracle.NewSession(oracle.NewGeminiClientWithConfig(gemCfg), gemCfg.Logger)

	wctx := app.NewContext(app.Options{
		World:      world,
		Detector:   motion.NewDetector(motion.DefaultConfig(), nil),
		Session:    session,
		OpenCamera: opener,
		Logger:     logger,
		ShowEvents: cfg.Debug,
	})

	bg, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := wctx.Start(bg); err != nil {
		logger.Printf("start: %v", err)
		return 1
	}
	defer func() {
		if err := wctx.Stop(); err != nil {
			logger.Printf("stop: %v", err)
		}
	}()

	game := app.New(bg, wctx, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("Zen Bamboo Weaver")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W, size.H)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Printf("run: %v", err)
		return 1
	}
	return 0
}
