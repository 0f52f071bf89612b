//go:build ebiten

package app

import (
	"context"
	"time"

	"bamboo-weaver/internal/core"
	"bamboo-weaver/internal/render"
	"bamboo-weaver/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a simulation Context to the ebiten.Game interface.
type Game struct {
	ctx     *Context
	bg      context.Context
	blitter *render.Blitter

	hud     *ui.HUD
	overlay *ui.Overlay
	panel   *ui.ControlPanel
	insight *ui.Insight

	seed     int64
	paused   bool
	tickOnce bool
}

// New constructs a Game around ctx. The context must already be started.
func New(bg context.Context, ctx *Context, cfg *Config) *Game {
	size := ctx.World().Size()
	return &Game{
		ctx:      ctx,
		bg:       bg,
		blitter:  render.NewBlitter(size.W, size.H),
		hud:      ui.NewHUD(ctx.World(), hudWidth, cfg.HUD),
		overlay:  ui.NewOverlay(cfg.Debug),
		panel:    ui.NewControlPanel(),
		insight:  ui.NewInsight(cfg.TPS),
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the strips with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.ctx.World().Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	size := g.ctx.World().Size()

	if g.ctx.insight != nil && !g.insight.IsOpen() {
		interp, _ := g.ctx.Insight()
		g.insight.Open(interp)
	}
	modal := g.insight.IsOpen()
	if g.insight.Update(size.W, size.H) {
		g.ctx.CloseInsight()
	}

	if !modal {
		if err := g.handleKeys(); err != nil {
			return err
		}
	}
	if g.overlay.Update() {
		g.ctx.DismissNotice()
	}
	g.hud.Update(size.W)
	if g.panel.Update(size.W, size.H, g.ctx.Loading()) && !modal {
		mx, my := ebiten.CursorPosition()
		if !g.hud.Contains(mx, my) {
			g.interpret()
		}
	}

	if !g.paused || g.tickOnce {
		g.ctx.Advance()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.ctx.Notice() != nil {
			g.ctx.DismissNotice()
		} else {
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.ctx.ShowEvents(!g.ctx.showEvents)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if g.ctx.userPaused {
			g.ctx.SetCapture(CaptureActive)
		} else {
			g.ctx.SetCapture(CapturePaused)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.interpret()
	}
	return nil
}

func (g *Game) interpret() {
	if g.ctx.Loading() {
		return
	}
	if err := g.ctx.Interpret(g.bg); err != nil {
		g.ctx.notice = err
	}
}

// Draw paints the weave and the UI layers.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ctx.Paint()
	g.blitter.Blit(screen, g.ctx.Frame().Image())

	notice := ""
	if err := g.ctx.Notice(); err != nil {
		notice = "The spirits are quiet: " + err.Error()
	}
	g.overlay.Draw(screen, ui.Status{
		Capturing: g.ctx.Capture() == CaptureActive,
		CameraOn:  g.ctx.HasCamera(),
		Notice:    notice,
		Events:    len(g.ctx.LastEvents()),
		Ticks:     g.ctx.Ticks(),
	})
	g.panel.Draw(screen, g.ctx.Loading())
	g.hud.Draw(screen)
	g.insight.Draw(screen)
}

// Layout tracks the window size and rebuilds the grid when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctx.Resize(core.Size{W: outsideWidth, H: outsideHeight})
	s := g.ctx.World().Size()
	return s.W, s.H
}
