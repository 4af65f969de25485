//go:build ebiten

package app

import (
	"context"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"sonolife/internal/core"
	"sonolife/internal/render"
	"sonolife/internal/sched"
	"sonolife/internal/ui"
	pcore "sonolife/pkg/core"
)

// HUDWidth is the width of the control panel right of the grid.
const HUDWidth = 240

// Game adapts the scheduler to the ebiten.Game interface. Scheduler work
// happens on its own goroutines; Game only forwards input and draws the
// latest frame.
type Game struct {
	ctx      context.Context
	sched    *sched.Scheduler
	frames   *FrameBuffer
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	messages *ui.Messages
	log      *slog.Logger

	cfg  core.Config
	size pcore.Size

	painting   bool
	paintAlive bool
	lastX      int
	lastY      int
}

// New constructs a Game. frames must be the Renderer the scheduler was built
// with. ctx bounds every run started from the UI.
func New(ctx context.Context, s *sched.Scheduler, frames *FrameBuffer, cfg core.Config, messages *ui.Messages, log *slog.Logger) *Game {
	size := pcore.Size{W: cfg.Width, H: cfg.Height}
	return &Game{
		ctx:      ctx,
		sched:    s,
		frames:   frames,
		painter:  render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:      ui.NewHUD(s, HUDWidth),
		overlay:  ui.NewOverlay(size.W, size.H, cfg.CellSize, messages),
		messages: messages,
		log:      log,
		cfg:      cfg,
		size:     size,
	}
}

// Update handles keyboard and mouse input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.sched.Running() {
			g.sched.Stop()
		} else {
			g.sched.Start(g.ctx)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sched.Start(g.ctx)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sched.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sched.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sched.ManualMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.report("step", g.sched.StepOnce())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if g.report("save", g.sched.Save(g.cfg.GridFile)) {
			g.messages.Post("saved " + g.cfg.GridFile)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if g.report("load", g.sched.Load(g.cfg.GridFile)) {
			g.messages.Post("loaded " + g.cfg.GridFile)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.size.W * g.cfg.CellSize)
	g.handleMouse()
	return nil
}

// handleMouse toggles the clicked cell, then paints the same state while the
// button is held and the cursor crosses new cells.
func (g *Game) handleMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.painting = false
		return
	}
	mx, my := ebiten.CursorPosition()
	if g.hud.Contains(mx) {
		return
	}
	x, y := mx/g.cfg.CellSize, my/g.cfg.CellSize
	if mx < 0 || my < 0 || x >= g.size.W || y >= g.size.H {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !g.report("toggle", g.sched.Toggle(x, y)) {
			return
		}
		alive, _ := g.sched.Grid().Alive(x, y)
		g.painting, g.paintAlive = true, alive
		g.lastX, g.lastY = x, y
		return
	}
	if !g.painting || (x == g.lastX && y == g.lastY) {
		return
	}
	g.lastX, g.lastY = x, y
	if err := g.sched.Paint(x, y, g.paintAlive); err != nil {
		g.painting = false
		g.report("paint", err)
	}
}

// report posts a user-facing message for err and reports whether the action
// succeeded.
func (g *Game) report(action string, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, sched.ErrRunning):
		g.messages.Post("stop the simulation first")
	case errors.Is(err, sched.ErrNotManual):
		g.messages.Post("press M for manual mode to edit cells")
	default:
		g.messages.Post(action + " failed: " + err.Error())
		g.log.Error(action+" failed", "err", err)
	}
	return false
}

// Draw renders the latest frame with the overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	frame, ok := g.frames.Latest()
	if !ok {
		frame = Frame{Grid: g.sched.Grid(), Highlight: sched.NoHighlight}
	}
	g.painter.Blit(screen, frame.Grid, frame.Highlight, g.cfg.CellSize)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.size.W*g.cfg.CellSize, g.size.H*g.cfg.CellSize)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W*g.cfg.CellSize + HUDWidth, g.size.H * g.cfg.CellSize
}
