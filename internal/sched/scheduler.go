// Package sched drives the generation loop: each generation is sonified
// column by column, then stepped and rendered, until the run is stopped.
package sched

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"

	"sonolife/internal/core"
	pcore "sonolife/pkg/core"
	"sonolife/pkg/gridfile"
	"sonolife/pkg/life"
	"sonolife/pkg/sonify"
	"sonolife/pkg/synth"
)

// NoHighlight tells a Renderer to draw the grid without a highlighted column.
const NoHighlight = -1

var (
	// ErrRunning is returned for edits attempted while the simulation runs.
	ErrRunning = errors.New("simulation is running")
	// ErrNotManual is returned for cell edits outside manual mode.
	ErrNotManual = errors.New("cell edits require manual mode")
)

// Renderer draws a grid snapshot, optionally highlighting one column. It may
// be called from any goroutine.
type Renderer interface {
	Render(g *life.Grid, highlight int)
}

// AudioOutput plays a PCM buffer without blocking.
type AudioOutput interface {
	Play(buf synth.Buffer)
}

// Options configures a Scheduler. Nil collaborators are replaced with no-ops.
type Options struct {
	Config   core.Config
	Renderer Renderer
	Audio    AudioOutput
	Logger   *slog.Logger
}

type nopRenderer struct{}

func (nopRenderer) Render(*life.Grid, int) {}

type nopAudio struct{}

func (nopAudio) Play(synth.Buffer) {}

// run tracks one Running period; done closes when its loop goroutine exits.
type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Scheduler owns the live grid and the run state machine.
type Scheduler struct {
	renderer Renderer
	audio    AudioOutput
	log      *slog.Logger
	rng      *pcore.RNG

	mu         sync.Mutex
	cfg        core.Config
	scale      sonify.Scale
	grid       *life.Grid
	state      core.RunState
	mode       core.Mode
	generation int
	current    *run

	tones sync.WaitGroup
	cache sync.Map
}

type toneKey struct {
	freq float64
	d    time.Duration
}

// New validates the configuration and returns a stopped scheduler holding an
// all-dead grid in manual mode.
func New(opts Options) (*Scheduler, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[sched.New] invalid config")
	}
	scale, err := sonify.ScaleByName(opts.Config.Scale)
	if err != nil {
		return nil, err
	}
	s := &Scheduler{
		renderer: opts.Renderer,
		audio:    opts.Audio,
		log:      opts.Logger,
		rng:      pcore.NewRNG(opts.Config.Seed),
		cfg:      opts.Config,
		scale:    scale,
		grid:     life.New(opts.Config.Width, opts.Config.Height),
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.audio == nil {
		s.audio = nopAudio{}
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s, nil
}

// Grid returns the current grid snapshot.
func (s *Scheduler) Grid() *life.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Running reports whether a run is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == core.Running
}

// Status returns the state shown on the HUD.
func (s *Scheduler) Status() core.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Status{
		State:      s.state,
		Mode:       s.mode,
		Generation: s.generation,
		Population: s.grid.Population(),
	}
}

// Refresh renders the current grid without a highlight.
func (s *Scheduler) Refresh() {
	s.renderer.Render(s.Grid(), NoHighlight)
}

// Start begins a run: an initial sonification pass over the current grid,
// then step, render and sonify after each generation delay. Start is a no-op
// while running. Cancelling ctx stops the run.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.state == core.Running {
		s.mu.Unlock()
		return
	}
	prev := s.current
	s.mu.Unlock()
	if prev != nil {
		<-prev.done
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == core.Running {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	r := &run{cancel: cancel, done: make(chan struct{})}
	s.current = r
	s.state = core.Running
	s.log.Info("simulation started", "generation", s.generation, "mode", s.mode.String())
	go s.loop(runCtx, r, s.grid)
}

// Stop ends the run without waiting. A pass in progress finishes its current
// column and plays nothing further.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.state != core.Running {
		return
	}
	s.current.cancel()
	s.state = core.Stopped
	s.log.Info("simulation stopped", "generation", s.generation)
}

// halt stops the run and waits for its loop to exit so the grid can be
// replaced without a stale step or frame landing afterwards.
func (s *Scheduler) halt() {
	s.mu.Lock()
	s.stopLocked()
	r := s.current
	s.mu.Unlock()
	if r != nil {
		<-r.done
	}
}

// Close stops the simulation and waits for the loop and pending tone
// synthesis to finish.
func (s *Scheduler) Close() {
	s.halt()
	s.tones.Wait()
}

func (s *Scheduler) loop(ctx context.Context, r *run, grid *life.Grid) {
	defer func() {
		r.cancel()
		s.mu.Lock()
		if s.current == r {
			s.current = nil
			s.state = core.Stopped
		}
		s.mu.Unlock()
		close(r.done)
	}()

	for {
		if err := s.runPass(ctx, grid); err != nil {
			return
		}
		if err := sleep(ctx, s.config().GenerationDelay()); err != nil {
			return
		}
		next := grid.Step()
		if !s.publish(ctx, next) {
			return
		}
		s.renderer.Render(next, NoHighlight)
		grid = next
	}
}

func (s *Scheduler) publish(ctx context.Context, next *life.Grid) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	s.grid = next
	s.generation++
	s.log.Debug("generation", "n", s.generation, "population", next.Population())
	return true
}

func (s *Scheduler) config() core.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Clear stops the simulation and replaces the grid with an empty one.
func (s *Scheduler) Clear() {
	s.replace(func() *life.Grid {
		return life.New(s.cfg.Width, s.cfg.Height)
	})
}

// Randomize stops the simulation, switches to random mode and fills the grid
// using the configured live probability.
func (s *Scheduler) Randomize() {
	s.replace(func() *life.Grid {
		s.mode = core.ModeRandom
		return life.Random(s.cfg.Width, s.cfg.Height, s.cfg.LiveProbability, s.rng)
	})
}

// ManualMode stops the simulation, switches to manual mode and clears the grid.
func (s *Scheduler) ManualMode() {
	s.replace(func() *life.Grid {
		s.mode = core.ModeManual
		return life.New(s.cfg.Width, s.cfg.Height)
	})
}

// replace runs build with the lock held after halting the simulation.
func (s *Scheduler) replace(build func() *life.Grid) {
	s.halt()
	s.mu.Lock()
	s.grid = build()
	s.generation = 0
	g := s.grid
	s.mu.Unlock()
	s.renderer.Render(g, NoHighlight)
}

// Toggle flips one cell. Edits require manual mode and a stopped simulation.
func (s *Scheduler) Toggle(x, y int) error {
	return s.edit(func(g *life.Grid) (*life.Grid, error) { return g.Toggle(x, y) })
}

// Paint sets one cell to alive or dead under the same rules as Toggle.
func (s *Scheduler) Paint(x, y int, alive bool) error {
	return s.edit(func(g *life.Grid) (*life.Grid, error) { return g.Set(x, y, alive) })
}

func (s *Scheduler) edit(apply func(*life.Grid) (*life.Grid, error)) error {
	s.mu.Lock()
	if s.state == core.Running {
		s.mu.Unlock()
		return ErrRunning
	}
	if s.mode != core.ModeManual {
		s.mu.Unlock()
		return ErrNotManual
	}
	s.mu.Unlock()
	s.halt()

	s.mu.Lock()
	next, err := apply(s.grid)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	changed := next != s.grid
	s.grid = next
	s.mu.Unlock()
	if changed {
		s.renderer.Render(next, NoHighlight)
	}
	return nil
}

// StepOnce advances a stopped simulation by one generation without sound.
func (s *Scheduler) StepOnce() error {
	if s.Running() {
		return ErrRunning
	}
	s.halt()
	s.mu.Lock()
	s.grid = s.grid.Step()
	s.generation++
	g := s.grid
	s.mu.Unlock()
	s.renderer.Render(g, NoHighlight)
	return nil
}

// Save writes the current grid to path.
func (s *Scheduler) Save(path string) error {
	return gridfile.Save(path, s.Grid())
}

// Load stops the simulation and copies the file at path onto the grid. On
// failure the grid is left unchanged.
func (s *Scheduler) Load(path string) error {
	s.halt()
	next, err := gridfile.Load(path, s.Grid())
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.grid = next
	s.generation = 0
	s.mu.Unlock()
	s.renderer.Render(next, NoHighlight)
	s.log.Info("grid loaded", "path", path, "population", next.Population())
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
