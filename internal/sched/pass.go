package sched

import (
	"context"
	"time"

	"sonolife/pkg/life"
	"sonolife/pkg/sonify"
	"sonolife/pkg/synth"
)

// runPass runs one pass on its own goroutine and waits for it to report back.
func (s *Scheduler) runPass(ctx context.Context, grid *life.Grid) error {
	done := make(chan error, 1)
	go func() {
		done <- s.pass(ctx, grid)
	}()
	return <-done
}

// pass sweeps the columns left to right: highlight, tone for a non-empty
// column, then the column delay. Cancellation is checked before each column.
func (s *Scheduler) pass(ctx context.Context, grid *life.Grid) error {
	defer s.renderer.Render(grid, NoHighlight)

	s.mu.Lock()
	cfg, scale := s.cfg, s.scale
	s.mu.Unlock()

	for col, n := range sonify.ColumnActivity(grid) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.renderer.Render(grid, col)
		if n > 0 {
			s.play(sonify.ToneRequest{
				Column:    col,
				Activity:  n,
				Frequency: sonify.PitchFor(n, scale),
				Duration:  cfg.ToneDuration(),
			})
		}
		if err := sleep(ctx, cfg.ColumnDelay()); err != nil {
			return err
		}
	}
	return nil
}

// play synthesizes and hands off one tone on a fire-and-forget goroutine.
func (s *Scheduler) play(req sonify.ToneRequest) {
	s.tones.Add(1)
	go func() {
		defer s.tones.Done()
		buf, err := s.tone(req.Frequency, req.Duration)
		if err != nil {
			s.log.Warn("tone synthesis failed", "column", req.Column, "frequency", req.Frequency, "err", err)
			return
		}
		s.audio.Play(buf)
	}()
}

func (s *Scheduler) tone(freq float64, d time.Duration) (synth.Buffer, error) {
	key := toneKey{freq: freq, d: d}
	if v, ok := s.cache.Load(key); ok {
		return v.(synth.Buffer), nil
	}
	buf, err := synth.Synthesize(freq, d)
	if err != nil {
		return synth.Buffer{}, err
	}
	v, _ := s.cache.LoadOrStore(key, buf)
	return v.(synth.Buffer), nil
}
