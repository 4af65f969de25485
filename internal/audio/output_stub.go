//go:build !ebiten

// Package audio plays synthesized tones. Without the ebiten tag tones are
// only logged.
package audio

import (
	"log/slog"
	"sync/atomic"

	"sonolife/pkg/synth"
)

// Output discards tones in headless builds.
type Output struct {
	log    *slog.Logger
	played atomic.Int64
}

// New returns a discarding output.
func New(log *slog.Logger) *Output {
	return &Output{log: log}
}

// Play records the tone and drops it.
func (o *Output) Play(buf synth.Buffer) {
	n := o.played.Add(1)
	o.log.Debug("tone discarded", "frames", buf.Frames(), "count", n)
}

// Played reports how many tones were submitted.
func (o *Output) Played() int64 { return o.played.Load() }

// Wait returns immediately.
func (o *Output) Wait() {}
