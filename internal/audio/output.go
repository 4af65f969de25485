//go:build ebiten

// Package audio plays synthesized tones through the ebiten audio context.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"sonolife/pkg/synth"
)

// Output mixes any number of overlapping tones. Play never blocks.
type Output struct {
	ctx *audio.Context
	log *slog.Logger
	wg  sync.WaitGroup
}

// New creates the process-wide audio context at synth.SampleRate.
func New(log *slog.Logger) *Output {
	return &Output{ctx: audio.NewContext(synth.SampleRate), log: log}
}

// Play starts buf on its own player and releases the player when it ends.
func (o *Output) Play(buf synth.Buffer) {
	data := buf.Bytes()
	if len(data) == 0 {
		return
	}
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		player := o.ctx.NewPlayerFromBytes(data)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			o.log.Warn("closing audio player", "err", err)
		}
	}()
}

// Wait blocks until every started tone has finished.
func (o *Output) Wait() {
	o.wg.Wait()
}
