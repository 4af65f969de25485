package app

import (
	"sync/atomic"

	"sonolife/pkg/life"
)

// Frame is one rendered state: a grid and the highlighted column, or -1.
type Frame struct {
	Grid      *life.Grid
	Highlight int
}

// FrameBuffer hands frames from the scheduler goroutines to the draw loop.
// Render stores the latest frame; Latest reads it. Older frames are dropped.
type FrameBuffer struct {
	latest atomic.Pointer[Frame]
}

// Render implements sched.Renderer.
func (b *FrameBuffer) Render(g *life.Grid, highlight int) {
	b.latest.Store(&Frame{Grid: g, Highlight: highlight})
}

// Latest returns the most recent frame, or ok=false before the first render.
func (b *FrameBuffer) Latest() (Frame, bool) {
	f := b.latest.Load()
	if f == nil {
		return Frame{}, false
	}
	return *f, true
}
