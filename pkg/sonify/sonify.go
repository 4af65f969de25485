// Package sonify turns grid snapshots into note requests: each column's live
// cell count picks a note from a scale.
package sonify

import (
	"time"

	"sonolife/pkg/life"
)

// ToneRequest asks for one note for one column.
type ToneRequest struct {
	Column    int
	Activity  int
	Frequency float64
	Duration  time.Duration
}

// ColumnActivity returns the number of live cells in each column of g.
func ColumnActivity(g *life.Grid) []int {
	w, h := g.Width(), g.Height()
	cells := g.Cells()
	activity := make([]int, w)
	for y := 0; y < h; y++ {
		row := cells[y*w : (y+1)*w]
		for x, c := range row {
			activity[x] += int(c)
		}
	}
	return activity
}

// PitchFor maps an activity count to a frequency of the scale. Counts past the
// top of the scale saturate at the highest note.
func PitchFor(activity int, scale Scale) float64 {
	if len(scale) == 0 {
		return 0
	}
	idx := min(max(activity, 0), len(scale)-1)
	return scale[idx]
}

// Plan builds one request per column with at least one live cell, in column
// order. Empty columns are silent.
func Plan(activity []int, scale Scale, d time.Duration) []ToneRequest {
	var reqs []ToneRequest
	for col, n := range activity {
		if n <= 0 {
			continue
		}
		reqs = append(reqs, ToneRequest{
			Column:    col,
			Activity:  n,
			Frequency: PitchFor(n, scale),
			Duration:  d,
		})
	}
	return reqs
}
