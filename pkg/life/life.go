package life

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"sonolife/pkg/core"
)

const (
	// Dead marks an empty cell.
	Dead uint8 = 0
	// Alive marks a live cell.
	Alive uint8 = 1
)

// ErrOutOfBounds is returned for coordinates outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid is an immutable snapshot of a Game of Life board stored in row-major
// order. Cells outside the board are treated as dead; there is no wrapping.
type Grid struct {
	w, h  int
	cells []uint8
}

// New returns an all-dead grid with the given dimensions.
func New(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]uint8, w*h)}
}

// Random returns a grid where each cell is alive with probability p.
func Random(w, h int, p float64, rng *core.RNG) *Grid {
	g := New(w, h)
	core.FillChance(rng, g.cells, p)
	return g
}

// FromCells builds a grid from a row-major buffer. Any non-zero value is alive.
func FromCells(w, h int, cells []uint8) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("invalid grid size %dx%d", w, h)
	}
	if len(cells) != w*h {
		return nil, errors.Errorf("cell buffer has %d entries, want %d", len(cells), w*h)
	}
	g := New(w, h)
	for i, c := range cells {
		if c != Dead {
			g.cells[i] = Alive
		}
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice. Callers must treat it as read-only.
func (g *Grid) Cells() []uint8 { return g.cells }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *Grid) check(x, y int) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "cell (%d,%d) outside %dx%d", x, y, g.w, g.h)
	}
	return nil
}

// Alive reports the state of the cell at (x, y).
func (g *Grid) Alive(x, y int) (bool, error) {
	if err := g.check(x, y); err != nil {
		return false, err
	}
	return g.cells[y*g.w+x] == Alive, nil
}

// NeighborCount returns the number of live cells among the eight neighbours of
// (x, y). Neighbours beyond the edge count as dead.
func (g *Grid) NeighborCount(x, y int) (int, error) {
	if err := g.check(x, y); err != nil {
		return 0, err
	}
	return g.neighbors(x, y), nil
}

func (g *Grid) neighbors(x, y int) int {
	minX, maxX := max(0, x-1), min(g.w-1, x+1)
	minY, maxY := max(0, y-1), min(g.h-1, y+1)
	count := 0
	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny*g.w : (ny+1)*g.w]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			count += int(row[nx])
		}
	}
	return count
}

// Step computes the next generation under B3/S23 into a new grid. The
// receiver is only read.
func (g *Grid) Step() *Grid {
	next := &Grid{w: g.w, h: g.h, cells: make([]uint8, len(g.cells))}

	var (
		eg            errgroup.Group
		workers       = min(runtime.NumCPU(), g.h)
		rowsPerWorker = (g.h + workers - 1) / workers
	)
	for start := 0; start < g.h; start += rowsPerWorker {
		end := min(start+rowsPerWorker, g.h)
		eg.Go(func() error {
			g.stepRows(next, start, end)
			return nil
		})
	}
	_ = eg.Wait()
	return next
}

func (g *Grid) stepRows(next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			n := g.neighbors(x, y)
			alive := g.cells[idx] == Alive
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				next.cells[idx] = Alive
			}
		}
	}
}

// Toggle returns a copy of the grid with the cell at (x, y) flipped.
func (g *Grid) Toggle(x, y int) (*Grid, error) {
	if err := g.check(x, y); err != nil {
		return g, err
	}
	next := g.Clone()
	next.cells[y*g.w+x] ^= Alive
	return next, nil
}

// Set returns a copy of the grid with the cell at (x, y) set to alive or dead.
// The receiver is returned unchanged when the cell already has that state.
func (g *Grid) Set(x, y int, alive bool) (*Grid, error) {
	if err := g.check(x, y); err != nil {
		return g, err
	}
	want := Dead
	if alive {
		want = Alive
	}
	idx := y*g.w + x
	if g.cells[idx] == want {
		return g, nil
	}
	next := g.Clone()
	next.cells[idx] = want
	return next, nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: append([]uint8(nil), g.cells...)}
}

// Population returns the number of live cells.
func (g *Grid) Population() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}
