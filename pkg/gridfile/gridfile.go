// Package gridfile reads and writes grids as plain text: one line per row,
// cells as space separated 0/1 tokens.
package gridfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sonolife/pkg/life"
)

var (
	// ErrParse marks malformed grid text.
	ErrParse = errors.New("malformed grid file")
	// ErrIO marks failures reading or writing a grid file.
	ErrIO = errors.New("grid file i/o")
)

type ioError struct {
	op   string
	path string
	err  error
}

func (e *ioError) Error() string        { return fmt.Sprintf("[%s] %s: %v", e.op, e.path, e.err) }
func (e *ioError) Unwrap() error        { return e.err }
func (e *ioError) Is(target error) bool { return target == ErrIO }

// Write serializes g to w, rows top to bottom.
func Write(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	width := g.Width()
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x, c := range cells[y*width : (y+1)*width] {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteByte('0' + c)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Encode returns the text form of g.
func Encode(g *life.Grid) string {
	var buf bytes.Buffer
	_ = Write(&buf, g)
	return buf.String()
}

// Decode parses grid text into rows of integers. Blank lines are skipped.
func Decode(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(ErrParse, "line %d, token %d: %q", line, i+1, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "[Decode] failed to scan grid text")
	}
	return rows, nil
}

// Apply copies the overlapping top-left rectangle of rows onto a copy of dst.
// Cells outside the overlap keep their state in dst. Non-zero values are alive.
func Apply(dst *life.Grid, rows [][]int) *life.Grid {
	w, h := dst.Width(), dst.Height()
	cells := append([]uint8(nil), dst.Cells()...)
	for y := 0; y < min(len(rows), h); y++ {
		row := rows[y]
		for x := 0; x < min(len(row), w); x++ {
			cells[y*w+x] = life.Dead
			if row[x] != 0 {
				cells[y*w+x] = life.Alive
			}
		}
	}
	g, _ := life.FromCells(w, h, cells)
	return g
}

// Save writes g to the file at path.
func Save(path string, g *life.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(&ioError{op: "Save", path: path, err: err})
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return errors.WithStack(&ioError{op: "Save", path: path, err: err})
	}
	if err := f.Close(); err != nil {
		return errors.WithStack(&ioError{op: "Save", path: path, err: err})
	}
	return nil
}

// Load reads the file at path and applies it onto dst. On failure dst is
// returned unchanged together with the error.
func Load(path string, dst *life.Grid) (*life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return dst, errors.WithStack(&ioError{op: "Load", path: path, err: err})
	}
	defer f.Close()

	rows, err := Decode(f)
	if err != nil {
		if errors.Is(err, ErrParse) {
			return dst, errors.Wrapf(err, "[Load] %s", path)
		}
		return dst, errors.WithStack(&ioError{op: "Load", path: path, err: err})
	}
	return Apply(dst, rows), nil
}
