//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sonolife/pkg/life"
)

// GridPainter updates a single RGBA image from grid snapshots.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, p Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: p}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled by cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, highlight, cell int) {
	if g == nil || g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	fillCellsRGBA(gp.buf, g.Cells(), gp.w, highlight, gp.palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell), float64(cell))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
