//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	gridLineColor = color.RGBA{R: 190, G: 190, B: 200, A: 255}
	toastBg       = color.RGBA{R: 16, G: 16, B: 20, A: 200}
)

// Overlay draws optional grid lines and transient messages over the cells.
type Overlay struct {
	cols, rows int
	cell       int
	showGrid   bool
	messages   *Messages
}

// NewOverlay constructs an overlay for a cols x rows grid drawn at cell pixels
// per cell. Grid lines start enabled when cells are large enough to see them.
func NewOverlay(cols, rows, cell int, messages *Messages) *Overlay {
	return &Overlay{cols: cols, rows: rows, cell: cell, showGrid: cell >= 6, messages: messages}
}

// Update toggles the grid lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw paints the overlay on screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showGrid {
		o.drawGrid(screen)
	}
	o.drawMessages(screen)
}

func (o *Overlay) drawGrid(screen *ebiten.Image) {
	w, h := float32(o.cols*o.cell), float32(o.rows*o.cell)
	for x := 0; x <= o.cols; x++ {
		fx := float32(x * o.cell)
		vector.StrokeLine(screen, fx, 0, fx, h, 1, gridLineColor, false)
	}
	for y := 0; y <= o.rows; y++ {
		fy := float32(y * o.cell)
		vector.StrokeLine(screen, 0, fy, w, fy, 1, gridLineColor, false)
	}
}

func (o *Overlay) drawMessages(screen *ebiten.Image) {
	if o.messages == nil {
		return
	}
	face := basicfont.Face7x13
	y := 6
	for _, msg := range o.messages.Active() {
		b := text.BoundString(face, msg)
		vector.DrawFilledRect(screen, 4, float32(y), float32(b.Dx()+8), 18, toastBg, false)
		text.Draw(screen, msg, face, 8, y+13, color.White)
		y += 22
	}
}
