package render

import (
	"image/color"
	"testing"
)

func TestFillCellsRGBAHighlight(t *testing.T) {
	p := Palette{
		On:           color.RGBA{R: 1, A: 255},
		Off:          color.RGBA{R: 2, A: 255},
		HighlightOn:  color.RGBA{R: 3, A: 255},
		HighlightOff: color.RGBA{R: 4, A: 255},
	}
	// 3x2 grid, column 1 highlighted.
	cells := []uint8{
		1, 1, 0,
		0, 0, 1,
	}
	buf := make([]byte, 4*len(cells))
	fillCellsRGBA(buf, cells, 3, 1, p)

	want := []uint8{1, 3, 2, 2, 4, 1}
	for i, r := range want {
		if buf[i*4] != r {
			t.Fatalf("pixel %d red = %d, want %d", i, buf[i*4], r)
		}
		if buf[i*4+3] != 255 {
			t.Fatalf("pixel %d alpha = %d", i, buf[i*4+3])
		}
	}
}

func TestFillCellsRGBANoHighlight(t *testing.T) {
	p := DefaultPalette()
	cells := []uint8{1, 0}
	buf := make([]byte, 8)
	fillCellsRGBA(buf, cells, 2, -1, p)
	if buf[0] != 0 || buf[4] != 255 {
		t.Fatalf("expected black then white, got %v", buf)
	}
}
