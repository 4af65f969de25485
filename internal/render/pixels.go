package render

import "image/color"

// Palette holds the cell colours, with a separate pair for the highlighted
// column.
type Palette struct {
	On, Off                   color.Color
	HighlightOn, HighlightOff color.Color
}

// DefaultPalette draws black cells on white and a blue sweep column.
func DefaultPalette() Palette {
	return Palette{
		On:           color.Black,
		Off:          color.White,
		HighlightOn:  color.RGBA{R: 20, G: 60, B: 200, A: 255},
		HighlightOff: color.RGBA{R: 200, G: 215, B: 255, A: 255},
	}
}

type rgba [4]uint8

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillCellsRGBA converts binary cell data (0/1) for a w-wide grid into RGBA
// pixels in buf. Cells in column highlight use the highlight colours; pass a
// negative column for none.
func fillCellsRGBA(buf []byte, cells []uint8, w, highlight int, p Palette) {
	on, off := toRGBA(p.On), toRGBA(p.Off)
	hOn, hOff := toRGBA(p.HighlightOn), toRGBA(p.HighlightOff)
	for i, c := range cells {
		px := off
		switch {
		case i%w == highlight && c != 0:
			px = hOn
		case i%w == highlight:
			px = hOff
		case c != 0:
			px = on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
