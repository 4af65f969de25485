//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"sonolife/internal/core"
)

var (
	panelBg     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBg    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffBg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonFg    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffFg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

var keyHelp = []string{
	"Space run  N step  R random",
	"M manual  C clear  G grid",
	"S save  L load  Q quit",
}

// HUD renders run status and parameter controls to the right of the grid.
type HUD struct {
	ctl    Controller
	width  int
	panel  *ebiten.Image
	offset int

	status   core.Status
	controls []hudControl
}

type hudControl struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD panel of the given width.
func NewHUD(ctl Controller, width int) *HUD {
	h := &HUD{ctl: ctl, width: max(width, 0)}
	for i, ctrl := range ctl.ParameterControls() {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.controls = append(h.controls, hudControl{control: ctrl, top: top, minusRect: minus, plusRect: plus})
	}
	return h
}

// Update refreshes the cached status and parameter values and handles clicks
// on the +/- buttons. panelOffsetX is the panel's left edge on screen.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offset = panelOffsetX
	h.status = h.ctl.Status()
	snap := h.ctl.Parameters()
	for i := range h.controls {
		c := &h.controls[i]
		c.hasValue = false
		p, ok := snap.Lookup(c.control.Key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		c.value, c.hasValue = v, true
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offset, my)
	for i := range h.controls {
		c := &h.controls[i]
		if !c.hasValue {
			continue
		}
		switch {
		case p.In(c.minusRect):
			h.adjust(c, -1)
			return
		case p.In(c.plusRect):
			h.adjust(c, 1)
			return
		}
	}
}

func (h *HUD) adjust(c *hudControl, dir int) {
	target, ok := stepValue(c.control, c.value, dir)
	if !ok {
		return
	}
	if c.control.Type == core.ParamTypeInt {
		ok = h.ctl.SetIntParameter(c.control.Key, int(target))
	} else {
		ok = h.ctl.SetFloatParameter(c.control.Key, target)
	}
	if ok {
		c.value = target
	}
}

// Contains reports whether screen point x lies over the panel.
func (h *HUD) Contains(x int) bool {
	return h != nil && h.width > 0 && x >= h.offset
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range statusLines(h.status) {
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
		y += 16
	}
	for _, c := range h.controls {
		text.Draw(h.panel, c.control.Label, face, panelPadding, c.top+labelBaseline, textColor)
		value, fg := "--", dimColor
		if c.hasValue {
			value, fg = formatValue(c.control, c.value), textColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minusRect.Min.X-buttonGap-w, c.top+labelBaseline, fg)

		_, canDown := stepValue(c.control, c.value, -1)
		_, canUp := stepValue(c.control, c.value, 1)
		h.drawButton(c.minusRect, "-", c.hasValue && canDown)
		h.drawButton(c.plusRect, "+", c.hasValue && canUp)
	}
	helpY := controlsTop + len(h.controls)*lineHeight + labelBaseline
	for i, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, helpY+i*16, dimColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBg, buttonFg
	if !enabled {
		bg, fg = buttonOffBg, buttonOffFg
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 3*16
)
