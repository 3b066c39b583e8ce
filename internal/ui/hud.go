//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"volcano/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textBright = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textDim    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	statusInk  = color.RGBA{R: 255, G: 170, B: 90, A: 255}
)

// HUD renders the parameter panel to the right of the terrain view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	offsetX  int
	title    string
	status   string
	controls []hudControl
}

type hudControl struct {
	ctrl     core.ParameterControl
	value    float64
	hasValue bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD constructs a HUD for sim with the given panel width. A width of zero
// disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: sim.Name() + " controls"}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range p.ParameterControls() {
			top := controlsTop + i*lineHeight
			y := top + (lineHeight-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, hudControl{ctrl: ctrl, top: top, minus: minus, plus: plus})
		}
	}
	return h
}

// Update refreshes control values from the sim's snapshot and handles clicks
// on the +/- buttons. offsetX is the panel's left edge in screen space.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	if sp, ok := h.sim.(core.StatusProvider); ok {
		h.status = sp.Status()
	}
	pp, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snap := pp.Parameters()
	for i := range h.controls {
		c := &h.controls[i]
		c.hasValue = false
		if p, ok := snap.Lookup(c.ctrl.Key); ok {
			c.value, c.hasValue = parseValue(c.ctrl, p.Value)
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	mx -= offsetX
	if mx < 0 {
		return
	}
	pt := image.Pt(mx, my)
	for i := range h.controls {
		c := &h.controls[i]
		if !c.hasValue {
			continue
		}
		dir := 0
		switch {
		case pt.In(c.minus):
			dir = -1
		case pt.In(c.plus):
			dir = 1
		default:
			continue
		}
		if target, ok := nudge(c.ctrl, c.value, dir); ok && applyControl(h.sim, c.ctrl, target) {
			c.value = target
		}
		return
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, textBright)
	text.Draw(h.panel, h.status, face, panelPadding, panelPadding+headerBaseline+statusSpacing, statusInk)

	for i := range h.controls {
		c := &h.controls[i]
		baseline := c.top + labelBaseline
		text.Draw(h.panel, c.ctrl.Label, face, panelPadding, baseline, textBright)
		value, ink := "--", textDim
		if c.hasValue {
			value, ink = formatValue(c.ctrl, c.value), textBright
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minus.Min.X-buttonGap-w, baseline, ink)
		_, canDec := nudge(c.ctrl, c.value, -1)
		_, canInc := nudge(c.ctrl, c.value, 1)
		h.drawButton(c.minus, "-", c.hasValue && canDec)
		h.drawButton(c.plus, "+", c.hasValue && canInc)
	}

	y := height - panelPadding - (len(KeyHelp)-1)*helpLine
	for _, line := range KeyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, textDim)
		y += helpLine
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	statusSpacing  = 18
	labelBaseline  = 24
	helpLine       = 16
	controlsTop    = panelPadding + headerBaseline + statusSpacing + 14
)
