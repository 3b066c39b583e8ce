//go:build ebiten

package ui

import (
	"image/color"

	"volcano/internal/core"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type lavaMaskProvider interface {
	LavaMask() []bool
}

var (
	lavaTint = color.RGBA{R: 255, G: 90, B: 20, A: 150}
	ashInk   = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	fireInk  = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	smokeInk = color.RGBA{R: 120, G: 140, B: 170, A: 255}
)

const markerDot = 5.0

// Overlay draws optional debugging visuals on top of the terrain view.
type Overlay struct {
	sim          core.Sim
	scale        int
	showLava     bool
	showEmitters bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlays: 1 for the lava mask, 2 for emitter markers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showLava = !o.showLava
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showEmitters = !o.showEmitters
	}
}

// Draw renders the enabled overlays.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showLava {
		if p, ok := o.sim.(lavaMaskProvider); ok {
			o.drawMask(screen, p.LavaMask())
		}
	}
	if o.showEmitters {
		if p, ok := o.sim.(emitterProvider); ok {
			o.drawEmitters(screen, p)
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []bool) {
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 || len(mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, total*4)
	}
	for i, on := range mask {
		px := o.maskBuf[i*4 : i*4+4]
		if !on {
			px[0], px[1], px[2], px[3] = 0, 0, 0, 0
			continue
		}
		px[0], px[1], px[2], px[3] = lavaTint.R, lavaTint.G, lavaTint.B, lavaTint.A
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawEmitters(screen *ebiten.Image, p emitterProvider) {
	world := p.World()
	mark := func(pos mgl32.Vec3, ink color.RGBA) {
		col, row := gridPoint(world, pos)
		s := float64(o.scale)
		o.drawPoint(screen, (col+0.5)*s, (row+0.5)*s, markerDot, ink)
	}
	for _, pos := range p.SmokeEmitters() {
		mark(pos, smokeInk)
	}
	for _, pos := range p.FireEmitters() {
		mark(pos, fireInk)
	}
	mark(p.AshEmitter(), ashInk)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
