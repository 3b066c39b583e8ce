package terrain

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hsluv/hsluv-go"

	"volcano/internal/heightfield"
)

const (
	rockLevels = 48
	lavaLevels = 16

	ambient = 0.35
)

// lightDir is the direction the sun's rays travel.
var lightDir = mgl32.Vec3{2, -0.5, 1.5}.Normalize()

var terrainPalette = buildTerrainPalette()

// Palette exposes the colours indexed by Cells: rock from low to high, then
// lava from cool to hot.
func (g *Generator) Palette() []color.RGBA { return terrainPalette }

func buildTerrainPalette() []color.RGBA {
	palette := make([]color.RGBA, 0, rockLevels+lavaLevels)
	for i := 0; i < rockLevels; i++ {
		t := float64(i) / float64(rockLevels-1)
		palette = append(palette, hsluvRGBA(40-20*t, 25+10*t, 18+67*t))
	}
	for i := 0; i < lavaLevels; i++ {
		t := float64(i) / float64(lavaLevels-1)
		palette = append(palette, hsluvRGBA(10+40*t, 100, 45+30*t))
	}
	return palette
}

func hsluvRGBA(h, s, l float64) color.RGBA {
	r, g, b := hsluv.HsluvToRGB(h, s, l)
	return color.RGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: 255}
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Cells returns one palette index per vertex, banded by displayed height.
func (g *Generator) Cells() []uint8 {
	g.refreshDisplay()
	return g.display
}

// Shade returns the per-vertex light factor in [ambient, 1].
func (g *Generator) Shade() []float32 {
	g.refreshDisplay()
	return g.shade
}

func (g *Generator) refreshDisplay() {
	if g.field == nil || !g.displayStale {
		return
	}
	f := g.field
	verts := f.Vertices()

	lo, hi := f.Height(1, 1), f.Height(1, 1)
	for row := 1; row < f.H-1; row++ {
		for col := 1; col < f.W-1; col++ {
			h := f.Height(col, row)
			if h < lo {
				lo = h
			}
			if h > hi {
				hi = h
			}
		}
	}
	span := hi - lo
	toLight := lightDir.Mul(-1)

	for i := range verts {
		v := &verts[i]
		col, row := f.Coords(i)
		if f.Edge(col, row) {
			g.display[i] = 0
			g.shade[i] = ambient
			continue
		}
		t := float32(0.5)
		if span > 0 {
			t = (v.Pos[1] - lo) / span
		}
		if v.Type == heightfield.Lava {
			g.display[i] = uint8(rockLevels + int(t*(lavaLevels-1)+0.5))
		} else {
			g.display[i] = uint8(int(t*(rockLevels-1) + 0.5))
		}
		lambert := v.Normal.Dot(toLight)
		if lambert < 0 {
			lambert = 0
		}
		g.shade[i] = ambient + (1-ambient)*lambert
	}
	g.displayStale = false
}

// LavaMask reports, per vertex, whether the cell is lava.
func (g *Generator) LavaMask() []bool {
	if g.field == nil {
		return nil
	}
	verts := g.field.Vertices()
	mask := make([]bool, len(verts))
	for i := range verts {
		mask[i] = verts[i].Type == heightfield.Lava
	}
	return mask
}
