package terrain

import (
	"volcano/internal/render"
)

// buildHeightMap records the final target heights in world space. The
// adapter receives it on the next Render.
func (g *Generator) buildHeightMap() {
	f := g.field
	hm := render.NewHeightMap(f.W, f.H)
	for row := 0; row < f.H; row++ {
		for col := 0; col < f.W; col++ {
			p := g.toWorld(float32(col), f.Target(col, row), float32(row))
			hm.Pix[f.Index(col, row)] = p[1]
		}
	}
	g.heightMap = hm
	g.heightRes = nil
}
