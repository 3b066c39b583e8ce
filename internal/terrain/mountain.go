package terrain

import (
	"github.com/chewxy/math32"
)

// generateMountain scatters MoundCount cones around the field centre. Cones
// stack, so overlapping mounds build an irregular massif.
func (g *Generator) generateMountain() {
	f := g.field
	for i := 0; i < g.cfg.Params.MoundCount; i++ {
		radius := g.rng.IntN(f.W/6) + f.W/18
		angle := g.rng.Angle()
		reach := float32(f.W/2 - 2*radius)
		if reach < 0 {
			reach = 0
		}
		dist := g.rng.Float32()*reach + float32(radius)/4
		cx := float32(f.W/2) + math32.Cos(angle)*dist
		cz := float32(f.H/2) + math32.Sin(angle)*dist
		g.addMound(cx, cz, float32(radius))
	}
	g.mountainDone = true
	g.touch()
}

// addMound raises a cone of the given radius centred on (cx, cz). The cone
// is (radius-d)/4 high at distance d and only touches interior cells.
func (g *Generator) addMound(cx, cz, radius float32) {
	if radius <= 0 {
		return
	}
	f := g.field
	r2 := radius * radius
	c0, c1 := clampSpan(cx-radius, cx+radius, f.W)
	r0, r1 := clampSpan(cz-radius, cz+radius, f.H)
	for row := r0; row <= r1; row++ {
		dz := float32(row) - cz
		for col := c0; col <= c1; col++ {
			dx := float32(col) - cx
			distSq := dx*dx + dz*dz
			if distSq >= r2 {
				continue
			}
			f.AddTarget(col, row, (radius-math32.Sqrt(distSq))/4)
		}
	}
}

// clampSpan converts a float range to the interior index range [1, n-2].
// An empty range comes back with lo > hi.
func clampSpan(lo, hi float32, n int) (int, int) {
	a := int(math32.Floor(lo))
	b := int(math32.Ceil(hi))
	if a < 1 {
		a = 1
	}
	if b > n-2 {
		b = n - 2
	}
	return a, b
}
