package terrain

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"volcano/internal/heightfield"
)

// generateCrater sinks a spherical bowl into the highest point of the field
// and tags its floor as lava. The ash emitter sits above the peak.
func (g *Generator) generateCrater() {
	f := g.field
	col, row, peak := f.MaxTarget()
	radius := float32(f.W) / 12
	g.crater = &Crater{Col: col, Row: row, Radius: radius, Peak: peak}
	g.ash = g.toWorld(float32(col), peak+float32(g.cfg.Params.AshHeight), float32(row))

	threshold := float32(g.cfg.Params.CraterLavaThreshold)
	r2 := radius * radius
	cx, cz := float32(col), float32(row)
	c0, c1 := clampSpan(cx-radius, cx+radius, f.W)
	r0, r1 := clampSpan(cz-radius, cz+radius, f.H)
	for z := r0; z <= r1; z++ {
		dz := float32(z) - cz
		for x := c0; x <= c1; x++ {
			dx := float32(x) - cx
			d := r2 - (dx*dx + dz*dz)
			if d <= 0 {
				continue
			}
			f.AddTarget(x, z, -math32.Sqrt(d))
			if d > threshold {
				g.markLava(x, z)
			}
		}
	}
	g.logger.Printf("crater at (%d,%d) r=%.0f peak=%.1f", col, row, radius, peak)
	g.touch()
}

// markLava tags (col, row) as lava and records its current world position.
func (g *Generator) markLava(col, row int) {
	f := g.field
	f.SetType(col, row, heightfield.Lava)
	g.lava = append(g.lava, LavaVertex{
		Index: f.Index(col, row),
		Pos:   g.toWorld(float32(col), f.Target(col, row), float32(row)),
	})
}

func (g *Generator) toWorld(x, y, z float32) mgl32.Vec3 {
	return mgl32.TransformCoordinate(mgl32.Vec3{x, y, z}, g.transform.world)
}
