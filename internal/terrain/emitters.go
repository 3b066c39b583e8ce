package terrain

import "github.com/go-gl/mathgl/mgl32"

// extractEmitters samples fire and smoke points from the lava set, with
// replacement. Without any lava they all collapse onto the ash point.
func (g *Generator) extractEmitters() {
	g.fire = g.sampleLava(g.cfg.FireCount)
	g.smoke = g.sampleLava(g.cfg.SmokeCount)
}

func (g *Generator) sampleLava(n int) []mgl32.Vec3 {
	if n <= 0 {
		return nil
	}
	out := make([]mgl32.Vec3, n)
	for i := range out {
		if len(g.lava) == 0 {
			out[i] = g.ash
			continue
		}
		out[i] = g.lava[g.rng.IntN(len(g.lava))].Pos
	}
	return out
}

// AshEmitter returns the point above the crater where ash is released. It is
// the zero vector before the crater stage.
func (g *Generator) AshEmitter() mgl32.Vec3 { return g.ash }

// FireEmitter returns fire point i. ok is false for out-of-range indices or
// before generation completes.
func (g *Generator) FireEmitter(i int) (mgl32.Vec3, bool) {
	if i < 0 || i >= len(g.fire) {
		return mgl32.Vec3{}, false
	}
	return g.fire[i], true
}

// SmokeEmitter returns smoke point i. ok is false for out-of-range indices or
// before generation completes.
func (g *Generator) SmokeEmitter(i int) (mgl32.Vec3, bool) {
	if i < 0 || i >= len(g.smoke) {
		return mgl32.Vec3{}, false
	}
	return g.smoke[i], true
}

// FireEmitters returns every fire point.
func (g *Generator) FireEmitters() []mgl32.Vec3 { return g.fire }

// SmokeEmitters returns every smoke point.
func (g *Generator) SmokeEmitters() []mgl32.Vec3 { return g.smoke }
