package terrain

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	flowStartInset  = 25
	flowEndOutset   = 50
	flowStepScale   = 10
	flowWobbleScale = 20
	flowDepthBias   = 0.8
	flowLavaMargin  = 5
)

// maxFlowSteps bounds a walk. The cursor gains at least 0.1-√2/20 along its
// heading each step, so it leaves any interior well before this.
func maxFlowSteps(w, h int) int { return 40 * (w + h) }

// generateLavaFlow walks a cursor out of the crater along a random heading,
// wobbling as it goes, and carves a channel across its path. The channel core
// is tagged lava. It returns the number of steps walked.
func (g *Generator) generateLavaFlow() int {
	if g.crater == nil {
		g.generateCrater()
	}
	return g.carveFlow(g.rng.Angle())
}

// carveFlow carves one flow leaving the crater at angle. Each flow starts
// with an empty carve mask, so it may deepen cells an earlier flow carved.
func (g *Generator) carveFlow(angle float32) int {
	f := g.field
	p := g.cfg.Params
	cr := g.crater
	center := mgl32.Vec2{float32(cr.Col), float32(cr.Row)}

	heading := mgl32.Vec2{math32.Cos(angle), math32.Sin(angle)}
	start := center.Add(heading.Mul(cr.Radius - flowStartInset))
	dest := center.Add(heading.Mul(cr.Radius + flowEndOutset))
	dir := dest.Sub(start).Normalize()
	side := mgl32.Vec2{-dir[1], dir[0]}
	curve := float32(p.FlowCurve)

	g.carved.Clear()
	cursor := start
	limit := maxFlowSteps(f.W, f.H)
	steps := 0
	for ; steps < limit && g.insideInterior(cursor); steps++ {
		g.carveAcross(cursor, side)
		wobble := math32.Sin(float32(steps)/(curve*10)) / flowWobbleScale
		cursor = cursor.Add(dir.Mul(1.0 / flowStepScale)).Add(mgl32.Vec2{wobble, wobble})
	}

	g.flowsCarved++
	g.logger.Printf("lava flow %d: %d steps", g.flowsCarved, steps)
	g.touch()
	return steps
}

// carveAcross lowers the cells of one cross-section centred on cursor by the
// cosine profile. Cells already in the carve mask are left alone.
func (g *Generator) carveAcross(cursor, side mgl32.Vec2) {
	f := g.field
	halfWidth := g.cfg.Params.FlowHalfWidth
	depth := float32(g.cfg.Params.FlowDepth)
	lavaCore := halfWidth - flowLavaMargin
	for j := -halfWidth; j < halfWidth; j++ {
		pt := cursor.Add(side.Mul(float32(j)))
		col := int(math32.Floor(pt[0] + 0.5))
		row := int(math32.Floor(pt[1] + 0.5))
		if !f.Interior(col, row) || g.carved.At(col, row) {
			continue
		}
		g.carved.Set(col, row, true)
		f.AddTarget(col, row, -flowProfile(depth, j, halfWidth))
		if absInt(j) < lavaCore {
			g.markLava(col, row)
		}
	}
}

func flowProfile(depth float32, j, halfWidth int) float32 {
	return depth * (math32.Cos(math.Pi*float32(j)/float32(halfWidth)) + flowDepthBias)
}

func (g *Generator) insideInterior(p mgl32.Vec2) bool {
	f := g.field
	return p[0] >= 1 && p[0] < float32(f.W-1) && p[1] >= 1 && p[1] < float32(f.H-1)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
