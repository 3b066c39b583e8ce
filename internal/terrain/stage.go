package terrain

import "fmt"

// Stage is a step of the generation sequence. Stages only advance; Reset is
// the sole way back to StageFlat.
type Stage uint8

const (
	StageFlat Stage = iota
	StageMountain
	StageCrater
	StageNoise
	StageLavaFlows
	StageComplete

	stageCount
)

var stageNames = [stageCount]string{
	StageFlat:      "flat",
	StageMountain:  "mountain",
	StageCrater:    "crater",
	StageNoise:     "noise",
	StageLavaFlows: "lava-flows",
	StageComplete:  "complete",
}

func (s Stage) String() string {
	if s < stageCount {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Noise stage timeline. Flow triggers fire when the countdown lands inside
// one of these windows; each trigger re-arms the countdown below its window.
const (
	noiseDuration  = 50.0
	noiseSlowAbove = 40.0
	flowCount      = 4
)

type stepFunc func(g *Generator, dt float64)

// steps maps each stage to the function that advances it by one update.
var steps = [stageCount]stepFunc{
	StageFlat:      (*Generator).stepFlat,
	StageMountain:  (*Generator).stepMountain,
	StageCrater:    (*Generator).stepCrater,
	StageNoise:     (*Generator).stepNoise,
	StageLavaFlows: (*Generator).stepLavaFlows,
	StageComplete:  func(*Generator, float64) {},
}

func (g *Generator) stepFlat(float64) {
	if g.age > 0 {
		return
	}
	g.generateMountain()
	g.advance(StageMountain, g.cfg.Params.MountainDuration)
}

func (g *Generator) stepMountain(dt float64) {
	if g.age > 0 {
		g.updateVertices(dt)
		return
	}
	g.generateCrater()
	g.advance(StageCrater, g.cfg.Params.CraterDuration)
}

func (g *Generator) stepCrater(dt float64) {
	if g.age > 0 {
		g.updateVertices(dt)
		return
	}
	g.generateNoise()
	g.advance(StageNoise, noiseDuration)
}

// stepNoise carves one lava flow each time the countdown enters (30,40],
// (20,25], (10,15] and finally (-inf,5]. The last trigger leaves the stage.
func (g *Generator) stepNoise(dt float64) {
	switch age := g.age; {
	case age > 30 && age <= 40:
		g.generateLavaFlow()
		g.age = 30
	case age > 20 && age <= 25:
		g.generateLavaFlow()
		g.age = 20
	case age > 10 && age <= 15:
		g.generateLavaFlow()
		g.age = 10
	case age <= 5:
		g.generateLavaFlow()
		g.advance(StageLavaFlows, g.cfg.Params.LavaDuration)
	default:
		if age > noiseSlowAbove {
			dt /= 2
		}
		g.updateVertices(dt)
	}
}

func (g *Generator) stepLavaFlows(dt float64) {
	if g.age > 0 {
		g.updateVertices(dt)
		return
	}
	g.complete()
}

func (g *Generator) advance(next Stage, age float64) {
	g.logger.Printf("%s -> %s", g.stage, next)
	g.stage = next
	g.age = age
}
