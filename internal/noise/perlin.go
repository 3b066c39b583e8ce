package noise

import "github.com/aquilax/go-perlin"

const (
	perlinAlpha = 2
	perlinBeta  = 2
)

// Perlin adapts classic gradient noise to Source. Octave summation is left to
// RidgedMultifractal, so the underlying generator runs a single octave.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin seeds a single-octave Perlin generator.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed)}
}

func (p *Perlin) Noise2(x, y float64) float64 { return p.p.Noise2D(x, y) }

func (p *Perlin) Noise3(x, y, z float64) float64 { return p.p.Noise3D(x, y, z) }

func init() {
	Register("perlin", func(seed int64) Source { return NewPerlin(seed) })
}
