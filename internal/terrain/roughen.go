package terrain

import (
	"volcano/internal/heightfield"
	"volcano/internal/noise"
)

const (
	ridgedLacunarity = 1.5
	ridgedGain       = 0.5
	ridgedOffset     = 1.0
)

// generateNoise adds ridged multifractal detail to every interior target.
func (g *Generator) generateNoise() {
	f := g.field
	amp := g.cfg.Params.NoiseAmplitude
	octaves := g.cfg.Params.NoiseOctaves
	for row := 1; row < f.H-1; row++ {
		y := float64(row) * float64(heightfield.TexCoordScale)
		for col := 1; col < f.W-1; col++ {
			x := float64(col) * float64(heightfield.TexCoordScale)
			n := noise.RidgedMultifractal(g.src, x, y, octaves, ridgedLacunarity, ridgedGain, ridgedOffset)
			f.AddTarget(col, row, float32(n*amp))
		}
	}
	g.noiseDone = true
	g.touch()
}
