// Package noise provides the coherent noise the terrain generator uses to
// roughen heights and perturb normals.
package noise

import "math"

// Source supplies deterministic coherent noise roughly in [-1, 1].
type Source interface {
	Noise2(x, y float64) float64
	Noise3(x, y, z float64) float64
}

// RidgedMultifractal sums octaves of src folded into sharp ridges. Every
// octave is folded with offset-|n| and squared, then weighted by the previous
// octave's signal so ridges sharpen where earlier octaves were already high.
func RidgedMultifractal(src Source, x, y float64, octaves int, lacunarity, gain, offset float64) float64 {
	sum := 0.0
	freq := 1.0
	amp := 0.5
	prev := 1.0
	for i := 0; i < octaves; i++ {
		n := ridge(src.Noise2(x*freq, y*freq), offset)
		sum += n * amp * prev
		prev = n
		freq *= lacunarity
		amp *= gain
	}
	return sum
}

func ridge(h, offset float64) float64 {
	h = offset - math.Abs(h)
	return h * h
}
