package noise

import "github.com/ojrac/opensimplex-go"

// Simplex adapts opensimplex noise to Source.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex seeds an OpenSimplex generator.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

func (s *Simplex) Noise2(x, y float64) float64 { return s.n.Eval2(x, y) }

func (s *Simplex) Noise3(x, y, z float64) float64 { return s.n.Eval3(x, y, z) }

func init() {
	Register("simplex", func(seed int64) Source { return NewSimplex(seed) })
}
