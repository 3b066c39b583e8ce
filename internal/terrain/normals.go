package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// calculateNormals estimates normals from central differences of the
// displayed heights for cells whose neighbours are all interior. Once the run
// is complete each normal is roughened with noise sampled at the vertex.
func (g *Generator) calculateNormals() {
	f := g.field
	verts := f.Vertices()
	perturb := g.stage == StageComplete && g.cfg.Params.NormalNoiseFactor > 0
	k := g.cfg.Params.NormalNoiseFactor
	for row := 2; row < f.H-2; row++ {
		for col := 2; col < f.W-2; col++ {
			idx := f.Index(col, row)
			fx := (f.Height(col+1, row) - f.Height(col-1, row)) / 2
			fz := (f.Height(col, row+1) - f.Height(col, row-1)) / 2
			n := mgl32.Vec3{-fx, 1, -fz}.Normalize()
			if perturb {
				p := verts[idx].Pos
				x, y, z := float64(p[0])*k, float64(p[1])*k, float64(p[2])*k
				jitter := mgl32.Vec3{
					float32(g.src.Noise3(x, y, z)),
					float32(g.src.Noise3(y, z, x)),
					float32(g.src.Noise3(z, x, y)),
				}
				if m := n.Add(jitter); m.Len() > 0 {
					n = m.Normalize()
				}
			}
			verts[idx].Normal = n
		}
	}
}
