package terrain

// updateVertices moves every interior displayed height toward its target by
// dt/InterpRate of the remaining gap. Normals follow any change.
func (g *Generator) updateVertices(dt float64) {
	f := g.field
	t := float32(dt / g.cfg.Params.InterpRate)
	if t > 1 {
		t = 1
	}
	verts := f.Vertices()
	targets := f.Targets()
	changed := false
	for row := 1; row < f.H-1; row++ {
		for col := 1; col < f.W-1; col++ {
			idx := f.Index(col, row)
			diff := targets[idx] - verts[idx].Pos[1]
			if diff == 0 {
				continue
			}
			if t == 1 {
				verts[idx].Pos[1] = targets[idx]
			} else {
				verts[idx].Pos[1] += diff * t
			}
			changed = true
		}
	}
	if changed {
		g.calculateNormals()
		g.touch()
	}
}

// touch marks the vertex buffer and the preview as out of date.
func (g *Generator) touch() {
	g.dirty = true
	g.displayStale = true
}
