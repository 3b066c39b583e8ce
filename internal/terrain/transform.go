package terrain

import "github.com/go-gl/mathgl/mgl32"

// transform places the terrain in the world: scale, then rotate by yaw,
// pitch and roll, then translate.
type transform struct {
	pos   mgl32.Vec3
	rot   mgl32.Vec3 // pitch, yaw, roll in radians
	scale mgl32.Vec3
	world mgl32.Mat4
}

func newTransform() transform {
	t := transform{scale: mgl32.Vec3{1, 1, 1}}
	t.rebuild()
	return t
}

func (t *transform) rebuild() {
	r := mgl32.HomogRotate3DY(t.rot[1]).
		Mul4(mgl32.HomogRotate3DX(t.rot[0])).
		Mul4(mgl32.HomogRotate3DZ(t.rot[2]))
	t.world = mgl32.Translate3D(t.pos[0], t.pos[1], t.pos[2]).
		Mul4(r).
		Mul4(mgl32.Scale3D(t.scale[0], t.scale[1], t.scale[2]))
}

// SetPosition moves the terrain origin.
func (g *Generator) SetPosition(p mgl32.Vec3) {
	g.transform.pos = p
	g.transform.rebuild()
}

// SetRotation sets pitch, yaw and roll in radians.
func (g *Generator) SetRotation(r mgl32.Vec3) {
	g.transform.rot = r
	g.transform.rebuild()
}

// SetScale sets the per-axis scale.
func (g *Generator) SetScale(s mgl32.Vec3) {
	g.transform.scale = s
	g.transform.rebuild()
}

// Translate offsets the position by d.
func (g *Generator) Translate(d mgl32.Vec3) { g.SetPosition(g.transform.pos.Add(d)) }

// Rotate adds d to pitch, yaw and roll.
func (g *Generator) Rotate(d mgl32.Vec3) { g.SetRotation(g.transform.rot.Add(d)) }

// Rescale multiplies the scale component-wise by f.
func (g *Generator) Rescale(f mgl32.Vec3) {
	s := g.transform.scale
	g.SetScale(mgl32.Vec3{s[0] * f[0], s[1] * f[1], s[2] * f[2]})
}

// Position returns the terrain origin.
func (g *Generator) Position() mgl32.Vec3 { return g.transform.pos }

// Rotation returns pitch, yaw and roll.
func (g *Generator) Rotation() mgl32.Vec3 { return g.transform.rot }

// Scale returns the per-axis scale.
func (g *Generator) Scale() mgl32.Vec3 { return g.transform.scale }

// World returns the current world matrix.
func (g *Generator) World() mgl32.Mat4 { return g.transform.world }
