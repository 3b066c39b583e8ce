package ui

import "github.com/go-gl/mathgl/mgl32"

type emitterProvider interface {
	AshEmitter() mgl32.Vec3
	FireEmitters() []mgl32.Vec3
	SmokeEmitters() []mgl32.Vec3
	World() mgl32.Mat4
}

// gridPoint maps a world-space point back onto the top-down grid view. The
// local frame has X along columns and Z along rows.
func gridPoint(world mgl32.Mat4, p mgl32.Vec3) (col, row float64) {
	local := mgl32.TransformCoordinate(p, world.Inv())
	return float64(local.X()), float64(local.Z())
}
