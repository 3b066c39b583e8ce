package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the viewer, HUD and remote preview drive. It is
// frame driven: the host passes the elapsed seconds since the last update.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Update(dt float64)
	Cells() []uint8
}

// StatusProvider is implemented by sims that can describe their progress in a
// single line for overlays and terminal previews.
type StatusProvider interface {
	Status() string
}
