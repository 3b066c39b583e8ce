package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for column x and row y.
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// Coords is the inverse of Index.
func (g *Grid[T]) Coords(idx int) (x, y int) { return idx % g.W, idx / g.W }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Interior reports whether (x, y) lies inside the one-cell border.
func (g *Grid[T]) Interior(x, y int) bool {
	return x >= 1 && x < g.W-1 && y >= 1 && y < g.H-1
}

// Edge reports whether (x, y) lies on the outermost row or column.
func (g *Grid[T]) Edge(x, y int) bool {
	return g.InBounds(x, y) && !g.Interior(x, y)
}

// At returns the value stored at (x, y).
func (g *Grid[T]) At(x, y int) T { return g.data[g.Index(x, y)] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[g.Index(x, y)] = v }

// Fill assigns v to every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with the zero value.
func (g *Grid[T]) Clear() {
	var zero T
	g.Fill(zero)
}
