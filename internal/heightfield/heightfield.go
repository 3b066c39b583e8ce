// Package heightfield holds the vertex grid and target heights that the
// terrain generator morphs over time.
package heightfield

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"volcano/internal/core"
)

// Type tags a vertex as plain rock or as part of a lava pool or channel.
type Type uint32

const (
	Rock Type = iota
	Lava
)

func (t Type) String() string {
	switch t {
	case Rock:
		return "rock"
	case Lava:
		return "lava"
	default:
		return fmt.Sprintf("type(%d)", uint32(t))
	}
}

const (
	// EdgeDrop is the height boundary rows and columns are pinned to.
	EdgeDrop float32 = -100
	// TexCoordScale maps grid coordinates to texture space.
	TexCoordScale float32 = 1.0 / 128.0
	// MaxDim bounds either dimension so a bad size can't request gigabytes.
	MaxDim = 8193
)

// ErrInvalidSize is returned for grids without an interior cell.
var ErrInvalidSize = errors.New("heightfield: invalid size")

// Vertex is the record handed to the render adapter.
type Vertex struct {
	Pos      mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
	Type     Type
}

// Field is a W×H grid of vertices plus the target height each vertex is
// converging toward. Pos.X is the column and Pos.Z the row; both are fixed.
type Field struct {
	W, H int

	// Drop is the height edges are pinned to. It defaults to EdgeDrop.
	Drop float32

	vertices []Vertex
	target   *core.Grid[float32]
}

// New allocates a field. Both dimensions must be at least 3 so the field has
// an interior.
func New(w, h int) (*Field, error) {
	if w < 3 || h < 3 || w > MaxDim || h > MaxDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	f := &Field{
		W:        w,
		H:        h,
		Drop:     EdgeDrop,
		vertices: make([]Vertex, w*h),
		target:   core.NewGrid[float32](w, h),
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := &f.vertices[f.Index(col, row)]
			v.Pos = mgl32.Vec3{float32(col), 0, float32(row)}
			v.TexCoord = mgl32.Vec2{float32(col) * TexCoordScale, float32(row) * TexCoordScale}
		}
	}
	f.Reset()
	return f, nil
}

// Index returns the slice index for column col and row row.
func (f *Field) Index(col, row int) int { return row*f.W + col }

// Coords is the inverse of Index.
func (f *Field) Coords(idx int) (col, row int) { return idx % f.W, idx / f.W }

// Len returns the number of vertices.
func (f *Field) Len() int { return len(f.vertices) }

// Vertices exposes the vertex array. Callers outside the generator should
// treat it as read-only.
func (f *Field) Vertices() []Vertex { return f.vertices }

// Targets exposes the target height array.
func (f *Field) Targets() []float32 { return f.target.Cells() }

// Target returns the target height at (col, row).
func (f *Field) Target(col, row int) float32 { return f.target.At(col, row) }

// AddTarget adds delta to the target height at (col, row).
func (f *Field) AddTarget(col, row int, delta float32) {
	f.target.Cells()[f.Index(col, row)] += delta
}

// Height returns the displayed height at (col, row).
func (f *Field) Height(col, row int) float32 { return f.vertices[f.Index(col, row)].Pos[1] }

// Interior reports whether (col, row) lies inside the one-cell border.
func (f *Field) Interior(col, row int) bool { return f.target.Interior(col, row) }

// Edge reports whether (col, row) lies on the border.
func (f *Field) Edge(col, row int) bool { return f.target.Edge(col, row) }

// SetType tags the vertex at (col, row).
func (f *Field) SetType(col, row int, t Type) { f.vertices[f.Index(col, row)].Type = t }

// TypeAt returns the tag of the vertex at (col, row).
func (f *Field) TypeAt(col, row int) Type { return f.vertices[f.Index(col, row)].Type }

// Reset flattens the field: zero heights everywhere, rock everywhere, upward
// normals, then drops the edges.
func (f *Field) Reset() {
	f.target.Clear()
	for i := range f.vertices {
		v := &f.vertices[i]
		v.Pos[1] = 0
		v.Normal = mgl32.Vec3{0, 1, 0}
		v.Type = Rock
	}
	f.DropEdges()
}

// DropEdges pins every boundary vertex, displayed and target, to Drop.
func (f *Field) DropEdges() {
	targets := f.target.Cells()
	pin := func(col, row int) {
		idx := f.Index(col, row)
		targets[idx] = f.Drop
		f.vertices[idx].Pos[1] = f.Drop
	}
	for col := 0; col < f.W; col++ {
		pin(col, 0)
		pin(col, f.H-1)
	}
	for row := 0; row < f.H; row++ {
		pin(0, row)
		pin(f.W-1, row)
	}
}

// Snap sets every displayed height to its target.
func (f *Field) Snap() {
	targets := f.target.Cells()
	for i := range f.vertices {
		f.vertices[i].Pos[1] = targets[i]
	}
}

// MaxTarget scans the interior for the highest target height.
func (f *Field) MaxTarget() (col, row int, h float32) {
	col, row = 1, 1
	h = f.Target(1, 1)
	for r := 1; r < f.H-1; r++ {
		for c := 1; c < f.W-1; c++ {
			if t := f.Target(c, r); t > h {
				col, row, h = c, r, t
			}
		}
	}
	return col, row, h
}

// NumTriangles returns the triangle count of the index buffer.
func (f *Field) NumTriangles() int { return (f.W - 1) * (f.H - 1) * 2 }

// Indices builds the triangle list. The quad diagonal alternates with the
// parity of row+col so the mesh has no uniform diagonal bias.
func (f *Field) Indices() []uint32 {
	indices := make([]uint32, 0, f.NumTriangles()*3)
	for row := 0; row < f.H-1; row++ {
		for col := 0; col < f.W-1; col++ {
			tl := uint32(f.Index(col, row))
			tr := uint32(f.Index(col+1, row))
			bl := uint32(f.Index(col, row+1))
			br := uint32(f.Index(col+1, row+1))
			if (row+col)%2 == 0 {
				indices = append(indices,
					tr, br, tl,
					tl, br, bl,
				)
				continue
			}
			indices = append(indices,
				tl, tr, bl,
				tr, br, bl,
			)
		}
	}
	return indices
}
