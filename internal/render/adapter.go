// Package render defines the boundary between the terrain generator and
// whatever draws it, plus the CPU-side pixel helpers used by the previews.
package render

import (
	"errors"
	"fmt"

	"volcano/internal/heightfield"
)

// Resource is an opaque handle returned by an adapter, e.g. a GPU texture.
type Resource any

// Adapter uploads mesh data produced by the generator. Implementations own
// every native resource; the generator only hands them CPU snapshots.
type Adapter interface {
	UploadIndices(indices []uint32) error
	UploadVertices(vertices []heightfield.Vertex) error
	CreateHeightMap(hm *HeightMap) (Resource, error)
	Draw(indexCount int) error
}

// HeightMap is a single-channel float image of final terrain heights.
type HeightMap struct {
	W, H int
	Pix  []float32
}

// NewHeightMap allocates a zeroed w×h height map.
func NewHeightMap(w, h int) *HeightMap {
	return &HeightMap{W: w, H: h, Pix: make([]float32, w*h)}
}

// At returns the height at (col, row).
func (hm *HeightMap) At(col, row int) float32 { return hm.Pix[row*hm.W+col] }

// Range returns the minimum and maximum heights.
func (hm *HeightMap) Range() (lo, hi float32) {
	if len(hm.Pix) == 0 {
		return 0, 0
	}
	lo, hi = hm.Pix[0], hm.Pix[0]
	for _, v := range hm.Pix[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// ErrAdapterClosed is returned by MemoryAdapter after Close.
var ErrAdapterClosed = errors.New("render: adapter closed")

// MemoryAdapter keeps the latest uploads in memory. Headless binaries and
// tests use it in place of a GPU backend.
type MemoryAdapter struct {
	Vertices []heightfield.Vertex
	Indices  []uint32
	Maps     []*HeightMap

	VertexUploads int
	Draws         int

	// FailUploads makes every vertex upload fail, simulating a device that
	// was lost after initialisation.
	FailUploads bool

	closed bool
}

// NewMemoryAdapter returns an empty adapter.
func NewMemoryAdapter() *MemoryAdapter { return &MemoryAdapter{} }

func (m *MemoryAdapter) UploadIndices(indices []uint32) error {
	if m.closed {
		return ErrAdapterClosed
	}
	m.Indices = append(m.Indices[:0], indices...)
	return nil
}

func (m *MemoryAdapter) UploadVertices(vertices []heightfield.Vertex) error {
	if m.closed {
		return ErrAdapterClosed
	}
	if m.FailUploads {
		return fmt.Errorf("render: upload of %d vertices failed", len(vertices))
	}
	m.Vertices = append(m.Vertices[:0], vertices...)
	m.VertexUploads++
	return nil
}

func (m *MemoryAdapter) CreateHeightMap(hm *HeightMap) (Resource, error) {
	if m.closed {
		return nil, ErrAdapterClosed
	}
	m.Maps = append(m.Maps, hm)
	return hm, nil
}

func (m *MemoryAdapter) Draw(indexCount int) error {
	if m.closed {
		return ErrAdapterClosed
	}
	if indexCount > len(m.Indices) {
		return fmt.Errorf("render: draw of %d indices with %d uploaded", indexCount, len(m.Indices))
	}
	m.Draws++
	return nil
}

// Close makes every later call fail.
func (m *MemoryAdapter) Close() { m.closed = true }
