package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volcano/internal/heightfield"
)

func TestFillShadedRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 100, B: 50, A: 255},
	}
	cells := []uint8{0, 1, 7}
	shade := []float32{1, 0.5, 0}
	buf := make([]byte, len(cells)*4)

	FillShadedRGBA(buf, cells, shade, palette)

	assert.Equal(t, []byte{10, 20, 30, 255}, buf[0:4])
	assert.Equal(t, []byte{100, 50, 25, 255}, buf[4:8])
	// Out-of-range indices clamp to the last entry; zero shade is black.
	assert.Equal(t, []byte{0, 0, 0, 255}, buf[8:12])
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	FillPaletteRGBA(buf, []uint8{3}, nil)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestHeightMapRange(t *testing.T) {
	hm := NewHeightMap(2, 2)
	copy(hm.Pix, []float32{3, -1, 8, 2})
	lo, hi := hm.Range()
	assert.Equal(t, float32(-1), lo)
	assert.Equal(t, float32(8), hi)
	assert.Equal(t, float32(8), hm.At(0, 1))
}

func TestMemoryAdapterLifecycle(t *testing.T) {
	m := NewMemoryAdapter()
	require.NoError(t, m.UploadIndices([]uint32{0, 1, 2}))
	require.NoError(t, m.UploadVertices(make([]heightfield.Vertex, 3)))
	require.NoError(t, m.Draw(3))
	assert.Error(t, m.Draw(6))
	assert.Equal(t, 1, m.VertexUploads)
	assert.Equal(t, 1, m.Draws)

	m.FailUploads = true
	assert.Error(t, m.UploadVertices(nil))

	m.Close()
	_, err := m.CreateHeightMap(NewHeightMap(1, 1))
	assert.True(t, errors.Is(err, ErrAdapterClosed))
}
