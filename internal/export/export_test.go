package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"image/png"
	"io/ioutil"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"

	"volcano/internal/terrain"
)

func completedGenerator(t *testing.T) *terrain.Generator {
	t.Helper()
	cfg := terrain.DefaultConfig()
	cfg.GridSize = 32
	cfg.Seed = 5
	g, err := terrain.NewWithConfig(cfg)
	require.NoError(t, err)
	g.AutoComplete()
	return g
}

func TestWriteRejectsIncompleteRun(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.GridSize = 8
	g, err := terrain.NewWithConfig(cfg)
	require.NoError(t, err)

	err = Write(memfs.New(), "out", g)
	assert.True(t, errors.Is(err, ErrIncomplete))
}

func TestWriteAllArtefacts(t *testing.T) {
	g := completedGenerator(t)
	fs := memfs.New()
	require.NoError(t, Write(fs, "out", g))

	entries, err := fs.ReadDir("out")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{HeightPNG, HeightRaw, MeshOBJ, EmittersJSON}, names)

	// PNG round-trips to the grid dimensions.
	f, err := fs.Open(path.Join("out", HeightPNG))
	require.NoError(t, err)
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 33, img.Bounds().Dx())
	assert.Equal(t, 33, img.Bounds().Dy())

	// Raw map is four bytes per vertex.
	f, err = fs.Open(path.Join("out", HeightRaw))
	require.NoError(t, err)
	raw, err := ioutil.ReadAll(f)
	require.NoError(t, err)
	assert.Len(t, raw, 33*33*4)

	// OBJ has one v/vt/vn per vertex and one f per triangle.
	f, err = fs.Open(path.Join("out", MeshOBJ))
	require.NoError(t, err)
	counts := map[string]int{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			counts[fields[0]]++
		}
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, g.NumVertices(), counts["v"])
	assert.Equal(t, g.NumVertices(), counts["vt"])
	assert.Equal(t, g.NumVertices(), counts["vn"])
	assert.Equal(t, g.NumIndices()/3, counts["f"])

	// Emitters decode back to the generator's points.
	f, err = fs.Open(path.Join("out", EmittersJSON))
	require.NoError(t, err)
	var doc Emitters
	require.NoError(t, json.NewDecoder(f).Decode(&doc))
	assert.Equal(t, int64(5), doc.Seed)
	assert.Equal(t, g.AshEmitter(), doc.Ash)
	assert.Len(t, doc.Fire, g.Config().FireCount)
	assert.Len(t, doc.Smoke, g.Config().SmokeCount)
	require.NotNil(t, doc.Crater)
	assert.Equal(t, g.Crater().Col, doc.Crater.Col)
	assert.Equal(t, 4, doc.Stats["flows"])
}

func TestHeightMapPNGFlatField(t *testing.T) {
	var sb strings.Builder
	g := completedGenerator(t)
	hm := *g.HeightMap()
	hm.Pix = make([]float32, len(hm.Pix))
	require.NoError(t, HeightMapPNG(&sb, &hm))
	img, err := png.Decode(strings.NewReader(sb.String()))
	require.NoError(t, err)
	r, _, _, _ := img.At(3, 3).RGBA()
	assert.Zero(t, r)
}
