// Package export writes finished terrain to a filesystem: a 16-bit PNG and a
// raw float32 height map, an OBJ mesh and the emitter points as JSON.
package export

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"

	"volcano/internal/heightfield"
	"volcano/internal/render"
	"volcano/internal/terrain"
)

// File names written by Write.
const (
	HeightPNG    = "height.png"
	HeightRaw    = "height.r32"
	MeshOBJ      = "terrain.obj"
	EmittersJSON = "emitters.json"
)

// ErrIncomplete is returned when asked to export a run that hasn't finished.
var ErrIncomplete = errors.New("export: terrain generation not complete")

// Emitters is the JSON document describing particle emitter placement.
type Emitters struct {
	Seed   int64          `json:"seed"`
	Grid   int            `json:"grid"`
	Ash    mgl32.Vec3     `json:"ash"`
	Fire   []mgl32.Vec3   `json:"fire"`
	Smoke  []mgl32.Vec3   `json:"smoke"`
	Crater *CraterRecord  `json:"crater,omitempty"`
	Stats  map[string]int `json:"stats"`
}

// CraterRecord mirrors terrain.Crater with JSON tags.
type CraterRecord struct {
	Col    int     `json:"col"`
	Row    int     `json:"row"`
	Radius float32 `json:"radius"`
	Peak   float32 `json:"peak"`
}

// Write exports every artefact of g into dir on fsys. Each file is written to
// a temporary name and renamed into place; all failures are reported.
func Write(fsys billy.Filesystem, dir string, g *terrain.Generator) error {
	if !g.IsComplete() {
		return ErrIncomplete
	}
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return err
	}
	hm := g.HeightMap()
	var err error
	err = multierr.Append(err, writeFile(fsys, path.Join(dir, HeightPNG), func(w io.Writer) error {
		return HeightMapPNG(w, hm)
	}))
	err = multierr.Append(err, writeFile(fsys, path.Join(dir, HeightRaw), func(w io.Writer) error {
		return HeightMapRaw(w, hm)
	}))
	err = multierr.Append(err, writeFile(fsys, path.Join(dir, MeshOBJ), func(w io.Writer) error {
		return OBJ(w, g.Vertices(), g.Indices())
	}))
	err = multierr.Append(err, writeFile(fsys, path.Join(dir, EmittersJSON), func(w io.Writer) error {
		return EmittersDoc(w, EmittersOf(g))
	}))
	return err
}

func writeFile(fsys billy.Filesystem, name string, body func(io.Writer) error) error {
	temp, err := fsys.OpenFile(name+".partial", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := body(temp); err != nil {
		err = multierr.Append(fmt.Errorf("export %s: %w", name, err), temp.Close())
		return multierr.Append(err, fsys.Remove(temp.Name()))
	}
	if err := temp.Close(); err != nil {
		return multierr.Append(err, fsys.Remove(temp.Name()))
	}
	return fsys.Rename(temp.Name(), name)
}

// HeightMapPNG encodes hm as a 16-bit grayscale PNG spanning its own range.
func HeightMapPNG(w io.Writer, hm *render.HeightMap) error {
	img := image.NewGray16(image.Rect(0, 0, hm.W, hm.H))
	lo, hi := hm.Range()
	span := hi - lo
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			var v uint16
			if span > 0 {
				v = uint16((hm.At(x, y)-lo)/span*65535 + 0.5)
			}
			img.SetGray16(x, y, color.Gray16{Y: v})
		}
	}
	return png.Encode(w, img)
}

// HeightMapRaw writes the heights as little-endian float32, row-major.
func HeightMapRaw(w io.Writer, hm *render.HeightMap) error {
	return binary.Write(w, binary.LittleEndian, hm.Pix)
}

// OBJ writes the mesh with positions, normals and texture coordinates.
func OBJ(w io.Writer, verts []heightfield.Vertex, indices []uint32) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# volcano terrain: %d vertices, %d triangles\n", len(verts), len(indices)/3)
	for _, v := range verts {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Pos[0], v.Pos[1], v.Pos[2])
	}
	for _, v := range verts {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
	}
	for _, v := range verts {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i]+1, indices[i+1]+1, indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}

// EmittersOf collects the emitter document for a finished run.
func EmittersOf(g *terrain.Generator) Emitters {
	cfg := g.Config()
	doc := Emitters{
		Seed:  cfg.Seed,
		Grid:  cfg.GridSize,
		Ash:   g.AshEmitter(),
		Fire:  g.FireEmitters(),
		Smoke: g.SmokeEmitters(),
		Stats: map[string]int{
			"lava_vertices": len(g.Lava()),
			"flows":         g.FlowsCarved(),
		},
	}
	if cr := g.Crater(); cr != nil {
		doc.Crater = &CraterRecord{Col: cr.Col, Row: cr.Row, Radius: cr.Radius, Peak: cr.Peak}
	}
	return doc
}

// EmittersDoc encodes doc as indented JSON.
func EmittersDoc(w io.Writer, doc Emitters) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
