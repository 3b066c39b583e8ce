// Package terrain grows a volcano on a height field over simulated time: a
// flat grid rises into a massif, gets a crater, is roughened with ridged
// noise and finally has lava channels carved down its flanks.
package terrain

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"volcano/internal/core"
	"volcano/internal/heightfield"
	"volcano/internal/noise"
	"volcano/internal/render"
	rngcore "volcano/pkg/core"
)

// MaxGridSize is the largest accepted grid size (cells per side).
const MaxGridSize = heightfield.MaxDim - 1

// ErrInvalidGridSize is returned by Initialise for sizes outside [2, MaxGridSize].
var ErrInvalidGridSize = errors.New("terrain: invalid grid size")

// Crater records where the crater was carved. It only exists from the
// crater stage on.
type Crater struct {
	Col, Row int
	Radius   float32
	Peak     float32
}

// LavaVertex is a cell tagged as lava together with its world position at
// the time it was tagged.
type LavaVertex struct {
	Index int
	Pos   mgl32.Vec3
}

// Generator owns a height field and advances it through the generation
// stages. It is not safe for concurrent use.
type Generator struct {
	cfg    Config
	logger *log.Logger

	rng *rngcore.RNG
	src noise.Source

	adapter    render.Adapter
	adapterErr error

	field   *heightfield.Field
	indices []uint32

	stage Stage
	age   float64

	mountainDone bool
	noiseDone    bool
	flowsCarved  int
	crater       *Crater
	carved       *core.Grid[bool]

	lava  []LavaVertex
	ash   mgl32.Vec3
	fire  []mgl32.Vec3
	smoke []mgl32.Vec3

	heightMap *render.HeightMap
	heightRes render.Resource

	transform transform

	dirty           bool
	indicesUploaded bool

	display      []uint8
	shade        []float32
	displayStale bool
}

// New builds an uninitialised generator. Call Initialise before Update.
func New(cfg Config) (*Generator, error) {
	src, err := noise.New(cfg.Noise, cfg.NoiseSeed)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	return &Generator{
		cfg:       cfg,
		logger:    log.New(io.Discard, "terrain: ", 0),
		rng:       rngcore.NewRNG(cfg.Seed),
		src:       src,
		transform: newTransform(),
	}, nil
}

// NewWithConfig builds a generator and initialises it with cfg.GridSize.
func NewWithConfig(cfg Config) (*Generator, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := g.Initialise(cfg.GridSize); err != nil {
		return nil, err
	}
	return g, nil
}

// SetLogger routes stage transitions and adapter failures to l. A nil logger
// silences them.
func (g *Generator) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	g.logger = l
}

// SetAdapter attaches the render backend. A nil adapter disables rendering.
func (g *Generator) SetAdapter(a render.Adapter) {
	g.adapter = a
	g.adapterErr = nil
	g.indicesUploaded = false
	g.dirty = true
}

// AdapterErr returns the first adapter failure, if any. Once set, the adapter
// is no longer called.
func (g *Generator) AdapterErr() error { return g.adapterErr }

// Initialise allocates a (gridSize+1)² vertex field and starts a fresh run.
func (g *Generator) Initialise(gridSize int) error {
	if gridSize < 2 || gridSize > MaxGridSize {
		return fmt.Errorf("%w: %d", ErrInvalidGridSize, gridSize)
	}
	field, err := heightfield.New(gridSize+1, gridSize+1)
	if err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	field.Drop = float32(g.cfg.Params.EdgeDrop)
	g.cfg.GridSize = gridSize
	g.field = field
	g.indices = field.Indices()
	g.carved = core.NewGrid[bool](field.W, field.H)
	g.display = make([]uint8, field.Len())
	g.shade = make([]float32, field.Len())
	g.indicesUploaded = false
	g.restart()
	return nil
}

// Reset returns to a flat field. A nonzero seed restarts the random stream
// from that seed; zero continues the current stream so the next run differs.
func (g *Generator) Reset(seed int64) {
	if seed != 0 {
		g.rng.Reseed(seed)
	}
	if g.field == nil {
		return
	}
	g.restart()
}

func (g *Generator) restart() {
	g.field.Reset()
	g.stage = StageFlat
	g.age = g.cfg.Params.FlatDuration
	g.mountainDone = false
	g.noiseDone = false
	g.flowsCarved = 0
	g.crater = nil
	g.lava = nil
	g.ash = mgl32.Vec3{}
	g.fire = nil
	g.smoke = nil
	g.heightMap = nil
	g.heightRes = nil
	g.calculateNormals()
	g.touch()
}

// Update advances the stage clock by dt seconds and runs whatever the current
// stage does. Non-positive dt is ignored.
func (g *Generator) Update(dt float64) {
	if g.field == nil || dt <= 0 || g.stage == StageComplete {
		return
	}
	if g.age > 0 {
		g.age -= dt
	}
	steps[g.stage](g, dt)
}

// AutoComplete runs every generation step that hasn't happened yet, snaps the
// displayed heights to their targets and finalises the run.
func (g *Generator) AutoComplete() {
	if g.field == nil {
		return
	}
	if !g.mountainDone {
		g.generateMountain()
	}
	if g.crater == nil {
		g.generateCrater()
	}
	if !g.noiseDone {
		g.generateNoise()
	}
	if g.stage < StageLavaFlows {
		for g.flowsCarved < flowCount {
			g.generateLavaFlow()
		}
	}
	g.field.Snap()
	if g.stage != StageComplete {
		g.complete()
	} else {
		g.calculateNormals()
	}
	g.touch()
}

func (g *Generator) complete() {
	g.logger.Printf("%s -> %s (lava=%d)", g.stage, StageComplete, len(g.lava))
	g.stage = StageComplete
	g.age = 0
	g.calculateNormals()
	g.buildHeightMap()
	g.extractEmitters()
	g.touch()
}

// Render uploads the vertex buffer if it changed and issues a draw. Adapter
// failures are logged once and disable further rendering.
func (g *Generator) Render() {
	if g.field == nil || g.adapter == nil || g.adapterErr != nil {
		return
	}
	if !g.indicesUploaded {
		if err := g.adapter.UploadIndices(g.indices); err != nil {
			g.adapterFailed("upload indices", err)
			return
		}
		g.indicesUploaded = true
	}
	if g.dirty {
		if err := g.adapter.UploadVertices(g.field.Vertices()); err != nil {
			g.adapterFailed("upload vertices", err)
			return
		}
		g.dirty = false
	}
	if g.heightMap != nil && g.heightRes == nil {
		res, err := g.adapter.CreateHeightMap(g.heightMap)
		if err != nil {
			g.adapterFailed("create height map", err)
			return
		}
		g.heightRes = res
	}
	if err := g.adapter.Draw(len(g.indices)); err != nil {
		g.adapterFailed("draw", err)
	}
}

func (g *Generator) adapterFailed(op string, err error) {
	g.adapterErr = fmt.Errorf("terrain: %s: %w", op, err)
	g.logger.Printf("render disabled: %v", g.adapterErr)
}

// Stage returns the current generation stage.
func (g *Generator) Stage() Stage { return g.stage }

// Age returns the seconds left on the current stage countdown.
func (g *Generator) Age() float64 { return g.age }

// IsComplete reports whether generation has finished.
func (g *Generator) IsComplete() bool { return g.stage == StageComplete }

// Config returns the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// Field exposes the underlying height field. Treat it as read-only.
func (g *Generator) Field() *heightfield.Field { return g.field }

// Crater returns the crater record, or nil before the crater stage.
func (g *Generator) Crater() *Crater { return g.crater }

// FlowsCarved returns how many lava flows this run has carved.
func (g *Generator) FlowsCarved() int { return g.flowsCarved }

// Lava returns the recorded lava vertices.
func (g *Generator) Lava() []LavaVertex { return g.lava }

// NumVertices returns the vertex count, or zero before Initialise.
func (g *Generator) NumVertices() int {
	if g.field == nil {
		return 0
	}
	return g.field.Len()
}

// NumIndices returns the index buffer length.
func (g *Generator) NumIndices() int { return len(g.indices) }

// Vertices exposes the vertex array.
func (g *Generator) Vertices() []heightfield.Vertex {
	if g.field == nil {
		return nil
	}
	return g.field.Vertices()
}

// Indices exposes the triangle index buffer.
func (g *Generator) Indices() []uint32 { return g.indices }

// HeightMap returns the CPU height map built on completion, or nil.
func (g *Generator) HeightMap() *render.HeightMap { return g.heightMap }

// HeightMapResource returns the adapter's handle for the height map, or nil
// until the map has been handed to an adapter.
func (g *Generator) HeightMapResource() render.Resource { return g.heightRes }

// Status summarises the run for the HUD.
func (g *Generator) Status() string {
	if g.field == nil {
		return "uninitialised"
	}
	if g.stage == StageComplete {
		return fmt.Sprintf("%s  flows %d  lava %d", g.stage, g.flowsCarved, len(g.lava))
	}
	return fmt.Sprintf("%s  %.1fs  flows %d", g.stage, g.age, g.flowsCarved)
}

// Name returns the simulation identifier.
func (g *Generator) Name() string { return "volcano" }

// Size reports the vertex grid dimensions.
func (g *Generator) Size() core.Size {
	if g.field == nil {
		return core.Size{}
	}
	return core.Size{W: g.field.W, H: g.field.H}
}
