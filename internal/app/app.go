//go:build ebiten

package app

import (
	"image/color"
	"time"

	"volcano/internal/core"
	"volcano/internal/render"
	"volcano/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type autoCompleter interface {
	AutoComplete()
}

// Game adapts a frame-driven simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
	dt       float64
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. Each tick advances the
// sim by speed/tps seconds.
func New(sim core.Sim, cfg *Config, seed int64) *Game {
	size := sim.Size()
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		dt:       cfg.Speed / float64(tps),
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if ac, ok := g.sim.(autoCompleter); ok {
			ac.AutoComplete()
		}
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	if !g.paused || g.tickOnce {
		g.sim.Update(g.dt)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var shade []float32
	if sp, ok := g.sim.(render.ShadeProvider); ok {
		shade = sp.Shade()
	}
	var palette []color.RGBA
	if pp, ok := g.sim.(render.PaletteProvider); ok {
		palette = pp.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), shade, palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
