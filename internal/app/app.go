//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Frames are
// drawn at the ebiten rate; the simulation advances on its own fixed step.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	timer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	cellSize int
	state    *runState
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim),
		timer:    core.NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
		cellSize: cfg.CellSize,
		state:    newRunState(seed),
	}
}

// Reset reinitializes the simulation state with the provided seed. The
// configured seed is kept for the restart key.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(g.state.reseed(seed))
}

// Update handles per-frame logic and advances the simulation by however many
// ticks are due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.state.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.state.requestTick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(g.state.restart())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	for n := g.state.ticks(g.timer.Due(time.Now())); n > 0; n-- {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.cellSize)
	g.overlay.Draw(screen, g.state.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.cellSize, s.H * g.cellSize
}
