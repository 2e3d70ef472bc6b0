//go:build ebiten

package app

import (
	"fmt"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/render"
	"falling-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Frames run at
// ebiten's rate; the simulation advances on its own fixed cadence.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.PaletteFor(sim)),
		hud:     ui.NewHUD(sim, cfg.HUD),
		clock:   core.NewFixedStep(cfg.TPS),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.clock.Reset()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
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
		if c, ok := g.sim.(Clearer); ok {
			c.Clear()
		}
	}

	// Sand keeps pouring for as long as the button is held.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		Pour(g.sim, x, y, g.scale)
	}

	due := g.clock.Due()
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.sim.Step()
	}

	status := fmt.Sprintf("%.0f TPS", ebiten.ActualTPS())
	if g.paused {
		status = "paused"
	}
	g.hud.Update(status)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
