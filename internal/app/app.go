//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/MdMxMyr/Automata-engine/internal/core"
	"github.com/MdMxMyr/Automata-engine/internal/render"
	"github.com/MdMxMyr/Automata-engine/internal/ui"
	"github.com/MdMxMyr/Automata-engine/pkg/automata"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Simulation to the ebiten.Game interface.
type Game struct {
	sim     *Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	timer   *core.FixedStep

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim *Simulation) *Game {
	var gp *render.GridPainter
	sim.View(func(g *automata.Grid) {
		gp = render.NewGridPainter(g.Rows(), g.Cols(), g.Resolution())
	})
	return &Game{
		sim:     sim,
		painter: gp,
		hud:     ui.NewHUD(),
		timer:   core.NewFixedStep(sim.Config().TPS),
	}
}

// Update handles per-frame input and advances the simulation when a
// generation is due.
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
		if err := g.sim.Reset(g.sim.Seed()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.sim.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	due := g.timer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.tickOnce = false
		if _, err := g.sim.Step(); err != nil {
			return fmt.Errorf("advance: %w", err)
		}
		if g.sim.Done() {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders the current generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.View(func(grid *automata.Grid) {
		g.painter.Blit(screen, grid)
	})
	g.hud.Draw(screen, g.sim.Census(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
