package app

import (
	"fmt"
	"sync"

	"github.com/MdMxMyr/Automata-engine/internal/core"
	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

// Simulation owns the grid and the settings a driver needs to advance it.
// It is safe for one goroutine to step while others read.
type Simulation struct {
	mu      sync.RWMutex
	cfg     Config
	plan    Plan
	grid    *automata.Grid
	workers int
}

// NewSimulation builds a grid from cfg and seeds it with plan.
func NewSimulation(cfg Config, plan Plan) (*Simulation, error) {
	s := &Simulation{cfg: cfg, plan: plan, workers: cfg.Workers}
	if err := s.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the grid and rebuilds it with the given seed.
func (s *Simulation) Reset(seed int64) error {
	grid, err := automata.NewGridWithConfig(automata.Config{
		HeightPx:   s.cfg.Height,
		WidthPx:    s.cfg.Width,
		Resolution: s.cfg.Resolution,
		Seed:       seed,
	})
	if err != nil {
		return err
	}
	if err := s.plan.Apply(grid); err != nil {
		return fmt.Errorf("apply plan: %w", err)
	}
	s.mu.Lock()
	s.grid = grid
	s.cfg.Seed = seed
	s.mu.Unlock()
	return nil
}

// Step advances one generation and returns the new generation number.
func (s *Simulation) Step() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.grid.NextGenerationParallel(s.workers); err != nil {
		return s.grid.Generation(), err
	}
	return s.grid.Generation(), nil
}

// Done reports whether the configured generation limit has been reached.
func (s *Simulation) Done() bool {
	if s.cfg.Generations <= 0 {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Generation() >= s.cfg.Generations
}

// View runs fn with read access to the grid. fn must not retain the grid.
func (s *Simulation) View(fn func(g *automata.Grid)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.grid)
}

// Census summarizes the current generation.
func (s *Simulation) Census() core.Census {
	var c core.Census
	s.View(func(g *automata.Grid) { c = core.TakeCensus(g) })
	return c
}

// Seed returns the seed the current grid was built with.
func (s *Simulation) Seed() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Seed
}

// Config returns a copy of the simulation's configuration.
func (s *Simulation) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}
