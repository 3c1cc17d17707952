package automata

import (
	"fmt"
	"slices"

	"github.com/MdMxMyr/Automata-engine/pkg/core"
)

// Config describes a grid in canvas terms.
type Config struct {
	HeightPx   int
	WidthPx    int
	Resolution int
	Seed       int64
}

// DefaultConfig returns the standard 1000x1000 canvas at 10px per cell.
func DefaultConfig() Config {
	return Config{HeightPx: 1000, WidthPx: 1000, Resolution: 10, Seed: 1}
}

// Grid is a toroidal array of cells advanced one generation at a time.
type Grid struct {
	rows, cols int
	resolution int
	generation int
	cells      []Cell
	rng        *core.RNG
}

// NewGrid builds a grid covering a heightPx x widthPx canvas with square
// cells of resolution pixels.
func NewGrid(heightPx, widthPx, resolution int) (*Grid, error) {
	cfg := DefaultConfig()
	cfg.HeightPx = heightPx
	cfg.WidthPx = widthPx
	cfg.Resolution = resolution
	return NewGridWithConfig(cfg)
}

// NewGridWithConfig builds a grid from cfg. Rows and columns round up so the
// canvas is fully covered.
func NewGridWithConfig(cfg Config) (*Grid, error) {
	if cfg.HeightPx <= 0 || cfg.WidthPx <= 0 || cfg.Resolution <= 0 {
		return nil, fmt.Errorf("canvas %dx%d at %dpx: %w", cfg.HeightPx, cfg.WidthPx, cfg.Resolution, ErrInvalidDimensions)
	}
	g := &Grid{
		rows:       ceilDiv(cfg.HeightPx, cfg.Resolution),
		cols:       ceilDiv(cfg.WidthPx, cfg.Resolution),
		resolution: cfg.Resolution,
		rng:        core.NewRNG(cfg.Seed),
	}
	g.cells = make([]Cell, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.cells = append(g.cells, newCell(g, r, c))
		}
	}
	return g, nil
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Resolution returns the pixel size of a cell.
func (g *Grid) Resolution() int { return g.resolution }

// Generation returns the number of completed generation advances.
func (g *Grid) Generation() int { return g.generation }

// RNG exposes the grid's deterministic random source. Constructors use it to
// pick initial states.
func (g *Grid) RNG() *core.RNG { return g.rng }

func (g *Grid) cellAt(row, col int) *Cell { return &g.cells[row*g.cols+col] }

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) (*Cell, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil, fmt.Errorf("cell (%d,%d) on %dx%d grid: %w", row, col, g.rows, g.cols, ErrIndexOutOfRange)
	}
	return g.cellAt(row, col), nil
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	for i := range g.cells {
		out[i] = &g.cells[i]
	}
	return out
}

// RandomCell returns a uniformly chosen cell. Coordinates are drawn from the
// half-open ranges so every draw is valid.
func (g *Grid) RandomCell() *Cell {
	row, col := g.rng.Coord(g.rows, g.cols)
	return g.cellAt(row, col)
}

// SeedCell populates the cell at (row, col) with one automaton.
func (g *Grid) SeedCell(row, col int, typeID string, props Properties, ctor Constructor) error {
	c, err := g.Cell(row, col)
	if err != nil {
		return err
	}
	return c.Populate(typeID, props, ctor)
}

// SeedAll populates every cell with one automaton each. Seeding stops at the
// first failing cell.
func (g *Grid) SeedAll(typeID string, props Properties, ctor Constructor) error {
	for i := range g.cells {
		if err := g.cells[i].Populate(typeID, props, ctor); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll empties every cell.
func (g *Grid) ClearAll() {
	for i := range g.cells {
		g.cells[i].ClearPopulation()
	}
}

// Populations returns a population snapshot per cell in row-major order.
func (g *Grid) Populations() [][]Automaton {
	out := make([][]Automaton, len(g.cells))
	for i := range g.cells {
		out[i] = slices.Clone(g.cells[i].population)
	}
	return out
}

// AreaPopulation returns the population snapshot of the cell at (row, col).
func (g *Grid) AreaPopulation(row, col int) ([]Automaton, error) {
	c, err := g.Cell(row, col)
	if err != nil {
		return nil, err
	}
	return c.Population(), nil
}

// RandomAreaPopulation returns the population snapshot of a random cell.
func (g *Grid) RandomAreaPopulation() []Automaton {
	return g.RandomCell().Population()
}

// NextGeneration advances the grid by one generation. Every cell is evaluated
// before any cell commits, so rules only ever observe the previous
// generation. A failed evaluate pass is discarded: nothing commits and the
// counter does not advance.
func (g *Grid) NextGeneration() error {
	for i := range g.cells {
		if err := g.cells[i].Evaluate(); err != nil {
			g.discard()
			return fmt.Errorf("generation %d: %w", g.generation+1, err)
		}
	}
	for i := range g.cells {
		g.cells[i].Commit()
	}
	g.generation++
	return nil
}

func (g *Grid) discard() {
	for i := range g.cells {
		g.cells[i].discard()
	}
}

// Render hands every active automaton to r in row-major order.
func (g *Grid) Render(r Renderer) {
	for i := range g.cells {
		g.cells[i].RenderPopulation(r)
	}
}
