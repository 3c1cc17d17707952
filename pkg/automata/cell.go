package automata

import (
	"fmt"
	"reflect"
	"slices"
)

// Cell is one spatial unit of the grid. It owns an ordered population of
// automata, newest first.
type Cell struct {
	row, col   int
	grid       *Grid
	neighbors  []Coord
	population []Automaton
}

func newCell(g *Grid, row, col int) Cell {
	return Cell{
		row:       row,
		col:       col,
		grid:      g,
		neighbors: Neighbors(row, col, g.rows, g.cols),
	}
}

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.col }

// Grid returns the owning grid.
func (c *Cell) Grid() *Grid { return c.grid }

// Neighbors returns the precomputed wrapped Moore neighbourhood.
func (c *Cell) Neighbors() []Coord { return slices.Clone(c.neighbors) }

// NeighborWindow returns the wrapped window around this cell. See the
// package-level NeighborWindow.
func (c *Cell) NeighborWindow(rowWindow, colWindow int, reportSelf bool) [][]WindowEntry {
	return NeighborWindow(c.row, c.col, c.grid.rows, c.grid.cols, rowWindow, colWindow, reportSelf)
}

// Population returns a snapshot of the resident automata, newest first.
func (c *Cell) Population() []Automaton { return slices.Clone(c.population) }

// Len reports the number of resident automata.
func (c *Cell) Len() int { return len(c.population) }

// Populate constructs an automaton with ctor and inserts it at the front of
// the population.
func (c *Cell) Populate(typeID string, props Properties, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("populate (%d,%d) %q: nil constructor: %w", c.row, c.col, typeID, ErrInvalidAutomatonType)
	}
	if props == nil {
		props = DefaultProperties()
	}
	a, err := ctor(c, typeID, c.grid.resolution, props.Clone())
	if err != nil {
		return fmt.Errorf("populate (%d,%d) %q: %w", c.row, c.col, typeID, err)
	}
	if isNil(a) || a.base() == nil {
		return fmt.Errorf("populate (%d,%d) %q: constructor returned no automaton: %w", c.row, c.col, typeID, ErrInvalidAutomatonType)
	}
	if a.TypeID() == "" {
		return fmt.Errorf("populate (%d,%d): empty type id: %w", c.row, c.col, ErrInvalidAutomatonType)
	}
	if a.State() < 0 {
		return fmt.Errorf("populate (%d,%d) %q: initial state %d: %w", c.row, c.col, typeID, a.State(), ErrInvalidState)
	}
	c.population = slices.Insert(c.population, 0, a)
	return nil
}

// ClearPopulation destroys every resident automaton.
func (c *Cell) ClearPopulation() {
	clear(c.population)
	c.population = c.population[:0]
}

// CountNeighbors sums, over the 8 neighbours, the automata tagged typeID for
// which match returns true. A nil match counts every automaton of the type.
func (c *Cell) CountNeighbors(typeID string, match func(Automaton) bool) int {
	total := 0
	for _, pos := range c.neighbors {
		for _, a := range c.grid.cellAt(pos.Row, pos.Col).population {
			if a.TypeID() != typeID {
				continue
			}
			if match == nil || match(a) {
				total++
			}
		}
	}
	return total
}

// CountIdenticalNeighbors counts neighbouring automata with the same type id,
// restricted to active ones when activeOnly is set.
func (c *Cell) CountIdenticalNeighbors(typeID string, activeOnly bool) int {
	if !activeOnly {
		return c.CountNeighbors(typeID, nil)
	}
	return c.CountNeighbors(typeID, isActive)
}

// CountIdenticalActiveNeighbors is CountIdenticalNeighbors with activeOnly set.
func (c *Cell) CountIdenticalActiveNeighbors(typeID string) int {
	return c.CountNeighbors(typeID, isActive)
}

// Evaluate runs every resident's rule and stages the result. Committed state
// is left untouched.
func (c *Cell) Evaluate() error {
	for _, a := range c.population {
		next := a.Evaluate(c)
		if next < 0 {
			return fmt.Errorf("evaluate (%d,%d) %q: next state %d: %w", c.row, c.col, a.TypeID(), next, ErrInvalidState)
		}
		a.base().stage(next)
	}
	return nil
}

// Commit promotes every staged state to the current state.
func (c *Cell) Commit() {
	for _, a := range c.population {
		a.base().commit()
	}
}

func (c *Cell) discard() {
	for _, a := range c.population {
		a.base().discard()
	}
}

// RenderPopulation renders each active resident. Inactive automata are
// skipped but stay resident.
func (c *Cell) RenderPopulation(r Renderer) {
	for _, a := range c.population {
		if a.State() > 0 {
			a.Render(r, c.row, c.col, c.grid.resolution)
		}
	}
}

func isActive(a Automaton) bool { return a.State() > 0 }

// isNil also catches a typed nil pointer stored in the interface.
func isNil(a Automaton) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
