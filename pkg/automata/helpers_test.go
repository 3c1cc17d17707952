package automata

import "testing"

// conway is a minimal copy of the reference rule for engine tests.
type conway struct {
	*Base
}

func newConway(c *Cell, typeID string, _ int, props Properties) (Automaton, error) {
	state, ok := props.Int(PropState)
	if !ok {
		state = 0
		if c.Grid().RNG().Bool() {
			state = 1
		}
	}
	return &conway{Base: NewBase(typeID, state, props)}, nil
}

func (a *conway) Evaluate(c *Cell) int {
	n := c.CountIdenticalActiveNeighbors(a.TypeID())
	switch {
	case a.State() == 0 && n == 3:
		return 1
	case a.State() > 0 && (n < 2 || n > 3):
		return 0
	default:
		return a.State()
	}
}

// broken returns an invalid state once armed.
type broken struct {
	*Base
	armed bool
}

func (a *broken) Evaluate(*Cell) int {
	if a.armed {
		return -1
	}
	return a.State()
}

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGridWithConfig(Config{HeightPx: rows * 4, WidthPx: cols * 4, Resolution: 4, Seed: 99})
	if err != nil {
		t.Fatalf("NewGridWithConfig: %v", err)
	}
	return g
}

func withState(state int) Properties {
	return Properties{PropState: state}
}

func states(g *Grid, typeID string) []int {
	out := make([]int, 0, len(g.cells))
	for _, pop := range g.Populations() {
		for _, a := range pop {
			if a.TypeID() == typeID {
				out = append(out, a.State())
			}
		}
	}
	return out
}
