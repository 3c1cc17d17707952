package life

import (
	"github.com/MdMxMyr/Automata-engine/internal/core"
	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

// Name is the registry key for the reference rule.
const Name = "life"

// Life implements Conway's Game of Life for one species: only active
// neighbours sharing its type id are counted.
type Life struct {
	*automata.Base
}

// New constructs a Life automaton. The "state" property overrides the
// random 0/1 initial state.
func New(c *automata.Cell, typeID string, _ int, props automata.Properties) (automata.Automaton, error) {
	state, ok := props.Int(automata.PropState)
	if !ok {
		state = 0
		if c.Grid().RNG().Bool() {
			state = 1
		}
	}
	return &Life{Base: automata.NewBase(typeID, state, props)}, nil
}

// Evaluate applies birth on 3 and survival on 2 or 3.
func (l *Life) Evaluate(c *automata.Cell) int {
	neighbors := c.CountIdenticalActiveNeighbors(l.TypeID())
	state := l.State()
	switch {
	case state == 0 && neighbors == 3:
		return 1
	case state > 0 && (neighbors < 2 || neighbors > 3):
		return 0
	default:
		return state
	}
}

// FromMap builds seed properties from flag-style pairs.
func FromMap(cfg map[string]string) automata.Properties {
	return core.PropertiesFromMap(cfg)
}

func init() {
	core.Register(core.Species{Name: Name, New: New, FromMap: FromMap})
}
