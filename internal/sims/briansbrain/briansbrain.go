package briansbrain

import (
	"github.com/MdMxMyr/Automata-engine/internal/core"
	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

// Name is the registry key for Brian's Brain.
const Name = "briansbrain"

const (
	StateOff    = 0
	StateFiring = 1
	StateDying  = 2
)

// Brain implements Brian's Brain: firing cells always start dying, dying
// cells switch off, and an off cell fires when exactly two neighbours of its
// species are firing.
type Brain struct {
	*automata.Base
}

// New constructs a Brain automaton. Without a "state" property it starts
// firing with probability 1/8.
func New(c *automata.Cell, typeID string, _ int, props automata.Properties) (automata.Automaton, error) {
	state, ok := props.Int(automata.PropState)
	if !ok {
		state = StateOff
		if c.Grid().RNG().Chance(8) {
			state = StateFiring
		}
	}
	if state > StateDying {
		state = StateDying
	}
	return &Brain{Base: automata.NewBase(typeID, state, props)}, nil
}

// Evaluate advances the three-state cycle.
func (b *Brain) Evaluate(c *automata.Cell) int {
	switch b.State() {
	case StateFiring:
		return StateDying
	case StateDying:
		return StateOff
	default:
		firing := c.CountNeighbors(b.TypeID(), func(a automata.Automaton) bool {
			return a.State() == StateFiring
		})
		if firing == 2 {
			return StateFiring
		}
		return StateOff
	}
}

// Render draws firing cells with their configured color and dying cells at
// half opacity.
func (b *Brain) Render(r automata.Renderer, row, col, resolution int) {
	props := b.Properties()
	if b.State() == StateDying {
		props = props.Clone()
		props[automata.PropOpacity] = int(props.Color().A) / 2
	}
	r.DrawAutomaton(row, col, resolution, props)
}

// FromMap builds seed properties from flag-style pairs.
func FromMap(cfg map[string]string) automata.Properties {
	return core.PropertiesFromMap(cfg)
}

func init() {
	core.Register(core.Species{Name: Name, New: New, FromMap: FromMap})
}
