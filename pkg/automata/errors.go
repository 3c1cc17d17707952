package automata

import "errors"

var (
	// ErrIndexOutOfRange is returned for coordinates outside the grid.
	ErrIndexOutOfRange = errors.New("automata: index out of range")
	// ErrInvalidAutomatonType is returned when a constructor does not yield a
	// usable Automaton.
	ErrInvalidAutomatonType = errors.New("automata: invalid automaton type")
	// ErrInvalidDimensions is returned when a grid is built from non-positive sizes.
	ErrInvalidDimensions = errors.New("automata: invalid grid dimensions")
	// ErrInvalidState is returned when a rule produces a negative state.
	ErrInvalidState = errors.New("automata: invalid automaton state")
)
