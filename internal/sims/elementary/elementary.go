package elementary

import (
	"strconv"

	"github.com/MdMxMyr/Automata-engine/internal/core"
	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

// Name is the registry key for the elementary automaton.
const Name = "elementary"

// PropRule holds the Wolfram code, 0-255.
const PropRule = "rule"

// DefaultRule is used when no rule property is supplied.
const DefaultRule = 110

// Elementary implements a one-dimensional Wolfram code projected vertically.
// Row 0 holds the newest line; every other row copies the row above it, so
// history scrolls downwards one row per generation.
type Elementary struct {
	*automata.Base
	rule uint8
}

// New constructs an Elementary automaton. Without a "state" property only the
// centre cell of the top row starts active.
func New(c *automata.Cell, typeID string, _ int, props automata.Properties) (automata.Automaton, error) {
	rule := props.IntOr(PropRule, DefaultRule)
	if rule < 0 || rule > 255 {
		rule = DefaultRule
	}
	state, ok := props.Int(automata.PropState)
	if !ok {
		state = 0
		if c.Row() == 0 && c.Col() == c.Grid().Cols()/2 {
			state = 1
		}
	}
	return &Elementary{Base: automata.NewBase(typeID, state, props), rule: uint8(rule)}, nil
}

// Rule returns the Wolfram code.
func (e *Elementary) Rule() uint8 { return e.rule }

// Evaluate applies the rule on the top row and scrolls every other row.
func (e *Elementary) Evaluate(c *automata.Cell) int {
	if c.Row() > 0 {
		return e.stateAt(c.Grid(), c.Row()-1, c.Col())
	}
	window := c.NeighborWindow(0, 1, true)
	var idx uint8
	for _, entry := range window[0] {
		bit := e.stateAt(c.Grid(), entry.Row, entry.Col)
		if entry.Self {
			bit = bit01(e.State())
		}
		idx = idx<<1 | uint8(bit)
	}
	return int((e.rule >> idx) & 1)
}

// stateAt returns 1 when the cell at (row, col) holds an active automaton of
// the same type.
func (e *Elementary) stateAt(g *automata.Grid, row, col int) int {
	cell, err := g.Cell(row, col)
	if err != nil {
		return 0
	}
	for _, a := range cell.Population() {
		if a.TypeID() == e.TypeID() {
			return bit01(a.State())
		}
	}
	return 0
}

func bit01(state int) int {
	if state > 0 {
		return 1
	}
	return 0
}

// FromMap builds seed properties from flag-style pairs, adding "rule".
func FromMap(cfg map[string]string) automata.Properties {
	props := core.PropertiesFromMap(cfg)
	props[PropRule] = DefaultRule
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			props[PropRule] = parsed
		}
	}
	return props
}

func init() {
	core.Register(core.Species{Name: Name, New: New, FromMap: FromMap})
}
