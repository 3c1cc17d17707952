package automata

// Renderer receives one draw call per active automaton. The engine never
// draws anything itself.
type Renderer interface {
	DrawAutomaton(row, col, resolution int, props Properties)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(row, col, resolution int, props Properties)

// DrawAutomaton calls f.
func (f RendererFunc) DrawAutomaton(row, col, resolution int, props Properties) {
	f(row, col, resolution, props)
}

// Automaton is a single rule-driven entity living in one cell. Species embed
// *Base to satisfy the state-keeping part of the contract and implement
// Evaluate and Render themselves.
type Automaton interface {
	TypeID() string
	State() int
	Pending() (int, bool)
	Properties() Properties
	// Evaluate computes the next state from the current states visible
	// through c. It must not mutate any automaton.
	Evaluate(c *Cell) int
	Render(r Renderer, row, col, resolution int)

	base() *Base
}

// Constructor builds an automaton for a cell. It mirrors the seeding call:
// the hosting cell, the species tag, the cell resolution and the seed
// properties.
type Constructor func(c *Cell, typeID string, resolution int, props Properties) (Automaton, error)

// Base holds the identity and the current/pending state pair shared by every
// species.
type Base struct {
	typeID     string
	state      int
	pending    int
	hasPending bool
	props      Properties
}

// NewBase returns a Base with the given tag, initial state and properties.
// A nil properties bag is replaced by DefaultProperties.
func NewBase(typeID string, state int, props Properties) *Base {
	if props == nil {
		props = DefaultProperties()
	}
	return &Base{typeID: typeID, state: state, props: props.Clone()}
}

// TypeID returns the species tag.
func (b *Base) TypeID() string { return b.typeID }

// State returns the committed state.
func (b *Base) State() int { return b.state }

// Pending returns the state computed by the last evaluate pass, if any.
func (b *Base) Pending() (int, bool) { return b.pending, b.hasPending }

// Properties returns the automaton's configuration bag.
func (b *Base) Properties() Properties { return b.props }

// Render forwards the automaton to r at its cell position.
func (b *Base) Render(r Renderer, row, col, resolution int) {
	r.DrawAutomaton(row, col, resolution, b.props)
}

func (b *Base) base() *Base { return b }

func (b *Base) stage(next int) {
	b.pending = next
	b.hasPending = true
}

func (b *Base) discard() {
	b.pending = 0
	b.hasPending = false
}

func (b *Base) commit() {
	if !b.hasPending {
		return
	}
	b.state = b.pending
	b.pending = 0
	b.hasPending = false
}
