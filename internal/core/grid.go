package core

import "github.com/MdMxMyr/Automata-engine/pkg/automata"

// ByteGrid stores one byte per grid cell in row-major order. As a renderer it
// records how many active automata each cell drew, saturating at 255.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// At returns the value at (row, col), or 0 outside the grid.
func (g *ByteGrid) At(row, col int) uint8 {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return 0
	}
	return g.data[g.Index(row, col)]
}

// DrawAutomaton counts one active automaton at (row, col).
func (g *ByteGrid) DrawAutomaton(row, col, _ int, _ automata.Properties) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return
	}
	i := g.Index(row, col)
	if g.data[i] < 255 {
		g.data[i]++
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}

// Capture clears the grid and renders grid into it.
func (g *ByteGrid) Capture(grid *automata.Grid) {
	g.Clear()
	grid.Render(g)
}
