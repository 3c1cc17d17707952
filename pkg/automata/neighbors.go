package automata

// Coord addresses a cell on the grid.
type Coord struct {
	Row int
	Col int
}

// WindowEntry is one position inside a neighbour window. Self marks the centre
// position when it was requested; Coord is still filled in for it.
type WindowEntry struct {
	Coord
	Self bool
}

// wrap folds v into [0, n).
func wrap(v, n int) int {
	return (v%n + n) % n
}

// Neighbors returns the 8 Moore neighbours of (row, col) on a rows x cols
// torus, ordered by row offset then column offset. Grids narrower than 3 in
// either direction yield repeated coordinates.
func Neighbors(row, col, rows, cols int) []Coord {
	out := make([]Coord, 0, 8)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if i == 0 && j == 0 {
				continue
			}
			out = append(out, Coord{Row: wrap(row+i, rows), Col: wrap(col+j, cols)})
		}
	}
	return out
}

// NeighborWindow returns the wrapped coordinates inside a
// (2*rowWindow+1) x (2*colWindow+1) window centred on (row, col), one slice
// per row offset. The centre is left out unless reportSelf is set, in which
// case it appears as an entry with Self == true.
func NeighborWindow(row, col, rows, cols, rowWindow, colWindow int, reportSelf bool) [][]WindowEntry {
	if rowWindow < 0 {
		rowWindow = 0
	}
	if colWindow < 0 {
		colWindow = 0
	}
	out := make([][]WindowEntry, 0, 2*rowWindow+1)
	for i := -rowWindow; i <= rowWindow; i++ {
		line := make([]WindowEntry, 0, 2*colWindow+1)
		for j := -colWindow; j <= colWindow; j++ {
			pos := Coord{Row: wrap(row+i, rows), Col: wrap(col+j, cols)}
			if i == 0 && j == 0 {
				if reportSelf {
					line = append(line, WindowEntry{Coord: pos, Self: true})
				}
				continue
			}
			line = append(line, WindowEntry{Coord: pos})
		}
		out = append(out, line)
	}
	return out
}
