package automata

import (
	"slices"
	"testing"
)

func TestNeighborsWrapAtOrigin(t *testing.T) {
	const rows, cols = 4, 7
	got := Neighbors(0, 0, rows, cols)
	if len(got) != 8 {
		t.Fatalf("expected 8 neighbours, got %d", len(got))
	}
	for _, want := range []Coord{{rows - 1, cols - 1}, {rows - 1, 0}, {0, cols - 1}, {1, 1}} {
		if !slices.Contains(got, want) {
			t.Fatalf("neighbours of (0,0) missing %v: %v", want, got)
		}
	}
	if slices.Contains(got, Coord{0, 0}) {
		t.Fatalf("neighbours of (0,0) include itself: %v", got)
	}
}

func TestNeighborsOrder(t *testing.T) {
	got := Neighbors(2, 2, 5, 5)
	want := []Coord{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	if !slices.Equal(got, want) {
		t.Fatalf("Neighbors(2,2) = %v, want %v", got, want)
	}
}

func TestNeighborsOnSingleCellGrid(t *testing.T) {
	got := Neighbors(0, 0, 1, 1)
	if len(got) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(got))
	}
	for _, pos := range got {
		if pos != (Coord{0, 0}) {
			t.Fatalf("1x1 grid produced %v", pos)
		}
	}
}

func TestNeighborWindowDefaultMatchesNeighbors(t *testing.T) {
	win := NeighborWindow(0, 0, 5, 5, 1, 1, false)
	if len(win) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(win))
	}
	var flat []Coord
	for i, line := range win {
		wantLen := 3
		if i == 1 {
			wantLen = 2
		}
		if len(line) != wantLen {
			t.Fatalf("row %d has %d entries, want %d", i, len(line), wantLen)
		}
		for _, e := range line {
			if e.Self {
				t.Fatalf("unexpected self entry without reportSelf")
			}
			flat = append(flat, e.Coord)
		}
	}
	if !slices.Equal(flat, Neighbors(0, 0, 5, 5)) {
		t.Fatalf("window %v differs from neighbours", flat)
	}
}

func TestNeighborWindowReportsSelf(t *testing.T) {
	win := NeighborWindow(3, 3, 10, 10, 2, 1, true)
	if len(win) != 5 {
		t.Fatalf("expected 5 rows for rowWindow=2, got %d", len(win))
	}
	selfCount := 0
	for _, line := range win {
		if len(line) != 3 {
			t.Fatalf("expected 3 columns for colWindow=1, got %d", len(line))
		}
		for _, e := range line {
			if e.Self {
				selfCount++
				if e.Coord != (Coord{3, 3}) {
					t.Fatalf("self entry at %v", e.Coord)
				}
			}
		}
	}
	if selfCount != 1 {
		t.Fatalf("expected exactly one self entry, got %d", selfCount)
	}
	if got := win[0][0].Coord; got != (Coord{1, 2}) {
		t.Fatalf("top-left entry = %v, want (1,2)", got)
	}
}

func TestNeighborWindowNegativeClamps(t *testing.T) {
	win := NeighborWindow(1, 1, 3, 3, -1, -4, true)
	if len(win) != 1 || len(win[0]) != 1 || !win[0][0].Self {
		t.Fatalf("negative windows should collapse to the centre, got %v", win)
	}
}

func TestCellNeighborWindowUsesGridDimensions(t *testing.T) {
	g := mustGrid(t, 3, 4)
	c, err := g.Cell(0, 3)
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	win := c.NeighborWindow(0, 1, false)
	want := []WindowEntry{{Coord: Coord{0, 2}}, {Coord: Coord{0, 0}}}
	if len(win) != 1 || !slices.Equal(win[0], want) {
		t.Fatalf("NeighborWindow = %v, want %v", win, want)
	}
}
