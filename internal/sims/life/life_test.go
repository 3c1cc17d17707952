package life

import (
	"testing"

	"github.com/MdMxMyr/Automata-engine/pkg/automata"
)

type coord = [2]int

// seedPattern gives every cell one automaton of typeID, active where the
// pattern says so.
func seedPattern(t *testing.T, g *automata.Grid, typeID string, alive map[coord]bool) {
	t.Helper()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			state := 0
			if alive[coord{r, c}] {
				state = 1
			}
			props := automata.Properties{automata.PropState: state}
			if err := g.SeedCell(r, c, typeID, props, New); err != nil {
				t.Fatalf("seed (%d,%d): %v", r, c, err)
			}
		}
	}
}

func activeOf(g *automata.Grid, typeID string) map[coord]bool {
	out := map[coord]bool{}
	for _, cell := range g.Cells() {
		for _, a := range cell.Population() {
			if a.TypeID() == typeID && a.State() > 0 {
				out[coord{cell.Row(), cell.Col()}] = true
			}
		}
	}
	return out
}

func assertPattern(t *testing.T, label string, got, want map[coord]bool) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: %d active cells, expected %d (%v)", label, len(got), len(want), got)
	}
	for pos := range want {
		if !got[pos] {
			t.Fatalf("%s: cell %v inactive, expected active (%v)", label, pos, got)
		}
	}
}

func newGrid(t *testing.T, rows, cols int) *automata.Grid {
	t.Helper()
	g, err := automata.NewGrid(rows*10, cols*10, 10)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func step(t *testing.T, g *automata.Grid, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := g.NextGeneration(); err != nil {
			t.Fatalf("NextGeneration: %v", err)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newGrid(t, 5, 5)
	seedPattern(t, g, "cell-1", map[coord]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	step(t, g, 1)
	assertPattern(t, "after first step", activeOf(g, "cell-1"), map[coord]bool{
		{2, 1}: true, {2, 2}: true, {2, 3}: true,
	})

	step(t, g, 1)
	assertPattern(t, "after second step", activeOf(g, "cell-1"), map[coord]bool{
		{1, 2}: true, {2, 2}: true, {3, 2}: true,
	})
	if g.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", g.Generation())
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	glider := map[coord]bool{{0, 1}: true, {1, 2}: true, {2, 0}: true, {2, 1}: true, {2, 2}: true}
	for _, size := range []int{5, 6, 9} {
		g := newGrid(t, size, size)
		seedPattern(t, g, "glider", glider)
		step(t, g, 4)

		want := map[coord]bool{}
		for pos := range glider {
			want[coord{(pos[0] + 1) % size, (pos[1] + 1) % size}] = true
		}
		assertPattern(t, "glider after 4 generations", activeOf(g, "glider"), want)
	}
}

func TestGliderWrapsAcrossEdges(t *testing.T) {
	const size = 6
	glider := map[coord]bool{{4, 5}: true, {5, 0}: true, {0, 4}: true, {0, 5}: true, {0, 0}: true}
	g := newGrid(t, size, size)
	seedPattern(t, g, "glider", glider)
	step(t, g, 4)

	want := map[coord]bool{}
	for pos := range glider {
		want[coord{(pos[0] + 1) % size, (pos[1] + 1) % size}] = true
	}
	assertPattern(t, "wrapped glider", activeOf(g, "glider"), want)
}

func TestSpeciesEvolveIndependently(t *testing.T) {
	glider := map[coord]bool{{0, 1}: true, {1, 2}: true, {2, 0}: true, {2, 1}: true, {2, 2}: true}
	// A second pattern overlapping the glider's neighbourhood; it would disturb the
	// glider if counts were shared across species.
	other := map[coord]bool{{1, 0}: true, {1, 1}: true, {2, 3}: true, {3, 3}: true, {3, 2}: true}

	solo := newGrid(t, 8, 8)
	seedPattern(t, solo, "a", glider)

	mixed := newGrid(t, 8, 8)
	seedPattern(t, mixed, "a", glider)
	seedPattern(t, mixed, "b", other)

	soloB := newGrid(t, 8, 8)
	seedPattern(t, soloB, "b", other)

	for gen := 1; gen <= 6; gen++ {
		step(t, solo, 1)
		step(t, mixed, 1)
		step(t, soloB, 1)
		assertPattern(t, "species a", activeOf(mixed, "a"), activeOf(solo, "a"))
		assertPattern(t, "species b", activeOf(mixed, "b"), activeOf(soloB, "b"))
	}
}

func TestNewHonoursStateProperty(t *testing.T) {
	g := newGrid(t, 3, 3)
	if err := g.SeedAll("x", automata.Properties{automata.PropState: 1}, New); err != nil {
		t.Fatalf("SeedAll: %v", err)
	}
	for _, pop := range g.Populations() {
		if len(pop) != 1 || pop[0].State() != 1 {
			t.Fatalf("expected one active automaton per cell, got %v", pop)
		}
	}
}

func TestRandomInitialStateIsBinary(t *testing.T) {
	g := newGrid(t, 20, 20)
	if err := g.SeedAll("x", nil, New); err != nil {
		t.Fatalf("SeedAll: %v", err)
	}
	seen := map[int]int{}
	for _, pop := range g.Populations() {
		seen[pop[0].State()]++
	}
	if len(seen) != 2 || seen[0] == 0 || seen[1] == 0 {
		t.Fatalf("expected a mix of 0 and 1 initial states, got %v", seen)
	}
}
