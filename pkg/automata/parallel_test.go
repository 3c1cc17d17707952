package automata

import (
	"errors"
	"slices"
	"testing"
)

func TestRowBands(t *testing.T) {
	got := rowBands(10, 3)
	want := [][2]int{{0, 4}, {4, 7}, {7, 10}}
	if !slices.Equal(got, want) {
		t.Fatalf("rowBands(10,3) = %v, want %v", got, want)
	}
	if got := rowBands(2, 8); len(got) != 2 {
		t.Fatalf("workers should be capped at row count, got %v", got)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	build := func() *Grid {
		g, err := NewGridWithConfig(Config{HeightPx: 40, WidthPx: 30, Resolution: 1, Seed: 5})
		if err != nil {
			t.Fatalf("NewGridWithConfig: %v", err)
		}
		for _, id := range []string{"a", "b"} {
			if err := g.SeedAll(id, nil, newConway); err != nil {
				t.Fatalf("SeedAll: %v", err)
			}
		}
		return g
	}
	for _, workers := range []int{2, 3, 7, 64} {
		par := build()
		ref := build()
		for gen := 0; gen < 12; gen++ {
			if err := ref.NextGeneration(); err != nil {
				t.Fatalf("NextGeneration: %v", err)
			}
			if err := par.NextGenerationParallel(workers); err != nil {
				t.Fatalf("NextGenerationParallel(%d): %v", workers, err)
			}
		}
		for _, id := range []string{"a", "b"} {
			if !slices.Equal(states(par, id), states(ref, id)) {
				t.Fatalf("workers=%d: species %s diverged from sequential advance", workers, id)
			}
		}
		if par.Generation() != 12 {
			t.Fatalf("workers=%d: generation = %d", workers, par.Generation())
		}
	}
}

func TestParallelAbortsOnInvalidState(t *testing.T) {
	g := mustGrid(t, 6, 6)
	if err := g.SeedAll("x", withState(0), newConway); err != nil {
		t.Fatalf("SeedAll: %v", err)
	}
	err := g.SeedCell(5, 5, "bad", nil, func(*Cell, string, int, Properties) (Automaton, error) {
		return &broken{Base: NewBase("bad", 1, nil), armed: true}, nil
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := g.NextGenerationParallel(4); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
	if g.Generation() != 0 {
		t.Fatalf("generation advanced to %d", g.Generation())
	}
}
