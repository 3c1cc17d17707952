package automata

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// rowBands splits rows into at most workers contiguous [start, end) ranges,
// handing the remainder out one row at a time from the top.
func rowBands(rows, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > rows {
		workers = rows
	}
	bands := make([][2]int, 0, workers)
	per := rows / workers
	extra := rows % workers
	start := 0
	for i := 0; i < workers; i++ {
		n := per
		if i < extra {
			n++
		}
		bands = append(bands, [2]int{start, start + n})
		start += n
	}
	return bands
}

// NextGenerationParallel advances the grid like NextGeneration but fans both
// passes out over row bands. Waiting on the evaluate group is the barrier
// before any cell commits. workers <= 1 falls back to the sequential advance.
func (g *Grid) NextGenerationParallel(workers int) error {
	if workers <= 1 || g.rows < 2 {
		return g.NextGeneration()
	}
	bands := rowBands(g.rows, workers)

	var eval errgroup.Group
	for _, band := range bands {
		lo, hi := band[0]*g.cols, band[1]*g.cols
		eval.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := g.cells[i].Evaluate(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eval.Wait(); err != nil {
		g.discard()
		return fmt.Errorf("generation %d: %w", g.generation+1, err)
	}

	var commit errgroup.Group
	for _, band := range bands {
		lo, hi := band[0]*g.cols, band[1]*g.cols
		commit.Go(func() error {
			for i := lo; i < hi; i++ {
				g.cells[i].Commit()
			}
			return nil
		})
	}
	_ = commit.Wait()
	g.generation++
	return nil
}
