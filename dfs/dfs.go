// Package dfs implements memoised depth-first path counting on grid.Grid.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// counter encapsulates state during a single CountPaths run.
type counter[T any] struct {
	g      grid.Grid[T]
	step   StepFunc[T]
	target func(grid.Cell[T]) bool
	opts   Options
	color  grid.Grid[uint8]
	paths  grid.Grid[int]
}

// CountPaths returns the number of distinct paths from start to any target cell,
// moving only along steps accepted by step. A path stops at the first target it
// reaches. Returns ErrStartOutOfBounds, ErrCycleDetected, or a hook error.
func CountPaths[T any](g grid.Grid[T], start grid.Coord, step StepFunc[T], target func(grid.Cell[T]) bool, opts ...Option) (int, error) {
	// 1. Validate start
	if !g.InBounds(start) {
		return 0, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Per-cell colour and memo grids share the input's shape
	rows, cols := g.Dims()
	c := &counter[T]{
		g:      g,
		step:   step,
		target: target,
		opts:   o,
		color:  grid.Make[uint8](rows, cols),
		paths:  grid.Make[int](rows, cols),
	}

	return c.visit(start, 0)
}

// visit returns the number of paths from at to a target, memoising the result.
func (c *counter[T]) visit(at grid.Coord, depth int) (int, error) {
	// 1. Already finished: reuse
	switch c.color.At(at) {
	case Black:
		return c.paths.At(at), nil
	case Gray:
		return 0, fmt.Errorf("%w: at %v", ErrCycleDetected, at)
	}

	// 2. Pre-order hook
	if c.opts.OnEnter != nil {
		if err := c.opts.OnEnter(at, depth); err != nil {
			return 0, fmt.Errorf("dfs: OnEnter hook at %v: %w", at, err)
		}
	}

	// 3. Targets terminate a path
	here := c.g.Cell(at)
	if c.target(here) {
		c.finish(at, 1)
		return 1, nil
	}

	// 4. Sum over accepted neighbours
	c.color.Set(at, Gray)
	total := 0
	for _, n := range c.g.Neighbours(at) {
		if !c.step(here, c.g.Cell(n)) {
			continue
		}
		k, err := c.visit(n, depth+1)
		if err != nil {
			return 0, err
		}
		total += k
	}
	c.finish(at, total)

	return total, nil
}

// finish colours at Black and stores its count.
func (c *counter[T]) finish(at grid.Coord, n int) {
	c.color.Set(at, Black)
	c.paths.Set(at, n)
}
