// Package bfs provides breadth-first reachability over a grid.Grid,
// processing one generation of the frontier at a time.
package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	g      grid.Grid[T]
	step   StepFunc[T]
	opts   Options
	queued mapset.Set[grid.Coord]
	res    *Result
}

// Reachable runs BFS on g from seed, following step between orthogonal
// neighbours, and returns every reached coordinate with its generation.
// Returns ErrStartOutOfBounds for a seed outside g, ErrOptionViolation for
// bad options, the context's error on cancellation, or any user-supplied hook error.
func Reachable[T any](g grid.Grid[T], seed grid.Coord, step StepFunc[T], opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[T]{
		g:      g,
		step:   step,
		opts:   o,
		queued: mapset.New[grid.Coord](),
		res: &Result{
			Visited: mapset.New[grid.Coord](),
			Depth:   make(map[grid.Coord]int),
		},
	}
	if g.Empty() {
		return w.res, nil
	}
	if !g.InBounds(seed) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, seed)
	}

	return w.res, w.loop(seed)
}

// Count runs Reachable and returns how many visited cells satisfy target.
func Count[T any](g grid.Grid[T], seed grid.Coord, step StepFunc[T], target func(grid.Cell[T]) bool, opts ...Option) (int, error) {
	res, err := Reachable(g, seed, step, opts...)
	if err != nil {
		return 0, err
	}
	n := 0
	res.Visited.Each(func(c grid.Coord) {
		if target(g.Cell(c)) {
			n++
		}
	})

	return n, nil
}

// loop processes generations until the frontier empties or a hook fails.
func (w *walker[T]) loop(seed grid.Coord) error {
	frontier := []grid.Coord{seed}
	w.queued.Put(seed)

	for depth := 0; len(frontier) > 0; depth++ {
		// snapshot: everything discovered now belongs to the next generation
		w.opts.FrontierOrder(frontier)
		var next []grid.Coord
		for _, c := range frontier {
			if err := w.visit(c, depth); err != nil {
				return err
			}
			if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
				continue
			}
			next = w.expand(c, next)
		}
		w.res.Layers = depth + 1
		frontier = next
	}
	return nil
}

// visit moves c into the visited set and calls OnVisit.
func (w *walker[T]) visit(c grid.Coord, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited.Put(c)
	w.res.Depth[c] = depth
	if err := w.opts.OnVisit(c, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
	}
	return nil
}

// expand appends every in-bounds, not yet queued neighbour of c accepted by step.
func (w *walker[T]) expand(c grid.Coord, next []grid.Coord) []grid.Coord {
	from := w.g.Cell(c)
	for _, n := range w.g.Neighbours(c) {
		if w.queued.Has(n) {
			continue
		}
		if !w.step(from, w.g.Cell(n)) {
			continue
		}
		w.queued.Put(n)
		next = append(next, n)
	}
	return next
}
