// Package bfs provides tunable options and error definitions
// for breadth-first reachability over a grid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfBounds is returned when the seed is outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: seed out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// StepFunc reports whether the walk may move from one cell to an adjacent one.
type StepFunc[T any] func(from, to grid.Cell[T]) bool

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation of a long traversal; checked once per visited cell.
	Ctx context.Context

	// OnVisit is called when a cell is moved into the visited set.
	// Receives the coordinate and its generation. Returning an error aborts BFS.
	OnVisit func(at grid.Coord, depth int) error

	// MaxDepth, if > 0, stops expanding beyond this generation.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FrontierOrder, if set, may reorder each generation in place before it is processed.
	FrontierOrder func(frontier []grid.Coord)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// a no-op OnVisit hook and frontier processing in discovery order.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnVisit:       func(grid.Coord, int) error { return nil },
		MaxDepth:      0,
		FrontierOrder: func([]grid.Coord) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(at grid.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expansion at the given generation.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFrontierOrder installs fn to permute each generation before processing.
func WithFrontierOrder(fn func(frontier []grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.FrontierOrder = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Visited mapset.Set[grid.Coord]
	Depth   map[grid.Coord]int
	Layers  int
}

// Len returns the number of visited cells.
func (r *Result) Len() int {
	return r.Visited.Size()
}

// Has reports whether c was reached.
func (r *Result) Has(c grid.Coord) bool {
	return r.Visited.Has(c)
}
