// Package dfs defines types and options for memoised depth-first path counting.
package dfs

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Vertex visitation states.
const (
	White = iota // White: the cell has not been visited yet.
	Gray         // Gray: the cell is on the recursion stack.
	Black        // Black: the cell and all its successors have been counted.
)

var (
	// ErrStartOutOfBounds indicates that the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("dfs: start out of bounds")

	// ErrCycleDetected indicates that the step relation admits a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// StepFunc reports whether a path may continue from one cell to an adjacent one.
type StepFunc[T any] func(from, to grid.Cell[T]) bool

// Option configures optional behavior of path counting.
type Option func(*Options)

// Options holds configurable parameters for path counting.
type Options struct {
	// OnEnter, if non-nil, is invoked the first time a cell is explored
	// (pre-order) with its depth along the discovering path.
	// Returning an error aborts the count with that error.
	OnEnter func(at grid.Coord, depth int) error
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnEnter registers a pre-order hook.
func WithOnEnter(fn func(at grid.Coord, depth int) error) Option {
	return func(o *Options) {
		o.OnEnter = fn
	}
}
