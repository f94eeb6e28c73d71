// Package dijkstra defines core types, configuration options and sentinel
// errors for Dijkstra's search over an implicit weighted state space.
//
// States are any comparable value: a plain grid.Coord, a (location, facing)
// pair, or anything else the caller can enumerate successors for.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |states reached|, E = |edges relaxed|
//	– Space: O(V + E)           frontier map, predecessor sets, lazy heap entries
//
// Options:
//
//	– Goal:       predicate enabling early stop once every minimum-cost goal is final.
//	– MaxCost:    cap on explored cost; states beyond it are never discovered.
//	– OnFinalize: hook called as each state's cost becomes final.
//
// Errors (sentinel):
//
//	– ErrNegativeCost    if a relaxed edge carries a negative cost.
//	– ErrOptionViolation if an option is invalid (e.g. negative MaxCost).
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNegativeCost indicates that a neighbour function produced an edge with
	// negative cost; finalised states would no longer be final.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Edge is one outgoing transition of a state.
type Edge[S comparable] struct {
	To   S   // successor state
	Cost int // non-negative transition cost
}

// NeighborFunc enumerates the outgoing edges of a state.
// It is called exactly once per finalised state.
type NeighborFunc[S comparable] func(from S) []Edge[S]

// Options configures Search.
type Options[S comparable] struct {
	// Goal, if set, lets Search stop as soon as the cheapest remaining frontier
	// entry costs more than the best finalised goal state.
	Goal func(S) bool

	// MaxCost bounds the explored cost. Default math.MaxInt (no cap).
	MaxCost int

	// OnFinalize is called when s leaves the frontier with its final cost.
	// Returning an error aborts Search with that error.
	OnFinalize func(s S, cost int) error

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option[S comparable] func(*Options[S])

// DefaultOptions returns Options that explore the whole reachable state space.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		MaxCost:    math.MaxInt,
		OnFinalize: func(S, int) error { return nil },
	}
}

// WithGoal enables early termination for goal-directed searches.
// Every goal state tied at the minimum cost is still finalised, with all of
// its equal-cost predecessors.
func WithGoal[S comparable](goal func(S) bool) Option[S] {
	return func(o *Options[S]) {
		o.Goal = goal
	}
}

// WithMaxCost caps exploration: edges leading past c are not relaxed.
// A negative c is recorded as ErrOptionViolation.
func WithMaxCost[S comparable](c int) Option[S] {
	return func(o *Options[S]) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnFinalize registers a hook run for each finalised state.
func WithOnFinalize[S comparable](fn func(s S, cost int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}
