package dijkstra

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Result holds the finalised part of a search.
type Result[S comparable] struct {
	// Start is the state the search began from.
	Start S
	// Cost maps each finalised state to its minimum cost from Start.
	Cost map[S]int
	// Prev maps each finalised state to every predecessor through which it is
	// reached at minimum cost. Start has an entry only when a zero-cost cycle
	// leads back to it.
	Prev map[S][]S
	// Order lists finalised states in non-decreasing cost.
	Order []S
}

// Reached reports whether s was finalised.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Cost[s]
	return ok
}

// Best returns the minimum cost over finalised states satisfying goal and
// every such state attaining it. ok is false when no goal state was reached.
func (r *Result[S]) Best(goal func(S) bool) (cost int, states []S, ok bool) {
	for _, s := range r.Order {
		if !goal(s) {
			continue
		}
		c := r.Cost[s]
		if ok && c > cost {
			break // Order is sorted by cost
		}
		cost, ok = c, true
		states = append(states, s)
	}
	return cost, states, ok
}

// Trace returns every state lying on some optimal path from Start to any of
// ends, in finalisation order. Unreached ends are ignored.
//
// The walk is an iterative worklist over predecessor sets; each state is
// expanded once, so diamond-shaped ties stay linear.
func (r *Result[S]) Trace(ends ...S) []S {
	seen := mapset.New[S]()
	var work []S
	for _, e := range ends {
		if r.Reached(e) && !seen.Has(e) {
			seen.Put(e)
			work = append(work, e)
		}
	}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, p := range r.Prev[s] {
			if seen.Has(p) {
				continue
			}
			seen.Put(p)
			work = append(work, p)
		}
	}

	out := make([]S, 0, seen.Size())
	for _, s := range r.Order {
		if seen.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// Path returns one optimal path from Start to end, following the first
// recorded predecessor at every step, or nil if end was not reached.
// The first predecessor is always finalised before its successor, so the walk
// terminates even when zero-cost cycles are present.
func (r *Result[S]) Path(end S) []S {
	if !r.Reached(end) {
		return nil
	}
	path := []S{end}
	for s := end; s != r.Start; {
		prev := r.Prev[s]
		if len(prev) == 0 {
			break
		}
		s = prev[0]
		path = append(path, s)
	}
	slices.Reverse(path)
	return path
}
