// Package dijkstra implements Dijkstra's algorithm over an implicit state
// space, keeping every equal-cost predecessor of each state so that all
// optimal paths, not just one, can be recovered.
//
// Notes on implementation choices:
//
//   - The frontier is a map from state to (best cost, predecessor set); a lazy
//     min-heap selects its cheapest entry and stale heap items are skipped.
//   - Finalised states are never re-queued. That is sound only for
//     non-negative costs, so a negative edge aborts with ErrNegativeCost.
//   - A strictly cheaper arrival replaces the predecessor set; an arrival at
//     exactly the recorded cost is appended to it, even when the target is
//     already final (zero-cost edges can tie a state after it was popped).
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Search explores the state space from start, relaxing the edges produced
// by next in increasing order of cost.
//
// Termination:
//
//   - the frontier empties (full shortest-path tree from start), or
//   - with WithGoal, the next frontier entry is strictly more expensive than
//     the cheapest finalised goal state, so no further goal can tie it.
//
// An unreachable goal is not an error; inspect the Result with Best.
func Search[S comparable](start S, next NeighborFunc[S], opts ...Option[S]) (*Result[S], error) {
	// 1) Build and validate options
	cfg := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner[S]{
		next:     next,
		options:  cfg,
		frontier: make(map[S]*entry[S]),
		res: &Result[S]{
			Start: start,
			Cost:  make(map[S]int),
			Prev:  make(map[S][]S),
		},
	}

	// 2) Seed the frontier with the start state at cost zero
	r.frontier[start] = &entry[S]{cost: 0}
	r.push(start, 0)

	// 3) Main loop
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// entry is a frontier record: tentative cost plus every predecessor reaching it.
type entry[S comparable] struct {
	cost int
	prev []S
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	next     NeighborFunc[S]
	options  Options[S]
	frontier map[S]*entry[S]
	pq       stateQueue[S]
	seq      int
	res      *Result[S]

	goalCost  int
	goalFound bool
}

// process pops the cheapest frontier entry, finalises it and relaxes its edges.
func (r *runner[S]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*queueItem[S])

		// stale: already final, or superseded by a cheaper arrival
		e, ok := r.frontier[item.state]
		if !ok || e.cost != item.cost {
			continue
		}

		// early stop: nothing left can tie the best goal
		if r.goalFound && e.cost > r.goalCost {
			break
		}

		r.finalize(item.state, e)
		if err := r.options.OnFinalize(item.state, e.cost); err != nil {
			return err
		}
		if r.options.Goal != nil && r.options.Goal(item.state) && !r.goalFound {
			r.goalFound, r.goalCost = true, e.cost
		}

		if err := r.relax(item.state, e.cost); err != nil {
			return err
		}
	}

	return nil
}

// finalize moves s from the frontier into the result.
func (r *runner[S]) finalize(s S, e *entry[S]) {
	delete(r.frontier, s)
	r.res.Cost[s] = e.cost
	if len(e.prev) > 0 {
		r.res.Prev[s] = e.prev
	}
	r.res.Order = append(r.res.Order, s)
}

// relax examines every edge out of u, whose cost d is final.
func (r *runner[S]) relax(u S, d int) error {
	for _, edge := range r.next(u) {
		if edge.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u, edge.To, edge.Cost)
		}
		// final states cannot improve, but a zero-cost tie may still reach them
		if c, done := r.res.Cost[edge.To]; done {
			if edge.To != u && edge.Cost == c-d {
				r.res.Prev[edge.To] = append(r.res.Prev[edge.To], u)
			}
			continue
		}
		if edge.Cost > r.options.MaxCost-d {
			continue
		}
		nd := d + edge.Cost

		e, seen := r.frontier[edge.To]
		switch {
		case !seen:
			r.frontier[edge.To] = &entry[S]{cost: nd, prev: []S{u}}
			r.push(edge.To, nd)
		case nd < e.cost:
			e.cost = nd
			e.prev = append(e.prev[:0], u)
			r.push(edge.To, nd)
		case nd == e.cost:
			e.prev = append(e.prev, u)
		}
	}

	return nil
}

func (r *runner[S]) push(s S, cost int) {
	heap.Push(&r.pq, &queueItem[S]{state: s, cost: cost, seq: r.seq})
	r.seq++
}

// queueItem is a lazy heap entry; seq keeps equal-cost pops in insertion order.
type queueItem[S comparable] struct {
	state S
	cost  int
	seq   int
}

// stateQueue is a min-heap of *queueItem ordered by cost, then seq.
type stateQueue[S comparable] []*queueItem[S]

func (pq stateQueue[S]) Len() int { return len(pq) }

func (pq stateQueue[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq stateQueue[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *queueItem.
func (pq *stateQueue[S]) Push(x any) { *pq = append(*pq, x.(*queueItem[S])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *stateQueue[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
