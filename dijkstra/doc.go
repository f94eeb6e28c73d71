// Package dijkstra provides Dijkstra's shortest-path search over implicit,
// generic state spaces with non-negative integer costs.
//
// Overview:
//
//   - Search takes a start state and a NeighborFunc; states are discovered
//     lazily, so the graph never has to be materialised.
//   - Each state keeps the set of all predecessors that reach it at minimum
//     cost. Result.Trace unions every optimal path to a set of end states;
//     Result.Path picks one of them.
//   - Result.Best reports the cheapest goal cost and every goal state tied at
//     it. An unreachable goal is reported by ok == false, never as an error.
//
// Typical use, a (location, facing) maze:
//
//	res, err := dijkstra.Search(start, func(s State) []dijkstra.Edge[State] {
//	    return []dijkstra.Edge[State]{
//	        {To: s.Forward(), Cost: 1},
//	        {To: s.Turn(true), Cost: 1000},
//	        {To: s.Turn(false), Cost: 1000},
//	    }
//	}, dijkstra.WithGoal(atExit))
//	if err != nil {
//	    return err
//	}
//	cost, ends, ok := res.Best(atExit)
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), counting stale heap entries under lazy decrease-key.
//
// Thread safety:
//
//   - A Search call owns all of its state; independent searches may run
//     concurrently. A Result is read-only after Search returns.
package dijkstra
