// Package bfs provides generational breadth-first reachability over a grid.Grid,
// returning the set of coordinates reachable from a seed through a step predicate.
//
// What
//
//   - Explore cells outward from a seed, one generation (layer) at a time.
//   - A StepFunc decides whether the walk may move from one cell to an
//     orthogonal neighbour (e.g. "height exactly one more", "same label").
//   - Returns a Result containing:
//   - Visited: every reached coordinate (seed included)
//   - Depth:   map from coordinate → generation in which it was reached
//   - Layers:  number of generations processed
//   - Count applies a target predicate to the visited set, e.g. "height == 9".
//   - Supports functional hooks and limits:
//   - WithContext      (cancellation, checked before each visit)
//   - WithOnVisit      (called for each visited cell; may abort with an error)
//   - WithMaxDepth     (stop expanding beyond a generation)
//   - WithFrontierOrder (permute each generation before it is processed)
//
// Why
//
//   - Trailhead scoring, flood fill and any "what can I reach" query over a
//     typed grid share this loop.
//
// Determinism
//
//	Each generation is snapshotted before processing and a cell is queued at
//	most once, so the final Visited set and every Depth value are independent
//	of the order in which a generation is processed. WithFrontierOrder exists to
//	exercise that property.
//
// Complexity (R×C = grid cells)
//
//   - Time:   O(R×C)   (each cell visited once, 4 neighbour checks each)
//   - Memory: O(R×C)   (visited set, depth map, frontier)
//
// Usage
//
//	score, err := bfs.Count(g, trailhead,
//	    func(from, to grid.Cell[int]) bool { return to.Value == from.Value+1 },
//	    func(c grid.Cell[int]) bool { return c.Value == 9 },
//	)
//
// Errors
//
//   - ErrStartOutOfBounds if the seed lies outside a non-empty grid.
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//
// A zero (empty) grid yields an empty Result and no error.
package bfs
