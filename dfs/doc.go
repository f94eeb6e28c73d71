// Package dfs counts distinct step-paths over a grid.Grid using a memoised
// depth-first search with vertex colouring.
//
// What:
//
//   - CountPaths: number of distinct paths that start at a cell, follow a step
//     predicate between orthogonal neighbours, and end on a target cell.
//     A path ends as soon as it reaches a target; targets are not walked through.
//   - The step relation must be acyclic (e.g. "height exactly one more").
//     Colouring detects a cycle and fails fast with ErrCycleDetected instead of
//     recursing forever.
//
// Why:
//
//   - BFS answers "which cells can I reach"; trail ratings need "in how many
//     ways". Each cell's count is computed once and reused by every path that
//     passes through it.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers (unseen, on stack, finished)
//   - Option / Options:  functional options (OnEnter hook)
//
// Complexity:
//
//   - Time:   O(R×C) (each cell finished once, 4 neighbour checks each)
//   - Memory: O(R×C) for colours, memoised counts and the recursion stack
//
// Errors:
//
//   - ErrStartOutOfBounds  start coordinate not in the grid
//   - ErrCycleDetected     step relation admits a cycle reachable from start
//   - hook errors          propagated from OnEnter
package dfs
