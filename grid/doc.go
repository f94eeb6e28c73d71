// Package grid provides the primitives every traversal in gridpath is built on:
// a rectangular, bounds-checked 2D grid, signed 2D vectors, and the four compass
// directions with 90° rotation.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T addressed by (row, col) Coord values.
//   - Vec[T] is a generic signed 2D vector with Add, Sub, Scale and Dot.
//   - Direction enumerates N, E, S, W in exactly that ordinal order (0..3);
//     Rotate90 is modulo-4 arithmetic over it.
//   - Around yields the 4 orthogonal neighbours of a coordinate, tagged by the
//     direction that reaches them. Callers filter with InBounds.
//   - Parse turns rune-grid text into a typed Grid[T].
//
// Why:
//
//   - Flood fills, BFS reachability, region extraction and state-space search
//     all need the same bounds checks and direction vectors; keeping them in one
//     place removes the off-by-one variants each solver would otherwise carry.
//
// Complexity:
//
//   - InBounds, At, Set, Vector, Rotate90: O(1).
//   - New, Clone, Parse: O(R×C) time and memory.
//   - Coords: O(R×C) over a full iteration, O(1) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: At/Set called with a coordinate outside the grid. This is
//     a programming error and is raised with panic, never returned.
package grid
