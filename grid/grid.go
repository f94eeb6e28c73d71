// Package grid provides a rectangular, bounds-checked 2D grid of typed cells.
//
// A Grid is fixed in shape at construction. Cells may be mutated in place via
// Set; callers own a Grid exclusively for the duration of a solve and use Clone
// when independent copies are required.
package grid

import (
	"fmt"
	"iter"
)

// Grid is a rectangular rows×cols array of T, addressed by Coord{Row, Col}.
type Grid[T any] struct {
	rows, cols int
	cells      [][]T
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of values does not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New[T any](values [][]T) (Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return Grid[T]{}, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return Grid[T]{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	g := Make[T](rows, cols)
	for r := range values {
		copy(g.cells[r], values[r])
	}

	return g, nil
}

// Make allocates a rows×cols grid of zero values.
// It panics with ErrEmptyGrid if either dimension is not positive.
func Make[T any](rows, cols int) Grid[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols))
	}
	// single backing array, row slices into it
	backing := make([]T, rows*cols)
	cells := make([][]T, rows)
	for r := range cells {
		cells[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}

	return Grid[T]{rows: rows, cols: cols, cells: cells}
}

// Dims returns (rows, cols). It panics with ErrEmptyGrid on a zero Grid.
func (g Grid[T]) Dims() (rows, cols int) {
	if g.rows == 0 {
		panic(ErrEmptyGrid)
	}
	return g.rows, g.cols
}

// Empty reports whether g is the zero Grid (no rows).
func (g Grid[T]) Empty() bool {
	return g.rows == 0
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g Grid[T]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the value at c. It panics with ErrOutOfBounds if !InBounds(c).
func (g Grid[T]) At(c Coord) T {
	g.mustContain(c)
	return g.cells[c.Row][c.Col]
}

// Lookup returns the value at c and whether c is in bounds.
func (g Grid[T]) Lookup(c Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells[c.Row][c.Col], true
}

// Set stores v at c. It panics with ErrOutOfBounds if !InBounds(c).
func (g Grid[T]) Set(c Coord, v T) {
	g.mustContain(c)
	g.cells[c.Row][c.Col] = v
}

// Cell returns the coordinate/value pair at c.
func (g Grid[T]) Cell(c Coord) Cell[T] {
	return Cell[T]{At: c, Value: g.At(c)}
}

// Coords yields every coordinate in row-major order.
// The sequence is a pure function of the grid's shape and may be ranged over repeatedly.
func (g Grid[T]) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(Coord{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Cells yields every cell in row-major order.
func (g Grid[T]) Cells() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for c := range g.Coords() {
			if !yield(Cell[T]{At: c, Value: g.cells[c.Row][c.Col]}) {
				return
			}
		}
	}
}

// Neighbours yields the in-bounds orthogonal neighbours of c in N, E, S, W order.
func (g Grid[T]) Neighbours(c Coord) iter.Seq2[Direction, Coord] {
	return func(yield func(Direction, Coord) bool) {
		for d, n := range Around(c) {
			if !g.InBounds(n) {
				continue
			}
			if !yield(d, n) {
				return
			}
		}
	}
}

// Find returns the first coordinate (row-major) whose value satisfies pred.
func (g Grid[T]) Find(pred func(T) bool) (Coord, bool) {
	for c := range g.Coords() {
		if pred(g.cells[c.Row][c.Col]) {
			return c, true
		}
	}
	return Coord{}, false
}

// Clone returns an independent deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := Make[T](g.rows, g.cols)
	for r := range g.cells {
		copy(out.cells[r], g.cells[r])
	}
	return out
}

// Rows returns a copy of the underlying cells as a [][]T.
func (g Grid[T]) Rows() [][]T {
	return g.Clone().cells
}

// mustContain panics with ErrOutOfBounds when c is outside the grid.
func (g Grid[T]) mustContain(c Coord) {
	if !g.InBounds(c) {
		panic(fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols))
	}
}
