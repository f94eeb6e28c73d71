// Package grid defines core types, directions and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid was dereferenced.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Vec is a 2D vector of signed integers, stored as (row, col) deltas or positions.
type Vec[T constraints.Signed] struct {
	Row, Col T
}

// Coord is a grid position; row grows downward, col grows rightward.
type Coord = Vec[int]

// Add returns v + o.
func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{v.Row + o.Row, v.Col + o.Col}
}

// Sub returns v - o.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	return Vec[T]{v.Row - o.Row, v.Col - o.Col}
}

// Scale returns v multiplied component-wise by k.
func (v Vec[T]) Scale(k T) Vec[T] {
	return Vec[T]{v.Row * k, v.Col * k}
}

// Dot returns the dot product of v and o.
func (v Vec[T]) Dot(o Vec[T]) T {
	return v.Row*o.Row + v.Col*o.Col
}

// Map applies fn to both components.
func (v Vec[T]) Map(fn func(T) T) Vec[T] {
	return Vec[T]{fn(v.Row), fn(v.Col)}
}

// String renders v as "(row,col)".
func (v Vec[T]) String() string {
	return fmt.Sprintf("(%d,%d)", v.Row, v.Col)
}

// Compare orders coordinates row-major. Suitable for slices.SortFunc.
func Compare(a, b Coord) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// Direction is one of the four compass directions.
// The ordinal order N, E, S, W is load-bearing: rotation is modulo-4 arithmetic over it.
type Direction uint8

const (
	N Direction = iota // north, (-1, 0)
	E                  // east,  (0, 1)
	S                  // south, (1, 0)
	W                  // west,  (0, -1)
)

// numDirections is the size of the Direction enum.
const numDirections = 4

// vectors is indexed by Direction.
var vectors = [numDirections]Coord{
	N: {-1, 0},
	E: {0, 1},
	S: {1, 0},
	W: {0, -1},
}

// Directions returns all four directions in ordinal order.
func Directions() [numDirections]Direction {
	return [numDirections]Direction{N, E, S, W}
}

// Vector returns the unit (Δrow, Δcol) for d. It panics if d is not valid.
func (d Direction) Vector() Coord {
	if !d.Valid() {
		panic(fmt.Sprintf("grid: invalid direction %d", uint8(d)))
	}
	return vectors[d]
}

// Rotate90 turns d by a quarter: clockwise N→E→S→W→N, otherwise the reverse.
func (d Direction) Rotate90(clockwise bool) Direction {
	if clockwise {
		return (d + 1) % numDirections
	}
	return (d + numDirections - 1) % numDirections
}

// Opposite returns the direction rotated by 180°.
func (d Direction) Opposite() Direction {
	return (d + 2) % numDirections
}

// Valid reports whether d is one of N, E, S, W.
func (d Direction) Valid() bool {
	return d < numDirections
}

// String returns the single-letter name of d.
func (d Direction) String() string {
	switch d {
	case N:
		return "N"
	case E:
		return "E"
	case S:
		return "S"
	case W:
		return "W"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Around yields the 4 orthogonal neighbours of c in N, E, S, W order,
// each tagged with the direction that reaches it. Neighbours are not bounds-filtered.
func Around(c Coord) iter.Seq2[Direction, Coord] {
	return func(yield func(Direction, Coord) bool) {
		for _, d := range Directions() {
			if !yield(d, c.Add(d.Vector())) {
				return
			}
		}
	}
}

// Cell pairs a coordinate with the value stored there.
type Cell[T any] struct {
	At    Coord
	Value T
}
