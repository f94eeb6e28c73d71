// Package memspace models a square memory region being corrupted byte by
// byte, and finds the shortest walk from its top-left to its bottom-right
// corner as well as the first byte that cuts the two apart.
package memspace

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for memory-space input.
var (
	// ErrBadByte indicates a line that is not "x,y" with two integers.
	ErrBadByte = errors.New("memspace: malformed byte position")
	// ErrOutOfRange indicates a byte outside the size×size space.
	ErrOutOfRange = errors.New("memspace: byte outside memory space")
	// ErrBadSize indicates a non-positive space size.
	ErrBadSize = errors.New("memspace: size must be positive")
)

// ParseBytes reads one "x,y" pair per line; x is the column, y the row.
func ParseBytes(text string) ([]grid.Coord, error) {
	var out []grid.Coord
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadByte, i+1, line)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadByte, i+1, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadByte, i+1, err)
		}
		out = append(out, grid.Coord{Row: y, Col: x})
	}
	return out, nil
}

// Space is a size×size memory region; true cells are corrupted.
type Space struct {
	Size      int
	Corrupted grid.Grid[bool]
}

// NewSpace returns a size×size space with the given bytes already fallen.
func NewSpace(size int, bytes []grid.Coord) (*Space, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	s := &Space{Size: size, Corrupted: grid.Make[bool](size, size)}
	for _, b := range bytes {
		if err := s.Corrupt(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Corrupt marks b as fallen.
func (s *Space) Corrupt(b grid.Coord) error {
	if !s.Corrupted.InBounds(b) {
		return fmt.Errorf("%w: %d,%d in %dx%d", ErrOutOfRange, b.Col, b.Row, s.Size, s.Size)
	}
	s.Corrupted.Set(b, true)
	return nil
}

// Exit is the bottom-right corner.
func (s *Space) Exit() grid.Coord {
	return grid.Coord{Row: s.Size - 1, Col: s.Size - 1}
}

// neighbors yields unit-cost edges to intact orthogonal neighbours.
func (s *Space) neighbors(c grid.Coord) []dijkstra.Edge[grid.Coord] {
	var out []dijkstra.Edge[grid.Coord]
	for _, n := range s.Corrupted.Neighbours(c) {
		if !s.Corrupted.At(n) {
			out = append(out, dijkstra.Edge[grid.Coord]{To: n, Cost: 1})
		}
	}
	return out
}

// MinSteps returns the fewest steps from (0,0) to the exit, or false when
// corruption separates them.
func (s *Space) MinSteps() (int, bool) {
	start, exit := grid.Coord{}, s.Exit()
	if s.Corrupted.At(start) || s.Corrupted.At(exit) {
		return 0, false
	}
	isExit := func(c grid.Coord) bool { return c == exit }
	res, err := dijkstra.Search(start, s.neighbors, dijkstra.WithGoal(isExit))
	if err != nil {
		// unit costs and no options: Search cannot fail
		panic(err)
	}
	cost, _, ok := res.Best(isExit)
	return cost, ok
}

// MinSteps builds a size×size space from bytes and solves it.
func MinSteps(size int, bytes []grid.Coord) (int, bool, error) {
	s, err := NewSpace(size, bytes)
	if err != nil {
		return 0, false, err
	}
	steps, ok := s.MinSteps()
	return steps, ok, nil
}

// FirstBlocking returns the first byte, in falling order, after which the
// exit can no longer be reached, and its index in bytes. ok is false when the
// exit stays reachable after every byte.
//
// Reachability is monotone in the number of fallen bytes, so the prefix
// length is found by binary search.
func FirstBlocking(size int, bytes []grid.Coord) (b grid.Coord, index int, ok bool, err error) {
	if _, err = NewSpace(size, bytes); err != nil {
		return grid.Coord{}, 0, false, err
	}
	blocked := func(n int) bool {
		s, _ := NewSpace(size, bytes[:n])
		_, reachable := s.MinSteps()
		return !reachable
	}
	n := sort.Search(len(bytes)+1, blocked)
	if n > len(bytes) {
		return grid.Coord{}, 0, false, nil
	}
	return bytes[n-1], n - 1, true, nil
}

// String draws the space with '#' for corrupted cells.
func (s *Space) String() string {
	var sb strings.Builder
	for _, row := range s.Corrupted.Rows() {
		for _, bad := range row {
			if bad {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
