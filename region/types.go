// Package region defines the Region record and sentinel errors.
package region

import (
	"errors"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvariant indicates an internally inconsistent region or boundary set.
var ErrInvariant = errors.New("region: invariant violated")

// Region is a maximal 4-connected set of equal-label cells.
// It is immutable after Regions returns it.
type Region[T comparable] struct {
	// Label is the value shared by every member cell.
	Label T
	// Seed is the first member found in row-major order.
	Seed grid.Coord
	// Area holds every member coordinate.
	Area mapset.Set[grid.Coord]
	// Perimeter counts member/outside adjacencies.
	Perimeter int
	// Boundary holds the distinct outside coordinates adjacent to the region;
	// some may lie outside the grid.
	Boundary mapset.Set[grid.Coord]
}

// Size returns the region's area.
func (r Region[T]) Size() int {
	return r.Area.Size()
}

// Cells returns the member coordinates sorted row-major.
func (r Region[T]) Cells() []grid.Coord {
	return sorted(r.Area)
}

// BoundaryCells returns the boundary coordinates sorted row-major.
func (r Region[T]) BoundaryCells() []grid.Coord {
	return sorted(r.Boundary)
}

// Contains reports whether c is a member.
func (r Region[T]) Contains(c grid.Coord) bool {
	return r.Area.Has(c)
}

func sorted(s mapset.Set[grid.Coord]) []grid.Coord {
	out := make([]grid.Coord, 0, s.Size())
	s.Each(func(c grid.Coord) {
		out = append(out, c)
	})
	slices.SortFunc(out, grid.Compare)
	return out
}
