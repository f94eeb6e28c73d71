package region

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Regions partitions g into maximal 4-connected regions of equal label,
// returned in the row-major order of their seeds. g is not modified.
//
// Time:   O(R×C).
// Memory: O(R×C) for the seen flags and output.
func Regions[T comparable](g grid.Grid[T]) []Region[T] {
	if g.Empty() {
		return nil
	}
	rows, cols := g.Dims()
	seen := grid.Make[bool](rows, cols)

	var out []Region[T]
	for seed := range g.Coords() {
		if seen.At(seed) {
			continue
		}
		r := flood(g, seed, seen)
		out = append(out, r)
	}
	return out
}

// flood grows the region containing seed generation by generation, marking
// members in seen and accumulating perimeter and boundary.
func flood[T comparable](g grid.Grid[T], seed grid.Coord, seen grid.Grid[bool]) Region[T] {
	label := g.At(seed)
	r := Region[T]{
		Label:    label,
		Seed:     seed,
		Area:     mapset.New[grid.Coord](),
		Boundary: mapset.New[grid.Coord](),
	}

	frontier := []grid.Coord{seed}
	seen.Set(seed, true)
	for len(frontier) > 0 {
		var next []grid.Coord
		for _, c := range frontier {
			r.Area.Put(c)
			for _, n := range grid.Around(c) {
				v, ok := g.Lookup(n)
				if !ok || v != label {
					// one perimeter unit per adjacency, one boundary entry per coordinate
					r.Perimeter++
					r.Boundary.Put(n)
					continue
				}
				if seen.At(n) {
					continue
				}
				seen.Set(n, true)
				next = append(next, n)
			}
		}
		frontier = next
	}
	return r
}

// Find returns the region containing c, or false if c is outside every region.
func Find[T comparable](regions []Region[T], c grid.Coord) (Region[T], bool) {
	for _, r := range regions {
		if r.Contains(c) {
			return r, true
		}
	}
	return Region[T]{}, false
}
