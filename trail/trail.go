// Package trail scores hiking trailheads on a topographic map: a trail
// climbs from height 0 to height 9 in unit steps between orthogonal cells.
package trail

import (
	"errors"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/grid"
)

const (
	// Base is the height every trail starts at.
	Base = 0
	// Peak is the height every trail ends at.
	Peak = 9
	// Impassable marks a '.' cell: no trail enters or leaves it.
	Impassable = -1
)

// ParseMap reads one height digit per cell; '.' is Impassable.
func ParseMap(text string) (grid.Grid[int], error) {
	return grid.Parse(text, func(r rune, at grid.Coord) (int, error) {
		if r == '.' {
			return Impassable, nil
		}
		if r < '0' || r > '9' {
			return 0, errors.New("not a height")
		}
		return int(r - '0'), nil
	})
}

// uphill admits a step that gains exactly one unit of height.
func uphill(from, to grid.Cell[int]) bool {
	return from.Value != Impassable && to.Value == from.Value+1
}

func isPeak(c grid.Cell[int]) bool { return c.Value == Peak }

// Trailhead is a Base cell with its measurements.
type Trailhead struct {
	At grid.Coord
	// Score is the number of distinct peaks reachable from At.
	Score int
	// Rating is the number of distinct trails starting at At.
	Rating int
}

// Survey measures every trailhead of g in row-major order.
func Survey(g grid.Grid[int]) ([]Trailhead, error) {
	var out []Trailhead
	for c := range g.Cells() {
		if c.Value != Base {
			continue
		}
		score, err := bfs.Count(g, c.At, uphill, isPeak)
		if err != nil {
			return nil, err
		}
		rating, err := dfs.CountPaths(g, c.At, uphill, isPeak)
		if err != nil {
			return nil, err
		}
		out = append(out, Trailhead{At: c.At, Score: score, Rating: rating})
	}
	return out, nil
}

// Score sums the scores of every trailhead.
func Score(g grid.Grid[int]) (int, error) {
	return sum(g, func(t Trailhead) int { return t.Score })
}

// Rating sums the ratings of every trailhead.
func Rating(g grid.Grid[int]) (int, error) {
	return sum(g, func(t Trailhead) int { return t.Rating })
}

func sum(g grid.Grid[int], field func(Trailhead) int) (int, error) {
	heads, err := Survey(g)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, t := range heads {
		total += field(t)
	}
	return total, nil
}
