// Package maze solves the reindeer maze: the cheapest way from the start
// pose to any goal, where stepping and turning carry separate costs, and the
// set of every tile lying on some cheapest way.
package maze

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// moves is the fixed successor order of every state.
var moves = [...]Move{Forward, TurnClockwise, TurnCounterClockwise}

// Neighbors returns the successor function of m's state graph under cost:
// a step forward onto an open tile, or a quarter turn either way in place.
func (m *Maze) Neighbors(cost CostFunc) dijkstra.NeighborFunc[State] {
	return func(s State) []dijkstra.Edge[State] {
		out := make([]dijkstra.Edge[State], 0, len(moves))
		for _, mv := range moves {
			n := s.Apply(mv)
			if mv == Forward && !m.Open(n.At) {
				continue
			}
			out = append(out, dijkstra.Edge[State]{To: n, Cost: cost(mv)})
		}
		return out
	}
}

// ShortestPath finds the minimum cost from m's start pose to any goal in any
// facing, and every tile on some path achieving it.
// No path is reported as Route{Reachable: false}; errors are reserved for a
// blocked start and negative costs.
func ShortestPath(m *Maze, cost CostFunc) (Route, error) {
	if !m.Open(m.Start) {
		return Route{}, fmt.Errorf("%w: %v", ErrBlockedStart, m.Start)
	}

	atGoal := func(s State) bool { return m.IsGoal(s.At) }
	res, err := dijkstra.Search(
		State{At: m.Start, Facing: m.Facing},
		m.Neighbors(cost),
		dijkstra.WithGoal(atGoal),
	)
	if err != nil {
		return Route{}, fmt.Errorf("maze: %w", err)
	}

	best, ends, ok := res.Best(atGoal)
	if !ok {
		return Route{}, nil
	}

	cells := mapset.New[grid.Coord]()
	for _, s := range res.Trace(ends...) {
		cells.Put(s.At)
	}
	return Route{
		Reachable: true,
		Cost:      best,
		Cells:     cells,
		Ends:      ends,
	}, nil
}

// Render draws m with every tile of route marked 'O'.
func Render(m *Maze, route Route) string {
	var sb strings.Builder
	rows, cols := m.Tiles.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := grid.Coord{Row: r, Col: c}
			switch {
			case at == m.Start:
				sb.WriteByte('S')
			case m.IsGoal(at):
				sb.WriteByte('E')
			case route.Reachable && route.Cells.Has(at):
				sb.WriteByte('O')
			default:
				sb.WriteString(m.Tiles.At(at).String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
