// Package maze defines tiles, states, moves and sentinel errors for the
// reindeer maze: a walled grid walked as (location, facing) states.
package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for maze parsing and search.
var (
	// ErrMissingMarker indicates the text has no start 'S' or no end 'E'.
	ErrMissingMarker = errors.New("maze: missing start or end marker")
	// ErrDuplicateMarker indicates more than one 'S' or 'E'.
	ErrDuplicateMarker = errors.New("maze: duplicate start or end marker")
	// ErrUnknownTile indicates a rune other than '#', '.', 'S', 'E'.
	ErrUnknownTile = errors.New("maze: unknown tile")
	// ErrBlockedStart indicates a start coordinate on a wall or outside the grid.
	ErrBlockedStart = errors.New("maze: start is not an open tile")
)

// Tile is the closed set of maze cell kinds.
type Tile uint8

const (
	Empty Tile = iota // walkable
	Wall              // impassable
)

// String returns the map rune for t.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "."
	case Wall:
		return "#"
	default:
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
}

// Maze is a parsed puzzle: tiles plus start pose and goal locations.
type Maze struct {
	Tiles  grid.Grid[Tile]
	Start  grid.Coord
	Facing grid.Direction
	Goals  []grid.Coord
}

// IsGoal reports whether c is one of the goal locations.
func (m *Maze) IsGoal(c grid.Coord) bool {
	for _, g := range m.Goals {
		if g == c {
			return true
		}
	}
	return false
}

// Open reports whether c is inside the maze and not a wall.
func (m *Maze) Open(c grid.Coord) bool {
	t, ok := m.Tiles.Lookup(c)
	return ok && t == Empty
}

// Move is one reindeer action.
type Move uint8

const (
	Forward              Move = iota // one tile in the facing direction
	TurnClockwise                    // rotate 90° in place
	TurnCounterClockwise             // rotate -90° in place
)

// String names the move.
func (m Move) String() string {
	switch m {
	case Forward:
		return "forward"
	case TurnClockwise:
		return "cw"
	case TurnCounterClockwise:
		return "ccw"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// State is a search vertex: where the reindeer stands and where it looks.
type State struct {
	At     grid.Coord
	Facing grid.Direction
}

// Apply returns the state reached by m. Forward does not check walls.
func (s State) Apply(m Move) State {
	switch m {
	case Forward:
		return State{At: s.At.Add(s.Facing.Vector()), Facing: s.Facing}
	case TurnClockwise:
		return State{At: s.At, Facing: s.Facing.Rotate90(true)}
	case TurnCounterClockwise:
		return State{At: s.At, Facing: s.Facing.Rotate90(false)}
	default:
		panic(fmt.Sprintf("maze: unknown move %d", uint8(m)))
	}
}

// String renders s as "(row,col)F".
func (s State) String() string {
	return s.At.String() + s.Facing.String()
}

// CostFunc prices a move. Costs must be non-negative.
type CostFunc func(Move) int

// Costs is the usual flat pricing: every step costs Move, every quarter turn
// costs Turn. Reversing direction is two quarter turns.
type Costs struct {
	Move int `yaml:"move_cost"`
	Turn int `yaml:"turn_cost"`
}

// DefaultCosts returns Move=1, Turn=1000.
func DefaultCosts() Costs {
	return Costs{Move: 1, Turn: 1000}
}

// Func adapts c to a CostFunc.
func (c Costs) Func() CostFunc {
	return func(m Move) int {
		if m == Forward {
			return c.Move
		}
		return c.Turn
	}
}

// Route is the outcome of ShortestPath.
type Route struct {
	// Reachable is false when no goal can be reached; the other fields are then zero.
	Reachable bool
	// Cost is the minimum total cost over all goals and arrival facings.
	Cost int
	// Cells is every location on some minimum-cost path, facing discarded.
	Cells mapset.Set[grid.Coord]
	// Ends lists the goal states attaining Cost.
	Ends []State
}

// Tiles returns the number of cells on optimal paths.
func (r Route) Tiles() int {
	if !r.Reachable {
		return 0
	}
	return r.Cells.Size()
}
