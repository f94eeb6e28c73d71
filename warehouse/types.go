// Package warehouse defines the tiles, errors and state of the box-pushing
// robot's warehouse.
package warehouse

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for warehouse parsing.
var (
	// ErrNoRobot indicates a map without an '@' marker.
	ErrNoRobot = errors.New("warehouse: no robot on the map")
	// ErrMultipleRobots indicates more than one '@' marker.
	ErrMultipleRobots = errors.New("warehouse: multiple robots are not allowed")
	// ErrUnknownTile indicates a map rune other than '#', '.', '@', 'O', '[' or ']'.
	ErrUnknownTile = errors.New("warehouse: unknown tile")
	// ErrBrokenBox indicates a ']' not immediately right of a '['.
	ErrBrokenBox = errors.New("warehouse: unmatched box half")
	// ErrUnknownMove indicates a move rune other than '^', '>', 'v', '<'.
	ErrUnknownMove = errors.New("warehouse: unknown move")
)

// Kind is the closed set of tile kinds.
type Kind uint8

const (
	Floor Kind = iota // empty; the zero Tile
	Wall              // never moves, blocks every push
	Box               // one cell of a box identified by Tile.ID
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Box:
		return "box"
	default:
		return "Kind(?)"
	}
}

// Tile is one warehouse cell. ID is meaningful only when Kind is Box: every
// cell of the same box carries the same ID, so a wide box is two Box tiles.
type Tile struct {
	Kind Kind
	ID   int
}

// Warehouse is the map plus the robot's position. The robot's own cell is Floor.
//
// A Warehouse is mutated by Move; it must not be shared between goroutines.
type Warehouse struct {
	Tiles grid.Grid[Tile]
	Robot grid.Coord
}
