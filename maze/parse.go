package maze

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Parse reads a maze drawn with '#' walls, '.' floor, one 'S' start and one
// 'E' end. The reindeer starts facing east.
func Parse(text string) (*Maze, error) {
	var starts, ends []grid.Coord
	tiles, err := grid.Parse(text, func(r rune, at grid.Coord) (Tile, error) {
		switch r {
		case '#':
			return Wall, nil
		case '.':
			return Empty, nil
		case 'S':
			starts = append(starts, at)
			return Empty, nil
		case 'E':
			ends = append(ends, at)
			return Empty, nil
		default:
			return Wall, ErrUnknownTile
		}
	})
	if err != nil {
		return nil, err
	}

	switch {
	case len(starts) == 0 || len(ends) == 0:
		return nil, fmt.Errorf("%w: %d start(s), %d end(s)", ErrMissingMarker, len(starts), len(ends))
	case len(starts) > 1:
		return nil, fmt.Errorf("%w: starts at %v", ErrDuplicateMarker, starts)
	case len(ends) > 1:
		return nil, fmt.Errorf("%w: ends at %v", ErrDuplicateMarker, ends)
	}

	return &Maze{
		Tiles:  tiles,
		Start:  starts[0],
		Facing: grid.E,
		Goals:  ends,
	}, nil
}
