// Package warehouse simulates a robot pushing boxes around a walled
// warehouse. Boxes are one or two cells wide; a push may shove a whole tree
// of boxes, and either all of them move or none do.
package warehouse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// arrows maps a move rune to its direction.
var arrows = map[rune]grid.Direction{
	'^': grid.N,
	'>': grid.E,
	'v': grid.S,
	'<': grid.W,
}

// widen doubles every tile horizontally; the robot keeps the left half.
var widen = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")

// Parse reads a warehouse map, a blank line, then the robot's moves (line
// breaks inside the moves are ignored). With wide set, the map is doubled in
// width first and every box becomes a two-cell '[' ']' box.
//
// The map may already be drawn wide: '[' and ']' parse as the two halves of one box.
func Parse(text string, wide bool) (*Warehouse, []grid.Direction, error) {
	plan, moves := splitSections(text)
	if wide {
		plan = widen.Replace(plan)
	}

	w, err := parseMap(plan)
	if err != nil {
		return nil, nil, err
	}
	dirs, err := parseMoves(moves)
	if err != nil {
		return nil, nil, err
	}
	return w, dirs, nil
}

// splitSections cuts text at its first blank line.
func splitSections(text string) (plan, moves string) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n")), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return strings.Join(lines, "\n"), ""
}

func parseMap(text string) (*Warehouse, error) {
	var (
		robots []grid.Coord
		nextID int
		open   grid.Coord // left half awaiting its ']'
		isOpen bool
	)
	tiles, err := grid.Parse(text, func(r rune, at grid.Coord) (Tile, error) {
		if isOpen && r != ']' {
			return Tile{}, ErrBrokenBox
		}
		switch r {
		case '#':
			return Tile{Kind: Wall}, nil
		case '.':
			return Tile{Kind: Floor}, nil
		case '@':
			robots = append(robots, at)
			return Tile{Kind: Floor}, nil
		case 'O':
			nextID++
			return Tile{Kind: Box, ID: nextID}, nil
		case '[':
			nextID++
			open, isOpen = at, true
			return Tile{Kind: Box, ID: nextID}, nil
		case ']':
			if !isOpen || at != open.Add(grid.E.Vector()) {
				return Tile{}, ErrBrokenBox
			}
			isOpen = false
			return Tile{Kind: Box, ID: nextID}, nil
		default:
			return Tile{}, ErrUnknownTile
		}
	})
	if err != nil {
		return nil, err
	}
	if isOpen {
		return nil, fmt.Errorf("%w: at %v", ErrBrokenBox, open)
	}

	switch len(robots) {
	case 0:
		return nil, ErrNoRobot
	case 1:
	default:
		return nil, fmt.Errorf("%w: at %v", ErrMultipleRobots, robots)
	}
	return &Warehouse{Tiles: tiles, Robot: robots[0]}, nil
}

func parseMoves(text string) ([]grid.Direction, error) {
	var out []grid.Direction
	for i, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		d, ok := arrows[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownMove, r, i)
		}
		out = append(out, d)
	}
	return out, nil
}

// push is one box scheduled to shift by a single cell.
type push struct {
	tile  Tile
	cells []grid.Coord
}

// Move tries to step the robot once toward d, shoving any boxes in the way.
// It reports whether the robot moved; a blocked move leaves w unchanged.
func (w *Warehouse) Move(d grid.Direction) bool {
	pushes, ok := w.plan(d)
	if !ok {
		return false
	}
	w.commit(pushes, d)
	return true
}

// Run applies moves in order and returns how many of them succeeded.
func (w *Warehouse) Run(moves []grid.Direction) int {
	n := 0
	for _, d := range moves {
		if w.Move(d) {
			n++
		}
	}
	return n
}

// plan collects every box the move would shove without touching the grid.
// It fails as soon as any shoved cell would run into a wall or off the map.
func (w *Warehouse) plan(d grid.Direction) ([]push, bool) {
	step := d.Vector()
	var (
		pushes []push
		seen   = mapset.New[int]()
		work   = []grid.Coord{w.Robot.Add(step)}
	)
	for len(work) > 0 {
		at := work[0]
		work = work[1:]

		t, ok := w.Tiles.Lookup(at)
		if !ok || t.Kind == Wall {
			return nil, false
		}
		if t.Kind == Floor || seen.Has(t.ID) {
			continue
		}
		seen.Put(t.ID)
		cells := w.extent(at)
		pushes = append(pushes, push{tile: t, cells: cells})
		for _, c := range cells {
			work = append(work, c.Add(step))
		}
	}
	return pushes, true
}

// commit shifts every planned box by one cell toward d, then the robot.
func (w *Warehouse) commit(pushes []push, d grid.Direction) {
	step := d.Vector()
	// lift everything first so overlapping source and target cells are safe
	for _, p := range pushes {
		for _, c := range p.cells {
			w.Tiles.Set(c, Tile{Kind: Floor})
		}
	}
	for _, p := range pushes {
		for _, c := range p.cells {
			w.Tiles.Set(c.Add(step), p.tile)
		}
	}
	w.Robot = w.Robot.Add(step)
}

// extent returns the cells of the box at at, west to east.
func (w *Warehouse) extent(at grid.Coord) []grid.Coord {
	box := w.Tiles.At(at)
	west, east := grid.W.Vector(), grid.E.Vector()

	start := at
	for {
		t, ok := w.Tiles.Lookup(start.Add(west))
		if !ok || t != box {
			break
		}
		start = start.Add(west)
	}
	var cells []grid.Coord
	for c := start; ; c = c.Add(east) {
		t, ok := w.Tiles.Lookup(c)
		if !ok || t != box {
			break
		}
		cells = append(cells, c)
	}
	return cells
}

// GPS sums 100·row + col of every box's west-most cell.
func (w *Warehouse) GPS() int {
	seen := mapset.New[int]()
	sum := 0
	for c := range w.Tiles.Cells() {
		if c.Value.Kind != Box || seen.Has(c.Value.ID) {
			continue
		}
		seen.Put(c.Value.ID)
		sum += 100*c.At.Row + c.At.Col
	}
	return sum
}

// String draws w: '#' walls, '.' floor, '@' robot, 'O' narrow boxes, '[' ']' wide boxes.
func (w *Warehouse) String() string {
	var sb strings.Builder
	rows, cols := w.Tiles.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := grid.Coord{Row: r, Col: c}
			t := w.Tiles.At(at)
			switch {
			case at == w.Robot:
				sb.WriteByte('@')
			case t.Kind == Wall:
				sb.WriteByte('#')
			case t.Kind == Floor:
				sb.WriteByte('.')
			default:
				sb.WriteByte(w.boxRune(at, t))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (w *Warehouse) boxRune(at grid.Coord, t Tile) byte {
	if l, ok := w.Tiles.Lookup(at.Add(grid.W.Vector())); ok && l == t {
		return ']'
	}
	if r, ok := w.Tiles.Lookup(at.Add(grid.E.Vector())); ok && r == t {
		return '['
	}
	return 'O'
}
