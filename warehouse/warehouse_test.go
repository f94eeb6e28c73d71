package warehouse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/warehouse"
)

const (
	smallSample = `
########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<`

	largeSample = `
##########
#..O..O.O#
#......O.#
#.OO..O.O#
#..O@..O.#
#O#..O...#
#O..O..O.#
#.OO.O.OO#
#....O...#
##########

<vv>^<v^>v>^vv^v>v<>v^v<v<^vv<<<^><<><>>v<vvv<>^v^>^<<<><<v<<<v^vv^v>^
vvv<<^>^v^^><<>>><>^<<><^vv^^<>vvv<>><^^v>^>vv<>v<<<<v<^v>^<^^>>>^<v<v
><>vv>v^v^<>><>>>><^^>vv>v<^^^>>v^v^<^^>v^^>v^<^v>v<>>v^v^<v>v^^<^^vv<
<<v<^>>^^^^>>>v^<>vvv^><v<<<>^^^vv^<vvv>^>v<^^^^v<>^>vvvv><>>v^<<^^^^^
^><^><>>><>^^<<^^v>>><^<v>^<vv>>v>>>^v><>^v><<<<v>>v<v<v>vvv>^<><<>^><
^>><>^v<><^vvv<^^<><v<<<<<><^v<<<><<<^^<v<^^^><^>>^<v^><<<^>>^v<v^v<v^
>^>>^v>vv>^<<^v<>><<><<v<<v><>v<^vv<<<>^^v^>^^>>><<^v>>v^v><^^>>^<>vv^
<><^^>^^^<><vvvvv^v<v<<>^v<v>v<<^><<><<><<<^^<<<^<<>><<><^^^>^^<>^>v<>
^^>vv<^v^v<vv>^<><v<^v>^^^>>>^^vvv^>vvv<>>>^<^>>>>>^<<^v>^vvv<>^<><<v>
v^^>>><<^^<>>^v^<v^vv<>v^<<>^<^v^v><^<<<><<^<v><v<>vv>>v><v^<vv<>v^<<^`

	wideSample = `
#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^`
)

func mustParse(t *testing.T, text string, wide bool) (*warehouse.Warehouse, []grid.Direction) {
	t.Helper()
	w, moves, err := warehouse.Parse(text, wide)
	require.NoError(t, err)
	return w, moves
}

func TestParse(t *testing.T) {
	w, moves := mustParse(t, smallSample, false)
	assert.Equal(t, grid.Coord{Row: 2, Col: 2}, w.Robot)
	assert.Equal(t, warehouse.Tile{Kind: warehouse.Floor}, w.Tiles.At(w.Robot))
	assert.Equal(t, warehouse.Wall, w.Tiles.At(grid.Coord{}).Kind)
	assert.Len(t, moves, 15)
	assert.Equal(t, []grid.Direction{grid.W, grid.N, grid.N, grid.E}, moves[:4])

	_, moves = mustParse(t, largeSample, false)
	assert.Len(t, moves, 700, "line breaks between moves are ignored")
}

func TestParse_Wide(t *testing.T) {
	w, _ := mustParse(t, wideSample, true)
	rows, cols := w.Tiles.Dims()
	assert.Equal(t, 7, rows)
	assert.Equal(t, 14, cols)
	assert.Equal(t, grid.Coord{Row: 3, Col: 10}, w.Robot)

	left, right := w.Tiles.At(grid.Coord{Row: 3, Col: 6}), w.Tiles.At(grid.Coord{Row: 3, Col: 7})
	assert.Equal(t, warehouse.Box, left.Kind)
	assert.Equal(t, left, right, "both halves share one box")
	assert.NotEqual(t, left, w.Tiles.At(grid.Coord{Row: 3, Col: 8}))

	assert.Equal(t, `##############
##......##..##
##..........##
##....[][]@.##
##....[]....##
##..........##
##############
`, w.String())

	// a drawn wide map parses back to the same warehouse
	again, _ := mustParse(t, w.String(), false)
	assert.Equal(t, w.String(), again.String())
	assert.Equal(t, w.GPS(), again.GPS())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"NoRobot", "#..#\n\n<", warehouse.ErrNoRobot},
		{"TwoRobots", "#@@#\n\n<", warehouse.ErrMultipleRobots},
		{"UnknownTile", "#@x#\n\n<", warehouse.ErrUnknownTile},
		{"UnknownMove", "#@.#\n\n<x", warehouse.ErrUnknownMove},
		{"LoneClose", "#@].\n\n<", warehouse.ErrBrokenBox},
		{"LoneOpen", "#@.[\n\n<", warehouse.ErrBrokenBox},
		{"SplitBox", "#@.[\n]..#\n\n<", warehouse.ErrBrokenBox},
		{"Interrupted", "#[.]\n#@.#\n\n<", warehouse.ErrBrokenBox},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := warehouse.Parse(tc.text, false)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_Samples(t *testing.T) {
	cases := []struct {
		name string
		text string
		wide bool
		gps  int
	}{
		{"Small", smallSample, false, 2028},
		{"Large", largeSample, false, 10092},
		{"LargeWide", largeSample, true, 9021},
		{"WideSample", wideSample, true, 618},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, moves := mustParse(t, tc.text, tc.wide)
			w.Run(moves)
			assert.Equal(t, tc.gps, w.GPS())
		})
	}
}

func TestRun_Small(t *testing.T) {
	w, moves := mustParse(t, smallSample, false)
	assert.Equal(t, 10, w.Run(moves), "five moves are blocked")
	assert.Equal(t, `########
#....OO#
##.....#
#.....O#
#.#O@..#
#...O..#
#...O..#
########
`, w.String())
}

func TestRun_WideSample(t *testing.T) {
	w, moves := mustParse(t, wideSample, true)
	w.Run(moves)
	assert.Equal(t, `##############
##...[].##..##
##...@.[]...##
##....[]....##
##..........##
##..........##
##############
`, w.String())
}

// TestMove_Diamond pushes one box that rests on two others, which both rest
// on a fourth: the shared box must move exactly once.
func TestMove_Diamond(t *testing.T) {
	w, moves := mustParse(t, `
########
#......#
#...O@.#
##.OO..#
#...O..#
#.#....#
#......#
#......#
########

<>vv<v<^`, true)
	w.Run(moves)
	assert.Equal(t, `################
##.....[].....##
##....[][]....##
####...[].....##
##......@.....##
##..##........##
##............##
##............##
################
`, w.String())
	assert.Equal(t, 828, w.GPS())
}

// TestMove_AllOrNothing: when one branch of a pushed tree is blocked, no box moves.
func TestMove_AllOrNothing(t *testing.T) {
	const blocked = `##########
##....#.##
##..[][]##
##...[].##
##....@.##
##########
`
	w, _ := mustParse(t, blocked, false)
	assert.False(t, w.Move(grid.N))
	assert.Equal(t, blocked, w.String())
	assert.Equal(t, grid.Coord{Row: 4, Col: 6}, w.Robot)

	w, _ = mustParse(t, strings.Replace(blocked, "##....#.##", "##......##", 1), false)
	assert.True(t, w.Move(grid.N))
	assert.Equal(t, `##########
##..[][]##
##...[].##
##....@.##
##......##
##########
`, w.String())
	assert.Equal(t, 104+106+205, w.GPS())
}

func TestMove_Chain(t *testing.T) {
	w, _ := mustParse(t, "#@OO.#", false)
	assert.True(t, w.Move(grid.E))
	assert.Equal(t, "#.@OO#\n", w.String())
	assert.False(t, w.Move(grid.E), "the chain is against the wall")
	assert.Equal(t, "#.@OO#\n", w.String())
	assert.True(t, w.Move(grid.W))
	assert.Equal(t, "#@.OO#\n", w.String(), "the robot pulls nothing")

	// the map edge blocks like a wall
	w, _ = mustParse(t, "@O", false)
	assert.False(t, w.Move(grid.E))
	assert.False(t, w.Move(grid.W))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "floor", warehouse.Floor.String())
	assert.Equal(t, "wall", warehouse.Wall.String())
	assert.Equal(t, "box", warehouse.Box.String())
}
