package region_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/region"
)

const (
	smallGarden = `
AAAA
BBCD
BBCC
EEEC`

	holesGarden = `
OOOOO
OXOXO
OOOOO
OXOXO
OOOOO`

	largeGarden = `
RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE`

	eGarden = `
EEEEE
EXXXX
EEEEE
EXXXX
EEEEE`

	abGarden = `
AAAAAA
AAABBA
AAABBA
ABBAAA
ABBAAA
AAAAAA`
)

// RegionSuite exercises region extraction and side counting.
type RegionSuite struct {
	suite.Suite
}

func (s *RegionSuite) garden(text string) grid.Grid[rune] {
	g, err := region.ParseGarden(text)
	s.Require().NoError(err)
	return g
}

// TestSmallGarden checks area, perimeter, boundary and sides of every region.
func (s *RegionSuite) TestSmallGarden() {
	regions := region.Regions(s.garden(smallGarden))
	s.Require().Len(regions, 5)

	type metrics struct{ area, perimeter, boundary, sides int }
	want := map[rune]metrics{
		'A': {4, 10, 10, 4},
		'B': {4, 8, 8, 4},
		'C': {4, 10, 8, 8},
		'D': {1, 4, 4, 4},
		'E': {3, 8, 8, 4},
	}
	for _, r := range regions {
		m, ok := want[r.Label]
		s.Require().True(ok, "unexpected label %c", r.Label)
		s.Equal(m.area, r.Size(), "area of %c", r.Label)
		s.Equal(m.perimeter, r.Perimeter, "perimeter of %c", r.Label)
		s.Equal(m.boundary, r.Boundary.Size(), "boundary of %c", r.Label)
		s.Equal(m.sides, region.Sides(r), "sides of %c", r.Label)
	}

	// seeds come out in row-major order
	s.Equal([]rune{'A', 'B', 'C', 'D', 'E'}, []rune{
		regions[0].Label, regions[1].Label, regions[2].Label, regions[3].Label, regions[4].Label,
	})
	s.Equal([]grid.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 3}}, regions[2].Cells())
}

// TestDiagonalPinch: the cell at (1,3) touches C from the south and (2,3) from
// the west, so it counts twice toward the perimeter but once in the boundary.
func (s *RegionSuite) TestDiagonalPinch() {
	regions := region.Regions(s.garden(smallGarden))
	c, ok := region.Find(regions, grid.Coord{Row: 2, Col: 3})
	s.Require().True(ok)
	s.Equal('C', c.Label)
	s.True(c.Boundary.Has(grid.Coord{Row: 1, Col: 3}))
	s.Greater(c.Perimeter, c.Boundary.Size())

	_, ok = region.Find(regions, grid.Coord{Row: 9, Col: 9})
	s.False(ok)
}

// TestPrices checks the fence totals of the known gardens.
func (s *RegionSuite) TestPrices() {
	cases := []struct {
		name        string
		text        string
		price, bulk int
	}{
		{"Small", smallGarden, 140, 80},
		{"Holes", holesGarden, 772, 436},
		{"Large", largeGarden, 1930, 1206},
		{"E", eGarden, 692, 236},
		{"AB", abGarden, 1184, 368},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			regions := region.Regions(s.garden(tc.text))
			s.Equal(tc.price, region.Price(regions))
			s.Equal(tc.bulk, region.BulkPrice(regions))
		})
	}
}

// TestSingleCell is the smallest region: area 1, perimeter 4, 4 sides.
func (s *RegionSuite) TestSingleCell() {
	regions := region.Regions(s.garden("Z"))
	s.Require().Len(regions, 1)
	r := regions[0]
	s.Equal(1, r.Size())
	s.Equal(4, r.Perimeter)
	s.Equal(4, r.Boundary.Size())
	s.Equal(4, region.Sides(r))
}

// TestHoleSides: the O region in the holes garden has 4 outer sides plus 4 per hole.
func (s *RegionSuite) TestHoleSides() {
	regions := region.Regions(s.garden(holesGarden))
	s.Require().Len(regions, 5)
	s.Equal('O', regions[0].Label)
	s.Equal(21, regions[0].Size())
	s.Equal(36, regions[0].Perimeter)
	s.Equal(20, region.Sides(regions[0]))
}

// TestPartition: areas sum to rows×cols and no coordinate is claimed twice.
func (s *RegionSuite) TestPartition() {
	for _, text := range []string{smallGarden, holesGarden, largeGarden, eGarden, abGarden} {
		g := s.garden(text)
		rows, cols := g.Dims()
		owner := map[grid.Coord]int{}
		total := 0
		for i, r := range region.Regions(g) {
			total += r.Size()
			for _, c := range r.Cells() {
				prev, dup := owner[c]
				s.False(dup, "%v in regions %d and %d", c, prev, i)
				owner[c] = i
				s.Equal(r.Label, g.At(c))
			}
		}
		s.Equal(rows*cols, total)
	}
}

// TestOutlineBounds: perimeter ≥ |boundary|, 4 ≤ sides ≤ perimeter.
func (s *RegionSuite) TestOutlineBounds() {
	for _, r := range region.Regions(s.garden(largeGarden)) {
		sides := region.Sides(r)
		s.GreaterOrEqual(r.Perimeter, r.Boundary.Size(), "region %c at %v", r.Label, r.Seed)
		s.LessOrEqual(sides, r.Perimeter, "region %c at %v", r.Label, r.Seed)
		s.GreaterOrEqual(sides, 4, "region %c at %v", r.Label, r.Seed)
		s.Zero(sides%2, "outline of region %c at %v must close", r.Label, r.Seed)
	}
}

// TestIdempotent: two calls on an unmodified grid agree and leave it untouched.
func (s *RegionSuite) TestIdempotent() {
	g := s.garden(largeGarden)
	before := g.Rows()
	first := region.Regions(g)
	second := region.Regions(g)
	s.Require().Len(second, len(first))
	for i := range first {
		s.Equal(first[i].Label, second[i].Label)
		s.Equal(first[i].Seed, second[i].Seed)
		s.Equal(first[i].Perimeter, second[i].Perimeter)
		s.Equal(first[i].Cells(), second[i].Cells())
		s.Equal(first[i].BoundaryCells(), second[i].BoundaryCells())
	}
	s.Equal(before, g.Rows())
}

// TestSidesOrderInvariance picks boundary cells in many random orders.
func (s *RegionSuite) TestSidesOrderInvariance() {
	rng := rand.New(rand.NewSource(7))
	shuffle := func(cells []grid.Coord) {
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	}
	for _, text := range []string{smallGarden, holesGarden, largeGarden, abGarden} {
		for _, r := range region.Regions(s.garden(text)) {
			want := region.Sides(r)
			for trial := 0; trial < 25; trial++ {
				s.Equal(want, region.SidesOrdered(r, shuffle), "region %c at %v", r.Label, r.Seed)
			}
		}
	}
}

// TestSidesRandomGardens cross-checks the side counter against corner counting
// (a closed rectilinear outline has as many sides as corners) on random grids.
func (s *RegionSuite) TestSidesRandomGardens() {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		rows, cols := 3+rng.Intn(8), 3+rng.Intn(8)
		values := make([][]rune, rows)
		for r := range values {
			values[r] = make([]rune, cols)
			for c := range values[r] {
				values[r][c] = rune('A' + rng.Intn(3))
			}
		}
		g, err := grid.New(values)
		s.Require().NoError(err)
		for _, r := range region.Regions(g) {
			s.Equal(corners(r), region.Sides(r), "trial %d region %c at %v", trial, r.Label, r.Seed)
		}
	}
}

// TestSidesInvariantPanic: a boundary cell that does not touch the region is a bug.
func (s *RegionSuite) TestSidesInvariantPanic() {
	r := region.Regions(s.garden("A"))[0]
	r.Boundary.Put(grid.Coord{Row: 5, Col: 5})
	defer func() {
		rec := recover()
		s.Require().NotNil(rec)
		err, ok := rec.(error)
		s.Require().True(ok)
		s.ErrorIs(err, region.ErrInvariant)
	}()
	region.Sides(r)
}

// corners counts outline corners by inspecting every 2×2 window around each member.
func corners[T comparable](r region.Region[T]) int {
	in := func(row, col int) bool { return r.Contains(grid.Coord{Row: row, Col: col}) }
	n := 0
	for _, c := range r.Cells() {
		for _, d := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
			v := in(c.Row+d[0], c.Col)
			h := in(c.Row, c.Col+d[1])
			diag := in(c.Row+d[0], c.Col+d[1])
			if !v && !h { // convex
				n++
			}
			if v && h && !diag { // concave
				n++
			}
		}
	}
	return n
}

func TestRegionSuite(t *testing.T) {
	suite.Run(t, new(RegionSuite))
}

// TestEmptyGrid yields no regions.
func TestEmptyGrid(t *testing.T) {
	var g grid.Grid[int]
	require.Empty(t, region.Regions(g))
}
