package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// topoSample is an 8×8 topographic map whose trailheads score 36 in total.
const topoSample = `
89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732`

// uphill allows a step only to a neighbour exactly one higher.
func uphill(from, to grid.Cell[int]) bool { return to.Value == from.Value+1 }

// peak selects height-9 cells.
func peak(c grid.Cell[int]) bool { return c.Value == 9 }

// sameLabel allows a step between equal runes.
func sameLabel(from, to grid.Cell[rune]) bool { return from.Value == to.Value }

func mustDigits(t *testing.T, text string) grid.Grid[int] {
	t.Helper()
	g, err := grid.Parse(text, grid.Digits)
	require.NoError(t, err)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	g := mustDigits(t, "012\n345")

	_, err := bfs.Reachable(g, grid.Coord{Row: 2, Col: 0}, uphill)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfBounds)

	_, err = bfs.Reachable(g, grid.Coord{}, uphill, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Count(g, grid.Coord{Row: -1}, uphill, peak)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfBounds)
}

// TestBFS_EmptyGrid returns an empty visited set for a zero grid.
func TestBFS_EmptyGrid(t *testing.T) {
	var g grid.Grid[int]
	res, err := bfs.Reachable(g, grid.Coord{}, uphill)
	require.NoError(t, err)
	assert.Zero(t, res.Len())
}

// TestBFS_SingleCell covers the trivial isolated seed.
func TestBFS_SingleCell(t *testing.T) {
	g := mustDigits(t, "5")
	res, err := bfs.Reachable(g, grid.Coord{}, uphill)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
	assert.True(t, res.Has(grid.Coord{}))
	assert.Equal(t, 1, res.Layers)
}

// TestBFS_Depths checks generation numbers on an uphill ramp.
func TestBFS_Depths(t *testing.T) {
	g := mustDigits(t, "0123\n1234")
	res, err := bfs.Reachable(g, grid.Coord{}, uphill)
	require.NoError(t, err)

	assert.Equal(t, 8, res.Len())
	assert.Equal(t, 0, res.Depth[grid.Coord{Row: 0, Col: 0}])
	assert.Equal(t, 1, res.Depth[grid.Coord{Row: 1, Col: 0}])
	assert.Equal(t, 3, res.Depth[grid.Coord{Row: 0, Col: 3}])
	assert.Equal(t, 4, res.Depth[grid.Coord{Row: 1, Col: 3}])
	assert.Equal(t, 5, res.Layers)
}

// TestBFS_MaxDepth limits expansion to the requested generation.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustDigits(t, "0123456789")
	res, err := bfs.Reachable(g, grid.Coord{}, uphill, bfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Len())
	assert.False(t, res.Has(grid.Coord{Row: 0, Col: 4}))

	res, err = bfs.Reachable(g, grid.Coord{}, uphill, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 10, res.Len())
}

// TestBFS_OnVisitError aborts traversal and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	g := mustDigits(t, "0123")
	stop := errors.New("stop")
	visits := 0
	_, err := bfs.Reachable(g, grid.Coord{}, uphill, bfs.WithOnVisit(func(at grid.Coord, depth int) error {
		visits++
		if depth == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visits)
}

// TestBFS_Cancellation stops at the next visit once the context is done.
func TestBFS_Cancellation(t *testing.T) {
	g := mustDigits(t, "0123")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Reachable(g, grid.Coord{}, uphill, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	visits := 0
	_, err = bfs.Reachable(g, grid.Coord{}, uphill,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(_ grid.Coord, depth int) error {
			visits++
			if depth == 1 {
				cancel()
			}
			return nil
		}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, visits)

	// a nil context is ignored
	res, err := bfs.Reachable(g, grid.Coord{}, uphill, bfs.WithContext(nil)) //nolint:staticcheck
	require.NoError(t, err)
	assert.Equal(t, 4, res.Len())
}

// TestBFS_FloodFill collects one labelled region.
func TestBFS_FloodFill(t *testing.T) {
	g, err := grid.Parse("AAAA\nBBCD\nBBCC\nEEEC", grid.Runes)
	require.NoError(t, err)

	res, err := bfs.Reachable(g, grid.Coord{Row: 1, Col: 2}, sameLabel)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Len())
	for _, c := range []grid.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 3}} {
		assert.True(t, res.Has(c), "region C should contain %v", c)
	}
}

// TestCount_TrailheadScores sums reachable peaks over every height-0 cell.
func TestCount_TrailheadScores(t *testing.T) {
	g := mustDigits(t, topoSample)
	total := 0
	for c := range g.Cells() {
		if c.Value != 0 {
			continue
		}
		n, err := bfs.Count(g, c.At, uphill, peak)
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, 36, total)
}

// TestBFS_FrontierOrderInvariance runs the same search under many random
// generation orders and requires identical visited sets and depths.
func TestBFS_FrontierOrderInvariance(t *testing.T) {
	g := mustDigits(t, topoSample)
	base, err := bfs.Reachable(g, grid.Coord{Row: 6, Col: 0}, func(from, to grid.Cell[int]) bool {
		return to.Value >= from.Value
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	shuffle := func(f []grid.Coord) {
		rng.Shuffle(len(f), func(i, j int) { f[i], f[j] = f[j], f[i] })
	}
	reverse := func(f []grid.Coord) {
		for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
			f[i], f[j] = f[j], f[i]
		}
	}

	for trial := 0; trial < 50; trial++ {
		order := shuffle
		if trial%2 == 1 {
			order = reverse
		}
		got, err := bfs.Reachable(g, grid.Coord{Row: 6, Col: 0}, func(from, to grid.Cell[int]) bool {
			return to.Value >= from.Value
		}, bfs.WithFrontierOrder(order))
		require.NoError(t, err)
		require.Equal(t, base.Len(), got.Len(), "trial %d", trial)
		require.Equal(t, base.Depth, got.Depth, "trial %d", trial)
	}
}
