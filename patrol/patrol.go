// Package patrol simulates a guard who walks straight ahead and turns right
// at every obstacle, and counts the single obstructions that would trap the
// guard in a loop.
package patrol

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
)

// guards maps a marker rune to the guard's facing.
var guards = map[rune]grid.Direction{
	'^': grid.N,
	'>': grid.E,
	'v': grid.S,
	'<': grid.W,
}

// Parse reads a lab with '.' floor, '#' obstacles and exactly one guard
// marker among '^', '>', 'v', '<'.
func Parse(text string) (*Lab, error) {
	var (
		found  []grid.Coord
		facing grid.Direction
	)
	floor, err := grid.Parse(text, func(r rune, at grid.Coord) (Tile, error) {
		switch r {
		case '.':
			return Floor, nil
		case '#':
			return Obstacle, nil
		}
		if d, ok := guards[r]; ok {
			found = append(found, at)
			facing = d
			return Floor, nil
		}
		return Floor, ErrUnknownTile
	})
	if err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, ErrNoGuard
	case 1:
	default:
		return nil, fmt.Errorf("%w: at %v", ErrMultipleGuards, found)
	}
	return &Lab{Floor: floor, Guard: found[0], Facing: facing}, nil
}

// Walk runs the guard until it leaves the lab or repeats a pose.
func Walk(l *Lab) (Trace, error) {
	if t, ok := l.Floor.Lookup(l.Guard); !ok || t != Floor {
		return Trace{}, fmt.Errorf("%w: %v", ErrBadGuard, l.Guard)
	}

	rows, cols := l.Floor.Dims()
	// facings already used on each cell, one bit per direction
	poses := grid.Make[uint8](rows, cols)
	tr := Trace{Visited: mapset.New[grid.Coord]()}

	at, facing := l.Guard, l.Facing
	for {
		bit := uint8(1) << facing
		if poses.At(at)&bit != 0 {
			tr.Loops = true
			return tr, nil
		}
		poses.Set(at, poses.At(at)|bit)
		tr.Visited.Put(at)

		ahead := at.Add(facing.Vector())
		t, inside := l.Floor.Lookup(ahead)
		switch {
		case !inside:
			return tr, nil
		case t == Obstacle:
			facing = facing.Rotate90(true)
		default:
			at = ahead
		}
		tr.Steps++
	}
}

// CountLoopObstructions counts the cells where a single new obstacle traps
// the guard: every cell of the original route except the start is tried on
// its own copy of the lab. Trials share nothing and run concurrently.
func CountLoopObstructions(ctx context.Context, l *Lab, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	base, err := Walk(l)
	if err != nil {
		return 0, err
	}
	if base.Loops {
		return 0, ErrAlreadyLoops
	}

	var candidates []grid.Coord
	base.Visited.Each(func(c grid.Coord) {
		if c != l.Guard {
			candidates = append(candidates, c)
		}
	})

	log := o.Logger.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"workers":    o.Workers,
	})
	log.Debug("searching loop obstructions")
	started := time.Now()

	var loops atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for _, c := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr, err := Walk(l.WithObstacle(c))
			if err != nil {
				return err
			}
			if tr.Loops {
				loops.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	n := int(loops.Load())
	log.WithFields(logrus.Fields{
		"loops":   n,
		"elapsed": time.Since(started),
	}).Debug("loop obstructions found")
	return n, nil
}
