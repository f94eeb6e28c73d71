// Package patrol defines the lab map, the guard and the options of the
// obstruction search.
package patrol

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for lab parsing and patrol simulation.
var (
	// ErrNoGuard indicates a map without a guard marker.
	ErrNoGuard = errors.New("patrol: no guard on the map")
	// ErrMultipleGuards indicates more than one guard marker.
	ErrMultipleGuards = errors.New("patrol: multiple guards are not allowed")
	// ErrUnknownTile indicates a rune other than '.', '#', '^', '>', 'v', '<'.
	ErrUnknownTile = errors.New("patrol: unknown tile")
	// ErrBadGuard indicates a guard outside the lab or standing on an obstacle.
	ErrBadGuard = errors.New("patrol: guard must stand on open floor")
	// ErrAlreadyLoops indicates the unmodified lab already traps the guard.
	ErrAlreadyLoops = errors.New("patrol: guard loops without an added obstruction")
	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("patrol: invalid option supplied")
)

// Tile is the closed set of lab cell kinds.
type Tile uint8

const (
	Floor    Tile = iota // open
	Obstacle             // the guard turns right in front of it
)

// Lab is the map plus the guard's initial pose.
type Lab struct {
	Floor  grid.Grid[Tile]
	Guard  grid.Coord
	Facing grid.Direction
}

// WithObstacle returns an independent copy of l with an obstacle at c.
func (l *Lab) WithObstacle(c grid.Coord) *Lab {
	floor := l.Floor.Clone()
	floor.Set(c, Obstacle)
	return &Lab{Floor: floor, Guard: l.Guard, Facing: l.Facing}
}

// Trace is the outcome of a walk.
type Trace struct {
	// Visited holds every cell the guard stood on, the start included.
	Visited mapset.Set[grid.Coord]
	// Steps counts moves and turns until the guard left or repeated a pose.
	Steps int
	// Loops reports that the guard repeated a (cell, facing) pose and will never leave.
	Loops bool
}

// Options configures CountLoopObstructions.
type Options struct {
	// Workers bounds concurrent trials. Default runtime.GOMAXPROCS(0).
	Workers int
	// Logger receives progress at debug level. Default discards everything.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// Option configures CountLoopObstructions via functional arguments.
type Option func(*Options)

// DefaultOptions returns one worker per usable CPU and a silent logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  silent,
	}
}

// WithWorkers bounds the number of concurrent trials; n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes progress messages to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}
