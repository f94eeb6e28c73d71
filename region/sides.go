package region

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/gridpath/grid"
)

// faces is a bitmask of the directions in which a boundary cell touches its region.
type faces uint8

func (f faces) has(d grid.Direction) bool { return f&(1<<d) != 0 }

func (f faces) without(d grid.Direction) faces { return f &^ (1 << d) }

func (f faces) first() grid.Direction { return grid.Direction(bits.TrailingZeros8(uint8(f))) }

// degree is the number of remaining faces.
func (f faces) degree() int { return bits.OnesCount8(uint8(f)) }

// sideCounter consumes boundary faces one straight run at a time.
type sideCounter struct {
	remaining map[grid.Coord]faces
}

// Sides returns the number of straight sides of r's outline.
//
// A boundary cell at a concave corner faces the region twice and must be
// consumed once per side it belongs to; holes inside the region contribute
// their own sides.
func Sides[T comparable](r Region[T]) int {
	return SidesOrdered(r, nil)
}

// SidesOrdered is Sides with a caller-controlled pick order: order, if non-nil,
// may permute the boundary cells in place before they are consumed.
// The result never depends on that order.
func SidesOrdered[T comparable](r Region[T], order func(cells []grid.Coord)) int {
	sc := &sideCounter{remaining: make(map[grid.Coord]faces, r.Boundary.Size())}

	// 1. Degree of every boundary cell = region-facing neighbours
	pick := r.BoundaryCells()
	for _, b := range pick {
		var f faces
		for d, n := range grid.Around(b) {
			if r.Area.Has(n) {
				f |= 1 << d
			}
		}
		if f == 0 {
			panic(fmt.Errorf("%w: boundary cell %v does not touch region %v", ErrInvariant, b, r.Seed))
		}
		sc.remaining[b] = f
	}
	if order != nil {
		order(pick)
	}

	// 2. Each pick opens a new side; the walk closes it
	sides := 0
	for _, b := range pick {
		for {
			f, ok := sc.remaining[b]
			if !ok {
				break
			}
			d := f.first()
			sc.consume(b, d)
			sides++
			sc.walk(b, d, d.Rotate90(true))
			sc.walk(b, d, d.Rotate90(false))
		}
	}
	return sides
}

// walk consumes face d on consecutive boundary cells from b in direction along.
func (sc *sideCounter) walk(b grid.Coord, d, along grid.Direction) {
	step := along.Vector()
	for n := b.Add(step); sc.remaining[n].has(d); n = n.Add(step) {
		sc.consume(n, d)
	}
}

// consume removes face d from b, dropping b once its degree reaches zero.
func (sc *sideCounter) consume(b grid.Coord, d grid.Direction) {
	f, ok := sc.remaining[b]
	if !ok || !f.has(d) {
		panic(fmt.Errorf("%w: boundary cell %v has no remaining %v face", ErrInvariant, b, d))
	}
	f = f.without(d)
	if f.degree() == 0 {
		delete(sc.remaining, b)
		return
	}
	sc.remaining[b] = f
}
