// Package antenna finds antinodes on an antenna map: locations exactly in
// line with two antennas of the same frequency.
package antenna

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Parse reads a map with '.' ground and one letter or digit per antenna.
// A '#' is read as an already placed Antinode, so rendered maps parse back.
func Parse(text string) (grid.Grid[Cell], error) {
	return grid.Parse(text, func(r rune, _ grid.Coord) (Cell, error) {
		switch {
		case r == '.':
			return nil, nil
		case r == '#':
			return Antinode{}, nil
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return Antenna{Freq: r}, nil
		default:
			return nil, ErrUnknownTile
		}
	})
}

// Frequencies groups antenna locations by frequency, each group in row-major order.
func Frequencies(g grid.Grid[Cell]) map[rune][]grid.Coord {
	out := make(map[rune][]grid.Coord)
	for c := range g.Cells() {
		if a, ok := c.Value.(Antenna); ok {
			out[a.Freq] = append(out[a.Freq], c.At)
		}
	}
	return out
}

// Antinodes returns every in-bounds antinode location of g under mode.
// Complexity: O(Σ k²·L) for k antennas per frequency and L line length.
func Antinodes(g grid.Grid[Cell], mode Mode) mapset.Set[grid.Coord] {
	nodes := mapset.New[grid.Coord]()
	for _, group := range Frequencies(g) {
		for i, a := range group {
			for _, b := range group[i+1:] {
				// one antinode side lies beyond a against the spacing, the other beyond b along it
				delta := b.Sub(a)
				for _, end := range [...]struct {
					from grid.Coord
					sign int
				}{{a, -1}, {b, 1}} {
					step := delta.Scale(end.sign)
					if mode == Adjacent {
						if t := end.from.Add(step); g.InBounds(t) {
							nodes.Put(t)
						}
						continue
					}
					for t := end.from; g.InBounds(t); t = t.Add(step) {
						nodes.Put(t)
					}
				}
			}
		}
	}
	return nodes
}

// Mark returns a copy of g with an antinode placed on every location in nodes.
func Mark(g grid.Grid[Cell], nodes mapset.Set[grid.Coord]) grid.Grid[Cell] {
	out := g.Clone()
	nodes.Each(func(at grid.Coord) {
		out.Set(at, place(out.At(at)))
	})
	return out
}

// place adds an antinode to c.
func place(c Cell) Cell {
	switch c := c.(type) {
	case nil:
		return Antinode{}
	case Antenna:
		c.Antinode = true
		return c
	case Antinode:
		return c
	default:
		panic(fmt.Sprintf("antenna: unknown cell %T", c))
	}
}

// Count returns the number of cells of g carrying an antinode.
func Count(g grid.Grid[Cell]) int {
	n := 0
	for c := range g.Cells() {
		switch v := c.Value.(type) {
		case Antinode:
			n++
		case Antenna:
			if v.Antinode {
				n++
			}
		}
	}
	return n
}

// Impact places the antinodes of g under mode and counts the affected cells.
func Impact(g grid.Grid[Cell], mode Mode) int {
	return Count(Mark(g, Antinodes(g, mode)))
}

// Render draws g: antennas by frequency, bare antinodes as '#', ground as '.'.
func Render(g grid.Grid[Cell]) string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		for _, c := range row {
			switch v := c.(type) {
			case nil:
				sb.WriteByte('.')
			case Antinode:
				sb.WriteByte('#')
			case Antenna:
				sb.WriteRune(v.Freq)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
