// Package antenna defines the cells of an antenna map and the sentinel
// errors of its parser.
package antenna

import (
	"errors"
)

// ErrUnknownTile indicates a rune that is neither '.', '#' nor a letter or digit.
var ErrUnknownTile = errors.New("antenna: unknown tile")

// Cell is the closed set of occupied map cells: an Antenna or a bare
// Antinode. A nil Cell is empty ground.
type Cell interface {
	cellSeal()
}

// Antenna is a transmitter tuned to Freq. Antinode records that an antinode
// also falls on its location.
type Antenna struct {
	Freq     rune
	Antinode bool
}

// Antinode marks a location in line with two same-frequency antennas.
type Antinode struct{}

func (Antenna) cellSeal() {}
func (Antinode) cellSeal() {}

// Mode selects which in-line locations of an antenna pair count as antinodes.
type Mode uint8

const (
	// Adjacent places one antinode beyond each antenna of a pair, at the
	// pair's own spacing: one antenna is twice as far as the other.
	Adjacent Mode = iota
	// Resonant places antinodes at every multiple of the pair's spacing in
	// both directions, the antennas themselves included.
	Resonant
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Adjacent:
		return "adjacent"
	case Resonant:
		return "resonant"
	default:
		return "Mode(?)"
	}
}
