package grid

import (
	"errors"
	"fmt"
	"strings"
)

// CellFunc maps one input rune at position at to a typed cell value.
type CellFunc[T any] func(r rune, at Coord) (T, error)

// Parse reads a rune grid, one row per line, and maps every rune through fn.
// Surrounding whitespace on each line is trimmed and blank lines at either end
// are ignored. Errors from fn are wrapped with the offending coordinate.
func Parse[T any](text string, fn CellFunc[T]) (Grid[T], error) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n")), "\n")
	values := make([][]T, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]T, 0, len(line))
		c := 0
		for _, ch := range line {
			v, err := fn(ch, Coord{Row: r, Col: c})
			if err != nil {
				return Grid[T]{}, fmt.Errorf("grid: parse %q at %v: %w", ch, Coord{Row: r, Col: c}, err)
			}
			row = append(row, v)
			c++
		}
		values = append(values, row)
	}

	return New(values)
}

// Runes is a CellFunc that keeps each rune as-is.
func Runes(r rune, _ Coord) (rune, error) {
	return r, nil
}

// Digits is a CellFunc accepting '0'..'9'.
func Digits(r rune, _ Coord) (int, error) {
	if r < '0' || r > '9' {
		return 0, errors.New("not a digit")
	}
	return int(r - '0'), nil
}
