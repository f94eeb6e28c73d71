package region

import "github.com/katalvlaran/gridpath/grid"

// ParseGarden reads a garden map: one plot label per rune.
func ParseGarden(text string) (grid.Grid[rune], error) {
	return grid.Parse(text, grid.Runes)
}

// Price is Σ area×perimeter over regions.
func Price[T comparable](regions []Region[T]) int {
	total := 0
	for _, r := range regions {
		total += r.Size() * r.Perimeter
	}
	return total
}

// BulkPrice is Σ area×sides over regions.
func BulkPrice[T comparable](regions []Region[T]) int {
	total := 0
	for _, r := range regions {
		total += r.Size() * Sides(r)
	}
	return total
}
