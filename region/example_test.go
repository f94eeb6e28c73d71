package region_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/region"
)

// ExampleRegions lists every plot of a small garden with its measurements.
func ExampleRegions() {
	g, _ := region.ParseGarden(`
AAAA
BBCD
BBCC
EEEC`)
	for _, r := range region.Regions(g) {
		fmt.Printf("%c area=%d perimeter=%d sides=%d\n", r.Label, r.Size(), r.Perimeter, region.Sides(r))
	}
	// Output:
	// A area=4 perimeter=10 sides=4
	// B area=4 perimeter=8 sides=4
	// C area=4 perimeter=10 sides=8
	// D area=1 perimeter=4 sides=4
	// E area=3 perimeter=8 sides=4
}
