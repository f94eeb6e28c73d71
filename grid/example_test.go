// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleAround lists the neighbours of a corner cell that survive the bounds check.
func ExampleAround() {
	g, _ := grid.Parse("ab\ncd", grid.Runes)
	for d, n := range grid.Around(grid.Coord{}) {
		if !g.InBounds(n) {
			continue
		}
		fmt.Printf("%v %v %c\n", d, n, g.At(n))
	}
	// Output:
	// E (0,1) b
	// S (1,0) c
}

// ExampleDirection_Rotate90 walks a full clockwise turn.
func ExampleDirection_Rotate90() {
	d := grid.N
	for i := 0; i < 4; i++ {
		fmt.Print(d, " ")
		d = d.Rotate90(true)
	}
	fmt.Println(d)
	// Output: N E S W N
}
