package memspace_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/memspace"
)

// ExampleFirstBlocking finds the byte that seals off the exit.
func ExampleFirstBlocking() {
	bytes, _ := memspace.ParseBytes("1,0\n1,1\n0,2\n1,2")
	steps, ok, _ := memspace.MinSteps(3, bytes[:2])
	fmt.Println(steps, ok)
	b, i, ok, _ := memspace.FirstBlocking(3, bytes)
	fmt.Printf("%d,%d at #%d %v\n", b.Col, b.Row, i, ok)
	// Output:
	// 4 true
	// 0,2 at #2 true
}
