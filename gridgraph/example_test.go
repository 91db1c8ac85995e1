// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Regions demonstrates how to split a garden map into
// regions of identical, orthogonally connected plants.
// Scenario:
//
//   - Each letter is a plant type.
//   - Expect five regions, listed by the row-major position of their first cell.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_Regions() {
	gg, _ := gridgraph.Parse("AAAA\nBBCD\nBBCC\nEEEC", gridgraph.DefaultGridOptions())

	for _, r := range gg.Regions() {
		b := r.Bounds
		fmt.Printf("%c area=%d box=(%d,%d)-(%d,%d)\n", r.Symbol, r.Area(), b.MinX, b.MinY, b.MaxX, b.MaxY)
	}

	// Output:
	// A area=4 box=(0,0)-(3,0)
	// B area=4 box=(0,1)-(1,2)
	// C area=4 box=(2,1)-(3,3)
	// D area=1 box=(3,1)-(3,1)
	// E area=3 box=(0,3)-(2,3)
}
