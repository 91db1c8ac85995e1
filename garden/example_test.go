package garden_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/garden"
	"github.com/katalvlaran/aoc2024/gridgraph"
)

// ExampleSurvey measures each plot of a small garden and prices the
// fencing both per unit of boundary and per straight side.
func ExampleSurvey() {
	gg, _ := gridgraph.Parse("AAAA\nBBCD\nBBCC\nEEEC", gridgraph.DefaultGridOptions())

	plots := garden.Survey(gg)
	for _, p := range plots {
		fmt.Printf("%c area=%d perimeter=%d sides=%d\n", p.Symbol, p.Area(), p.Perimeter, p.Sides)
	}
	fmt.Println("by perimeter:", garden.TotalPrice(plots, garden.ByPerimeter))
	fmt.Println("by sides:", garden.TotalPrice(plots, garden.BySides))

	// Output:
	// A area=4 perimeter=10 sides=4
	// B area=4 perimeter=8 sides=4
	// C area=4 perimeter=10 sides=8
	// D area=1 perimeter=4 sides=4
	// E area=3 perimeter=8 sides=4
	// by perimeter: 140
	// by sides: 80
}
