package garden

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/gridgraph"
)

// PriceMode selects the fence measure multiplied by area.
type PriceMode int

const (
	// ByPerimeter prices each unit of boundary.
	ByPerimeter PriceMode = iota
	// BySides prices each straight side once (bulk discount).
	BySides
)

// String implements fmt.Stringer.
func (m PriceMode) String() string {
	switch m {
	case ByPerimeter:
		return "perimeter"
	case BySides:
		return "sides"
	default:
		return fmt.Sprintf("PriceMode(%d)", int(m))
	}
}

// Plot is a region together with its fence measurements.
type Plot struct {
	gridgraph.Region
	Perimeter int
	Sides     int
}

// Measure computes the fence measurements of r.
func Measure(r gridgraph.Region) Plot {
	return Plot{Region: r, Perimeter: Perimeter(r), Sides: Sides(r)}
}

// Price returns area × the measure chosen by mode.
func (p Plot) Price(mode PriceMode) int {
	if mode == BySides {
		return p.Area() * p.Sides
	}
	return p.Area() * p.Perimeter
}

// Survey measures every region of gg, in gg.Regions order.
func Survey(gg *gridgraph.GridGraph) []Plot {
	regions := gg.Regions()
	plots := make([]Plot, len(regions))
	for i, r := range regions {
		plots[i] = Measure(r)
	}
	return plots
}

// TotalPrice sums the price of every plot under mode.
func TotalPrice(plots []Plot, mode PriceMode) int {
	total := 0
	for _, p := range plots {
		total += p.Price(mode)
	}
	return total
}

// Price parses a garden map and returns its total fence price under mode.
// Malformed maps yield the gridgraph loader errors.
func Price(input string, mode PriceMode) (int, error) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return 0, fmt.Errorf("garden: %w", err)
	}
	return TotalPrice(Survey(gg), mode), nil
}
