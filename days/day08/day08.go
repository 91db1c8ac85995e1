// Package day08 locates antinodes created by pairs of same-frequency
// antennas.
package day08

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const empty = '.'

func parse(input string) (*gridgraph.GridGraph, map[rune][]gridgraph.Point, error) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	antennas := make(map[rune][]gridgraph.Point)
	for y, row := range gg.Cells {
		for x, r := range row {
			if r != empty {
				antennas[r] = append(antennas[r], gridgraph.Point{X: x, Y: y})
			}
		}
	}
	return gg, antennas, nil
}

// count collects, for every ordered antenna pair (a, b), the in-bounds
// points emitted beyond b by emit, and returns how many are distinct.
func count(input string, emit func(gg *gridgraph.GridGraph, a, b gridgraph.Point, mark func(gridgraph.Point))) (int, error) {
	gg, antennas, err := parse(input)
	if err != nil {
		return 0, err
	}
	seen := make(map[gridgraph.Point]struct{})
	mark := func(p gridgraph.Point) { seen[p] = struct{}{} }
	for _, group := range antennas {
		for i, a := range group {
			for j, b := range group {
				if i != j {
					emit(gg, a, b, mark)
				}
			}
		}
	}
	return len(seen), nil
}

// Part1 counts distinct in-map antinodes, each lying beyond one antenna of
// a pair at the pair's own separation.
func Part1(input string) (int, error) {
	return count(input, func(gg *gridgraph.GridGraph, a, b gridgraph.Point, mark func(gridgraph.Point)) {
		d := gridgraph.Point{X: b.X - a.X, Y: b.Y - a.Y}
		if p := b.Add(d); gg.InBounds(p.X, p.Y) {
			mark(p)
		}
	})
}

// Part2 counts distinct in-map antinodes with resonant harmonics: every
// grid point on the line through a pair, at whole multiples of the
// separation, including the antennas themselves.
func Part2(input string) (int, error) {
	return count(input, func(gg *gridgraph.GridGraph, a, b gridgraph.Point, mark func(gridgraph.Point)) {
		d := gridgraph.Point{X: b.X - a.X, Y: b.Y - a.Y}
		for p := b; gg.InBounds(p.X, p.Y); p = p.Add(d) {
			mark(p)
		}
	})
}
