// Package day10 scores hiking trails on a topographic map.
//
// A hiking trail starts at height 0, ends at height 9 and climbs by
// exactly one at every orthogonal step. Cells marked '.' are impassable.
package day10

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const (
	trailhead = '0'
	summit    = '9'
)

func parse(input string) (*gridgraph.GridGraph, error) {
	opts := gridgraph.GridOptions{Symbol: func(r rune) bool {
		return r == '.' || (r >= '0' && r <= '9')
	}}
	gg, err := gridgraph.Parse(input, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	return gg, nil
}

// climb allows a step onto a cell exactly one unit higher.
func climb(gg *gridgraph.GridGraph, from, to gridgraph.Point) bool {
	a, b := gg.Cells[from.Y][from.X], gg.Cells[to.Y][to.X]
	return a != '.' && b == a+1
}

// Part1 sums, over all trailheads, the number of distinct summits reachable.
func Part1(input string) (int, error) {
	gg, err := parse(input)
	if err != nil {
		return 0, err
	}
	score := 0
	for _, head := range gg.Find(trailhead) {
		reached, err := gg.Reachable(head, climb)
		if err != nil {
			return 0, err
		}
		for _, p := range reached {
			if gg.Cells[p.Y][p.X] == summit {
				score++
			}
		}
	}
	return score, nil
}

// Part2 sums, over all trailheads, the number of distinct hiking trails.
// Trail counts are memoized per cell, filled from the summits downward.
func Part2(input string) (int, error) {
	gg, err := parse(input)
	if err != nil {
		return 0, err
	}
	trails := make([][]int, gg.Height)
	for y := range trails {
		trails[y] = make([]int, gg.Width)
	}
	for h := rune(summit); h >= trailhead; h-- {
		for _, p := range gg.Find(h) {
			if h == summit {
				trails[p.Y][p.X] = 1
				continue
			}
			for _, d := range gg.NeighborOffsets() {
				q := p.Add(d)
				if gg.InBounds(q.X, q.Y) && climb(gg, p, q) {
					trails[p.Y][p.X] += trails[q.Y][q.X]
				}
			}
		}
	}
	rating := 0
	for _, head := range gg.Find(trailhead) {
		rating += trails[head.Y][head.X]
	}
	return rating, nil
}
