// Package day04 searches a letter grid for XMAS.
package day04

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const word = "XMAS"

// compass holds the eight unit steps, orthogonal and diagonal.
var compass = []gridgraph.Point{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

func parse(input string) (*gridgraph.GridGraph, error) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	return gg, nil
}

// spells reports whether w reads from p in direction d.
func spells(gg *gridgraph.GridGraph, p, d gridgraph.Point, w string) bool {
	for _, want := range w {
		if r, ok := gg.At(p); !ok || r != want {
			return false
		}
		p = p.Add(d)
	}
	return true
}

// Part1 counts occurrences of XMAS in any of the eight directions.
func Part1(input string) (int, error) {
	gg, err := parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range gg.Find(rune(word[0])) {
		for _, d := range compass {
			if spells(gg, p, d, word) {
				n++
			}
		}
	}
	return n, nil
}

// diagonalMAS reports whether the diagonal through centre along d reads
// MAS in either direction.
func diagonalMAS(gg *gridgraph.GridGraph, centre, d gridgraph.Point) bool {
	start := gridgraph.Point{X: centre.X - d.X, Y: centre.Y - d.Y}
	back := gridgraph.Point{X: -d.X, Y: -d.Y}
	end := centre.Add(d)
	return spells(gg, start, d, "MAS") || spells(gg, end, back, "MAS")
}

// Part2 counts X-MAS crosses: an A whose two diagonals both read MAS.
func Part2(input string) (int, error) {
	gg, err := parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, a := range gg.Find('A') {
		if diagonalMAS(gg, a, gridgraph.Point{X: 1, Y: 1}) &&
			diagonalMAS(gg, a, gridgraph.Point{X: 1, Y: -1}) {
			n++
		}
	}
	return n, nil
}
