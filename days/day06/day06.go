// Package day06 predicts a patrolling guard's route through a lab.
package day06

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const (
	floor    = '.'
	obstacle = '#'
)

// headings in clockwise order; the guard turns right by advancing one.
var headings = [4]gridgraph.Point{gridgraph.North, gridgraph.East, gridgraph.South, gridgraph.West}

// guardHeading maps guard glyphs to their index in headings.
var guardHeading = map[rune]int{'^': 0, '>': 1, 'v': 2, '<': 3}

type lab struct {
	grid    *gridgraph.GridGraph
	start   gridgraph.Point
	heading int
}

func parse(input string) (*lab, error) {
	opts := gridgraph.GridOptions{Symbol: func(r rune) bool {
		_, guard := guardHeading[r]
		return r == floor || r == obstacle || guard
	}}
	gg, err := gridgraph.Parse(input, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	l := &lab{grid: gg}
	found := 0
	for y, row := range gg.Cells {
		for x, r := range row {
			if h, ok := guardHeading[r]; ok {
				l.start, l.heading = gridgraph.Point{X: x, Y: y}, h
				found++
			}
		}
	}
	if found != 1 {
		return nil, fmt.Errorf("%w: found %d guards, want 1", puzzle.ErrMalformedInput, found)
	}
	return l, nil
}

// patrol walks the guard until it leaves the grid or repeats a state.
// extra, when inside the grid, is treated as an additional obstacle.
// It returns the visited cells and whether the guard got stuck in a loop.
func (l *lab) patrol(extra gridgraph.Point) (visited []gridgraph.Point, loops bool) {
	gg := l.grid
	seen := make([]bool, gg.Width*gg.Height*len(headings))
	marked := make([]bool, gg.Width*gg.Height)
	pos, h := l.start, l.heading

	for {
		idx := pos.Y*gg.Width + pos.X
		if !marked[idx] {
			marked[idx] = true
			visited = append(visited, pos)
		}
		state := idx*len(headings) + h
		if seen[state] {
			return visited, true
		}
		seen[state] = true

		next := pos.Add(headings[h])
		r, ok := gg.At(next)
		if !ok {
			return visited, false
		}
		if r == obstacle || next == extra {
			h = (h + 1) % len(headings)
			continue
		}
		pos = next
	}
}

// Part1 counts the distinct cells the guard visits before leaving.
func Part1(input string) (int, error) {
	l, err := parse(input)
	if err != nil {
		return 0, err
	}
	visited, _ := l.patrol(gridgraph.Point{X: -1, Y: -1})
	return len(visited), nil
}

// Part2 counts the cells where one new obstacle would trap the guard
// in a loop. Only cells on the original route can change it, and the
// guard's own starting cell is excluded.
func Part2(input string) (int, error) {
	l, err := parse(input)
	if err != nil {
		return 0, err
	}
	route, _ := l.patrol(gridgraph.Point{X: -1, Y: -1})
	traps := 0
	for _, p := range route {
		if p == l.start {
			continue
		}
		if _, loops := l.patrol(p); loops {
			traps++
		}
	}
	return traps, nil
}

// String renders the lab, mainly for test failure output.
func (l *lab) String() string {
	var sb strings.Builder
	for _, row := range l.grid.Cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
