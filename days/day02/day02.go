// Package day02 checks reactor reports for safe level progressions.
package day02

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/puzzle"
)

// safe reports whether levels move strictly in one direction,
// by 1 to 3 per step.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	descending := levels[0] > levels[1]
	for i := 1; i < len(levels); i++ {
		d := levels[i-1] - levels[i]
		if !descending {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// dampened reports whether levels are safe with at most one level removed.
func dampened(levels []int) bool {
	if safe(levels) {
		return true
	}
	scratch := make([]int, 0, len(levels)-1)
	for skip := range levels {
		scratch = append(scratch[:0], levels[:skip]...)
		scratch = append(scratch, levels[skip+1:]...)
		if safe(scratch) {
			return true
		}
	}
	return false
}

func count(input string, ok func([]int) bool) (int, error) {
	n := 0
	for i, line := range puzzle.Lines(input) {
		levels, err := puzzle.Ints(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(levels) == 0 {
			return 0, fmt.Errorf("%w: line %d is empty", puzzle.ErrMalformedInput, i+1)
		}
		if ok(levels) {
			n++
		}
	}
	return n, nil
}

// Part1 counts safe reports.
func Part1(input string) (int, error) { return count(input, safe) }

// Part2 counts reports that are safe after removing at most one level.
func Part2(input string) (int, error) { return count(input, dampened) }
