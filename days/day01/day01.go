// Package day01 reconciles two lists of location IDs.
package day01

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2024/puzzle"
)

// parse splits the two columns of input.
func parse(input string) (left, right []int, err error) {
	for i, line := range puzzle.Lines(input) {
		nums, err := puzzle.Ints(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(nums) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d has %d fields, want 2", puzzle.ErrMalformedInput, i+1, len(nums))
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	return left, right, nil
}

// Part1 pairs the lists smallest to smallest and sums the distances.
func Part1(input string) (int, error) {
	left, right, err := parse(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += puzzle.AbsDiff(left[i], right[i])
	}
	return total, nil
}

// Part2 sums each left ID multiplied by its occurrences on the right.
func Part2(input string) (int, error) {
	left, right, err := parse(input)
	if err != nil {
		return 0, err
	}
	counts := make(map[int]int, len(right))
	for _, n := range right {
		counts[n]++
	}
	score := 0
	for _, n := range left {
		score += n * counts[n]
	}
	return score, nil
}
