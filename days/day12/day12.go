// Package day12 prices the fencing of garden plots; see package garden.
package day12

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/garden"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func price(input string, mode garden.PriceMode) (int, error) {
	total, err := garden.Price(input, mode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	return total, nil
}

// Part1 prices every region by area × perimeter.
func Part1(input string) (int, error) { return price(input, garden.ByPerimeter) }

// Part2 prices every region by area × number of sides.
func Part2(input string) (int, error) { return price(input, garden.BySides) }
