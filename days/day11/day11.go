// Package day11 counts the stones produced by repeated blinking.
//
// On each blink every stone changes simultaneously:
// 0 becomes 1; a number with an even count of digits splits into its
// left and right halves; anything else is multiplied by 2024.
// Stone order never affects the count, so each stone is expanded
// independently and results are memoized per (stone, blinks left).
package day11

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/puzzle"
)

type key struct {
	stone  int
	blinks int
}

type counter struct {
	memo map[key]int
}

func (c *counter) count(stone, blinks int) int {
	if blinks == 0 {
		return 1
	}
	k := key{stone, blinks}
	if n, ok := c.memo[k]; ok {
		return n
	}
	var n int
	switch d := puzzle.Digits(stone); {
	case stone == 0:
		n = c.count(1, blinks-1)
	case d%2 == 0:
		half := puzzle.Pow10[int](d / 2)
		n = c.count(stone/half, blinks-1) + c.count(stone%half, blinks-1)
	default:
		n = c.count(stone*2024, blinks-1)
	}
	c.memo[k] = n
	return n
}

// Count returns the number of stones after blinks blinks.
func Count(input string, blinks int) (int, error) {
	stones, err := puzzle.Ints(input)
	if err != nil {
		return 0, err
	}
	if len(stones) == 0 {
		return 0, fmt.Errorf("%w: no stones", puzzle.ErrMalformedInput)
	}
	c := &counter{memo: make(map[key]int)}
	total := 0
	for _, s := range stones {
		if s < 0 {
			return 0, fmt.Errorf("%w: negative stone %d", puzzle.ErrMalformedInput, s)
		}
		total += c.count(s, blinks)
	}
	return total, nil
}

// Part1 counts stones after 25 blinks.
func Part1(input string) (int, error) { return Count(input, 25) }

// Part2 counts stones after 75 blinks.
func Part2(input string) (int, error) { return Count(input, 75) }
