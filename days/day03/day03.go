// Package day03 scans corrupted memory for multiplication instructions.
package day03

import (
	"regexp"
	"strconv"
)

// instruction matches mul(a,b) with 1–3 digit operands, do() and don't().
var instruction = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// scan sums the products of every enabled mul instruction. When
// conditional is false, do() and don't() are ignored.
func scan(input string, conditional bool) int {
	enabled := true
	total := 0
	for _, m := range instruction.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = enabled && !conditional
		default:
			if !enabled {
				continue
			}
			// operands are 1–3 digits, Atoi cannot fail
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			total += a * b
		}
	}
	return total
}

// Part1 sums every mul(a,b) product.
func Part1(input string) (int, error) { return scan(input, false), nil }

// Part2 sums mul(a,b) products not disabled by a preceding don't().
func Part2(input string) (int, error) { return scan(input, true), nil }
