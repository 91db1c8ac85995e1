// Package day07 restores missing operators in calibration equations.
package day07

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/puzzle"
)

type equation struct {
	target   int
	operands []int
}

func parse(input string) ([]equation, error) {
	var eqs []equation
	for i, line := range puzzle.Lines(input) {
		lhs, rhs, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d lacks ':'", puzzle.ErrMalformedInput, i+1)
		}
		target, err := strconv.Atoi(strings.TrimSpace(lhs))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d target %q", puzzle.ErrMalformedInput, i+1, lhs)
		}
		operands, err := puzzle.Ints(rhs)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(operands) == 0 {
			return nil, fmt.Errorf("%w: line %d has no operands", puzzle.ErrMalformedInput, i+1)
		}
		for _, n := range append([]int{target}, operands...) {
			if n < 0 {
				return nil, fmt.Errorf("%w: line %d has negative value %d", puzzle.ErrMalformedInput, i+1, n)
			}
		}
		eqs = append(eqs, equation{target: target, operands: operands})
	}
	return eqs, nil
}

// solvable reports whether some choice of operators, evaluated strictly
// left to right, turns operands into target. It unwinds the equation
// from its last operand: each operator is tried in reverse, and only
// when it could have produced the current target.
func solvable(target int, operands []int, concat bool) bool {
	n := len(operands)
	last := operands[n-1]
	if n == 1 {
		return target == last
	}
	rest := operands[:n-1]
	if target >= last && solvable(target-last, rest, concat) {
		return true
	}
	if last == 0 {
		if target == 0 {
			return true
		}
	} else if target%last == 0 && solvable(target/last, rest, concat) {
		return true
	}
	if concat {
		shift := puzzle.Pow10[int](puzzle.Digits(last))
		if target >= last && (target-last)%shift == 0 && solvable((target-last)/shift, rest, concat) {
			return true
		}
	}
	return false
}

func calibrate(input string, concat bool) (int, error) {
	eqs, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, eq := range eqs {
		if solvable(eq.target, eq.operands, concat) {
			total += eq.target
		}
	}
	return total, nil
}

// Part1 sums the targets reachable with + and *.
func Part1(input string) (int, error) { return calibrate(input, false) }

// Part2 sums the targets reachable with +, * and || (concatenation).
func Part2(input string) (int, error) { return calibrate(input, true) }
