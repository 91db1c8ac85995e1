// Package day13 finds the cheapest way to win claw machine prizes.
//
// Each machine has two buttons moving the claw by fixed offsets; button A
// costs 3 tokens and button B costs 1. Winning means landing the claw
// exactly on the prize, i.e. solving
//
//	a·A.X + b·B.X = P.X
//	a·A.Y + b·B.Y = P.Y
//
// for non-negative integers a, b: the intersection of two lines.
package day13

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const (
	costA = 3
	costB = 1

	// pressLimit bounds each button in Part1.
	pressLimit = 100
	// prizeOffset is added to both prize coordinates in Part2.
	prizeOffset = 10_000_000_000_000
)

var machineRx = regexp.MustCompile(`Button A: X\+(\d+), Y\+(\d+)\s+Button B: X\+(\d+), Y\+(\d+)\s+Prize: X=(\d+), Y=(\d+)`)

type machine struct {
	a, b, prize gridgraph.Point
}

func parse(input string) ([]machine, error) {
	var machines []machine
	for i, block := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		m := machineRx.FindStringSubmatch(block)
		if m == nil {
			return nil, fmt.Errorf("%w: machine %d: unrecognised block %q", puzzle.ErrMalformedInput, i+1, block)
		}
		var v [6]int
		for j := range v {
			n, err := strconv.Atoi(m[j+1])
			if err != nil {
				return nil, fmt.Errorf("%w: machine %d: %w", puzzle.ErrMalformedInput, i+1, err)
			}
			v[j] = n
		}
		if v[0] == 0 || v[1] == 0 || v[2] == 0 || v[3] == 0 {
			return nil, fmt.Errorf("%w: machine %d: button offsets must be positive", puzzle.ErrMalformedInput, i+1)
		}
		machines = append(machines, machine{
			a:     gridgraph.Point{X: v[0], Y: v[1]},
			b:     gridgraph.Point{X: v[2], Y: v[3]},
			prize: gridgraph.Point{X: v[4], Y: v[5]},
		})
	}
	if len(machines) == 0 {
		return nil, fmt.Errorf("%w: no machines", puzzle.ErrMalformedInput)
	}
	return machines, nil
}

// cheapest returns the minimal token cost to win, and false when the
// prize is unreachable. limit > 0 caps the presses of each button.
func (m machine) cheapest(limit int) (int, bool) {
	det := m.a.X*m.b.Y - m.a.Y*m.b.X
	if det == 0 {
		return m.collinear(limit)
	}
	// Cramer's rule
	na := m.prize.X*m.b.Y - m.prize.Y*m.b.X
	nb := m.a.X*m.prize.Y - m.a.Y*m.prize.X
	if na%det != 0 || nb%det != 0 {
		return 0, false
	}
	a, b := na/det, nb/det
	if a < 0 || b < 0 || (limit > 0 && (a > limit || b > limit)) {
		return 0, false
	}
	return costA*a + costB*b, true
}

// collinear handles parallel buttons. The prize must lie on their shared
// line; the solutions then form an arithmetic progression in a along
// which the cost is linear, so the optimum is at one end.
func (m machine) collinear(limit int) (int, bool) {
	if m.a.X*m.prize.Y != m.a.Y*m.prize.X {
		return 0, false
	}
	ax, bx, px := m.a.X, m.b.X, m.prize.X
	if px%gcd(ax, bx) != 0 {
		return 0, false
	}
	step := bx / gcd(ax, bx)
	a0 := -1
	for a := 0; a < step && a*ax <= px; a++ {
		if (px-a*ax)%bx == 0 {
			a0 = a
			break
		}
	}
	if a0 < 0 {
		return 0, false
	}
	lo, hi := 0, px/ax
	if limit > 0 {
		hi = min(hi, limit)
		if need := px - limit*bx; need > 0 {
			lo = (need + ax - 1) / ax
		}
	}
	first := a0
	if lo > a0 {
		first = a0 + (lo-a0+step-1)/step*step
	}
	if hi < a0 {
		return 0, false
	}
	last := a0 + (hi-a0)/step*step
	if first > last {
		return 0, false
	}
	cost := func(a int) int { return costA*a + costB*(px-a*ax)/bx }
	return min(cost(first), cost(last)), true
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func play(input string, offset, limit int) (int, error) {
	machines, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range machines {
		m.prize = m.prize.Add(gridgraph.Point{X: offset, Y: offset})
		if c, ok := m.cheapest(limit); ok {
			total += c
		}
	}
	return total, nil
}

// Part1 sums the cheapest wins with at most 100 presses per button.
func Part1(input string) (int, error) { return play(input, 0, pressLimit) }

// Part2 sums the cheapest wins with prizes moved by 10¹³ on both axes.
func Part2(input string) (int, error) { return play(input, prizeOffset, 0) }
