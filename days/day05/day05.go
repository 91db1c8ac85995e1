// Package day05 checks print-queue updates against page ordering rules.
//
// A rule X|Y requires page X to be printed before page Y whenever both
// appear in the same update. Rules about absent pages are ignored.
package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/core"
	"github.com/katalvlaran/aoc2024/dfs"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// rule is one X|Y ordering constraint.
type rule struct{ before, after int }

type manual struct {
	rules   []rule
	after   map[int]map[int]bool // after[x][y]: x must precede y
	updates [][]int
}

func parse(input string) (*manual, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	head, tail, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, fmt.Errorf("%w: missing blank line between rules and updates", puzzle.ErrMalformedInput)
	}
	m := &manual{after: make(map[int]map[int]bool)}
	for _, line := range puzzle.Lines(head) {
		a, b, ok := strings.Cut(line, "|")
		if !ok {
			return nil, fmt.Errorf("%w: rule %q", puzzle.ErrMalformedInput, line)
		}
		x, errX := strconv.Atoi(a)
		y, errY := strconv.Atoi(b)
		if err := errors.Join(errX, errY); err != nil {
			return nil, fmt.Errorf("%w: rule %q: %w", puzzle.ErrMalformedInput, line, err)
		}
		m.rules = append(m.rules, rule{x, y})
		if m.after[x] == nil {
			m.after[x] = make(map[int]bool)
		}
		m.after[x][y] = true
	}
	for _, line := range puzzle.Lines(tail) {
		var pages []int
		for _, f := range strings.Split(line, ",") {
			p, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: update %q: %w", puzzle.ErrMalformedInput, line, err)
			}
			pages = append(pages, p)
		}
		m.updates = append(m.updates, pages)
	}
	return m, nil
}

// ordered reports whether no page is preceded by a page it must precede.
func (m *manual) ordered(pages []int) bool {
	for i := range pages {
		for j := i + 1; j < len(pages); j++ {
			if m.after[pages[j]][pages[i]] {
				return false
			}
		}
	}
	return true
}

// reorder sorts pages topologically over the rules between them.
func (m *manual) reorder(pages []int) ([]int, error) {
	g := core.NewGraph(core.WithDirected(true))
	present := make(map[int]bool, len(pages))
	for _, p := range pages {
		present[p] = true
		if err := g.AddVertex(strconv.Itoa(p)); err != nil {
			return nil, err
		}
	}
	for _, r := range m.rules {
		if !present[r.before] || !present[r.after] {
			continue
		}
		if _, err := g.AddEdge(strconv.Itoa(r.before), strconv.Itoa(r.after), 0); err != nil {
			return nil, fmt.Errorf("%w: rule %d|%d: %w", puzzle.ErrMalformedInput, r.before, r.after, err)
		}
	}
	ids, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("%w: update %v: %w", puzzle.ErrMalformedInput, pages, err)
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i], _ = strconv.Atoi(id)
	}
	return out, nil
}

func middle(pages []int) int { return pages[len(pages)/2] }

// Part1 sums the middle page of every correctly ordered update.
func Part1(input string) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, u := range m.updates {
		if m.ordered(u) {
			sum += middle(u)
		}
	}
	return sum, nil
}

// Part2 reorders every incorrectly ordered update and sums their middle
// pages. Rules forming a cycle within an update are malformed input.
func Part2(input string) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, u := range m.updates {
		if m.ordered(u) {
			continue
		}
		fixed, err := m.reorder(u)
		if err != nil {
			return 0, err
		}
		sum += middle(fixed)
	}
	return sum, nil
}
