package garden

import "github.com/katalvlaran/aoc2024/gridgraph"

var orthogonal = [4]gridgraph.Point{gridgraph.North, gridgraph.East, gridgraph.South, gridgraph.West}

// Perimeter returns the number of unit edges separating r from cells
// outside it. A neighbor off the grid counts as outside, so a lone cell
// has perimeter 4 and a fully enclosed cell contributes 0.
// Complexity: O(A·4).
func Perimeter(r gridgraph.Region) int {
	perimeter := 0
	for _, c := range r.Cells {
		for _, d := range orthogonal {
			if !r.Contains(c.Add(d)) {
				perimeter++
			}
		}
	}
	return perimeter
}

// runState tracks whether a scan line is currently walking along an
// exposed side of the region.
type runState uint8

const (
	outside runState = iota
	inRun
)

// sideRun is a two-state automaton counting maximal runs of exposed
// cell edges facing one direction along a single scan line.
type sideRun struct {
	state runState
	runs  int
}

// step advances the automaton by one scanned cell. member reports whether
// the cell belongs to the region; exposed whether its edge in the tracked
// direction borders a non-member.
func (s *sideRun) step(member, exposed bool) {
	switch {
	case !member || !exposed:
		s.state = outside
	case s.state == outside:
		s.state = inRun
		s.runs++
	}
}

// reset starts a new scan line without discarding the run count.
func (s *sideRun) reset() { s.state = outside }

// Sides returns the number of maximal straight boundary segments of r.
// This equals the number of sides of the polygon outlining r, including
// the sides of any holes.
//
// Behavior:
//  1. Vertical pass: for every column of the bounding box, scan its rows
//     top to bottom, tracking left- and right-facing runs independently.
//  2. Horizontal pass: for every row, scan its columns left to right,
//     tracking top- and bottom-facing runs.
//  3. Each run opens when a member cell has its tracked edge exposed and
//     no run is in progress; a non-member cell or a covered edge ends it.
//
// Complexity: O(B) where B is the bounding-box cell count.
func Sides(r gridgraph.Region) int {
	b := r.Bounds
	var left, right, top, bottom sideRun

	for x := b.MinX; x <= b.MaxX; x++ {
		left.reset()
		right.reset()
		for y := b.MinY; y <= b.MaxY; y++ {
			p := gridgraph.Point{X: x, Y: y}
			member := r.Contains(p)
			left.step(member, !r.Contains(p.Add(gridgraph.West)))
			right.step(member, !r.Contains(p.Add(gridgraph.East)))
		}
	}
	for y := b.MinY; y <= b.MaxY; y++ {
		top.reset()
		bottom.reset()
		for x := b.MinX; x <= b.MaxX; x++ {
			p := gridgraph.Point{X: x, Y: y}
			member := r.Contains(p)
			top.step(member, !r.Contains(p.Add(gridgraph.North)))
			bottom.step(member, !r.Contains(p.Add(gridgraph.South)))
		}
	}
	return left.runs + right.runs + top.runs + bottom.runs
}
