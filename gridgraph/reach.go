package gridgraph

import "fmt"

// StepFunc reports whether a walk may move from cell from to its
// orthogonal neighbor to. Both points are guaranteed in bounds.
type StepFunc func(gg *GridGraph, from, to Point) bool

// Reachable returns every cell reachable from start by repeatedly
// taking steps approved by allow, in BFS order with start first.
// A nil allow permits every in-bounds step.
// Returns ErrOutOfBounds if start lies outside the grid.
//
// Behavior:
//  1. Seed the queue with start and mark it seen.
//  2. Pop u; for each orthogonal neighbor v in bounds and unseen,
//     enqueue v when allow(gg, u, v) holds.
//  3. Stop when the queue is exhausted.
//
// Complexity: O(W·H·4) time, O(W·H) memory for seen flags.
func (gg *GridGraph) Reachable(start Point, allow StepFunc) ([]Point, error) {
	if !gg.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, start.X, start.Y)
	}
	seen := make([]bool, gg.Width*gg.Height)
	seen[gg.index(start.X, start.Y)] = true
	queue := []Point{start}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range gg.NeighborOffsets() {
			v := u.Add(d)
			if !gg.InBounds(v.X, v.Y) {
				continue
			}
			vi := gg.index(v.X, v.Y)
			if seen[vi] || (allow != nil && !allow(gg, u, v)) {
				continue
			}
			seen[vi] = true
			queue = append(queue, v)
		}
	}
	return queue, nil
}
