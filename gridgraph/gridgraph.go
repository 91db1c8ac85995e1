// Package gridgraph provides utilities to treat a 2D grid of runes
// as a graph. It supports:
//
//   - Loading from plain text (Parse) or a [][]rune (NewGridGraph)
//   - Identification of maximal same-symbol regions (Regions)
//   - Filtered reachability from a start cell (Reachable)
//
// Adjacency is always orthogonal: N, E, S, W.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrIllegalSymbol if opts.Symbol rejects a cell.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(cells [][]rune, opts GridOptions) (*GridGraph, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	grid := make([][]rune, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]rune, w)
		copy(grid[y], cells[y])
		if opts.Symbol == nil {
			continue
		}
		for x, r := range grid[y] {
			if !opts.Symbol(r) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrIllegalSymbol, r, x, y)
			}
		}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Cells:           grid,
		neighborOffsets: []Point{North, East, South, West},
	}

	return gg, nil
}

// Parse builds a GridGraph from text with one row per line and one rune
// per cell. Carriage returns and trailing blank lines are ignored.
// Errors are those of NewGridGraph.
func Parse(input string, opts GridOptions) (*GridGraph, error) {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	cells := make([][]rune, len(lines))
	for y, line := range lines {
		cells[y] = []rune(line)
	}

	return NewGridGraph(cells, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// At returns the symbol at p and whether p lies inside the grid.
// Complexity: O(1).
func (gg *GridGraph) At(p Point) (rune, bool) {
	if !gg.InBounds(p.X, p.Y) {
		return 0, false
	}
	return gg.Cells[p.Y][p.X], true
}

// NeighborOffsets returns the precomputed orthogonal neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []Point {
	return gg.neighborOffsets
}

// Find returns every point holding symbol, in row-major order.
// Complexity: O(W×H).
func (gg *GridGraph) Find(symbol rune) []Point {
	var pts []Point
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Cells[y][x] == symbol {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
