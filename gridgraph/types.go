// Package gridgraph defines core types and options
// for the gridgraph package of github.com/katalvlaran/aoc2024.
package gridgraph

import "unicode"

// Point addresses a cell by column X and row Y.
// Coordinates are signed so that neighbors one step outside the grid
// (e.g. X = -1) are representable without wraparound.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Orthogonal unit steps, in N, E, S, W order.
var (
	North = Point{X: 0, Y: -1}
	East  = Point{X: 1, Y: 0}
	South = Point{X: 0, Y: 1}
	West  = Point{X: -1, Y: 0}
)

// Bounds is an inclusive axis-aligned bounding box.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the number of columns spanned by b.
func (b Bounds) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows spanned by b.
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// extend grows b to cover p.
func (b *Bounds) extend(p Point) {
	b.MinX = min(b.MinX, p.X)
	b.MaxX = max(b.MaxX, p.X)
	b.MinY = min(b.MinY, p.Y)
	b.MaxY = max(b.MaxY, p.Y)
}

// Region is a maximal 4-connected set of cells sharing one Symbol.
// Cells are listed in discovery (BFS) order.
// A Region is a snapshot: it holds no reference to its GridGraph.
type Region struct {
	Symbol rune
	Cells  []Point
	Bounds Bounds
	// mask[(y-MinY)*Bounds.Width()+(x-MinX)] marks membership.
	mask []bool
}

// Area returns the number of cells in the region.
func (r Region) Area() int { return len(r.Cells) }

// Contains reports whether p is a member of the region.
// Points outside the grid are never members.
// Complexity: O(1).
func (r Region) Contains(p Point) bool {
	if !r.Bounds.Contains(p) {
		return false
	}
	return r.mask[(p.Y-r.Bounds.MinY)*r.Bounds.Width()+(p.X-r.Bounds.MinX)]
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Symbol reports whether a rune is a legal cell value.
	// A nil Symbol accepts every rune.
	Symbol func(r rune) bool
}

// DefaultGridOptions returns a GridOptions accepting any printable,
// non-space rune as a cell symbol.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Symbol: func(r rune) bool {
			return unicode.IsPrint(r) && !unicode.IsSpace(r)
		},
	}
}

// GridGraph treats a 2D rune grid as a graph. It is immutable once built.
// Width and Height define dimensions; Cells[y][x] holds the input symbol.
// neighborOffsets is precomputed for adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Cells           [][]rune
	neighborOffsets []Point
}
