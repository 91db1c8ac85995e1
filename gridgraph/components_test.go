// File: gridgraph/components_test.go
package gridgraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse builds a GridGraph from rows or fails the test.
func mustParse(t testing.TB, rows ...string) *GridGraph {
	t.Helper()
	cells := make([][]rune, len(rows))
	for i, r := range rows {
		cells[i] = []rune(r)
	}
	gg, err := NewGridGraph(cells, DefaultGridOptions())
	require.NoError(t, err)
	return gg
}

// TestRegions_Simple checks symbols, areas and bounding boxes on
//
//	AAAA
//	BBCD
//	BBCC
//	EEEC
func TestRegions_Simple(t *testing.T) {
	gg := mustParse(t, "AAAA", "BBCD", "BBCC", "EEEC")
	regions := gg.Regions()
	require.Len(t, regions, 5)

	wantSymbols := []rune{'A', 'B', 'C', 'D', 'E'}
	wantAreas := []int{4, 4, 4, 1, 3}
	for i, r := range regions {
		assert.Equal(t, wantSymbols[i], r.Symbol, "region %d symbol", i)
		assert.Equal(t, wantAreas[i], r.Area(), "region %d area", i)
	}
	assert.Equal(t, Bounds{MinX: 2, MinY: 1, MaxX: 3, MaxY: 3}, regions[2].Bounds)
	assert.True(t, regions[2].Contains(Point{X: 3, Y: 3}))
	assert.False(t, regions[2].Contains(Point{X: 3, Y: 1}), "D cell inside C bounds")
	assert.False(t, regions[2].Contains(Point{X: 4, Y: 3}), "off-grid point")
}

// TestRegions_SameSymbolApart ensures disjoint same-symbol areas stay
// separate regions, and that diagonal contact does not connect cells.
//
//	OOOOO
//	OXOXO
//	OOOOO
//	OXOXO
//	OOOOO
func TestRegions_SameSymbolApart(t *testing.T) {
	gg := mustParse(t, "OOOOO", "OXOXO", "OOOOO", "OXOXO", "OOOOO")
	regions := gg.Regions()
	require.Len(t, regions, 5)

	var xs int
	for _, r := range regions {
		switch r.Symbol {
		case 'O':
			assert.Equal(t, 21, r.Area())
		case 'X':
			xs++
			assert.Equal(t, 1, r.Area())
		}
	}
	assert.Equal(t, 4, xs)

	diag := mustParse(t, "AB", "BA")
	assert.Len(t, diag.Regions(), 4)
}

// TestRegions_Partition verifies every cell lands in exactly one region
// and that the region areas sum to W×H.
func TestRegions_Partition(t *testing.T) {
	gg := mustParse(t,
		"RRRRIICCFF",
		"RRRRIICCCF",
		"VVRRRCCFFF",
		"VVRCCCJFFF",
		"VVVVCJJCFE",
		"VVIVCCJJEE",
		"VVIIICJJEE",
		"MIIIIIJJEE",
		"MIIISIJEEE",
		"MMMISSJEEE",
	)
	regions := gg.Regions()
	require.Len(t, regions, 11)

	owner := make(map[Point]int)
	total := 0
	for i, r := range regions {
		total += r.Area()
		for _, c := range r.Cells {
			prev, dup := owner[c]
			require.False(t, dup, "cell %v in regions %d and %d", c, prev, i)
			owner[c] = i
			require.Equal(t, r.Symbol, gg.Cells[c.Y][c.X])
			require.True(t, r.Bounds.Contains(c))
		}
	}
	assert.Equal(t, gg.Width*gg.Height, total)
}

// TestRegions_Idempotent runs the extraction twice and compares the
// resulting region sets irrespective of order.
func TestRegions_Idempotent(t *testing.T) {
	gg := mustParse(t, "AAAAAA", "AAABBA", "AAABBA", "ABBAAA", "ABBAAA", "AAAAAA")
	canon := func(rs []Region) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			cells := make([]Point, len(r.Cells))
			copy(cells, r.Cells)
			sort.Slice(cells, func(i, j int) bool {
				if cells[i].Y != cells[j].Y {
					return cells[i].Y < cells[j].Y
				}
				return cells[i].X < cells[j].X
			})
			s := string(r.Symbol)
			for _, c := range cells {
				s += string(rune('0'+c.X)) + string(rune('0'+c.Y))
			}
			out = append(out, s)
		}
		sort.Strings(out)
		return out
	}
	assert.Equal(t, canon(gg.Regions()), canon(gg.Regions()))
}

// TestRegions_SingleCell covers the 1×1 grid.
func TestRegions_SingleCell(t *testing.T) {
	gg := mustParse(t, "Z")
	regions := gg.Regions()
	require.Len(t, regions, 1)
	assert.Equal(t, []Point{{X: 0, Y: 0}}, regions[0].Cells)
	assert.Equal(t, 1, regions[0].Bounds.Width())
	assert.Equal(t, 1, regions[0].Bounds.Height())
}
