package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/gridgraph"
)

// uphill allows a step only onto a cell exactly one higher.
func uphill(gg *gridgraph.GridGraph, from, to gridgraph.Point) bool {
	return gg.Cells[to.Y][to.X] == gg.Cells[from.Y][from.X]+1
}

func TestReachable_Uphill(t *testing.T) {
	gg, err := gridgraph.Parse("0123\n1234\n8765\n9876", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	got, err := gg.Reachable(gridgraph.Point{X: 0, Y: 0}, uphill)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{X: 0, Y: 0}, got[0], "start comes first")

	var nines int
	for _, p := range got {
		if gg.Cells[p.Y][p.X] == '9' {
			nines++
		}
	}
	assert.Equal(t, 1, nines)
}

func TestReachable_NilAllowsAll(t *testing.T) {
	gg, err := gridgraph.Parse("ab\ncd", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	got, err := gg.Reachable(gridgraph.Point{X: 1, Y: 1}, nil)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestReachable_OutOfBounds(t *testing.T) {
	gg, err := gridgraph.Parse("ab", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	_, err = gg.Reachable(gridgraph.Point{X: 2, Y: 0}, nil)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
