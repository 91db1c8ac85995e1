package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2024/gridgraph"
)

// BenchmarkRegions measures Regions on a random 1000×1000 grid
// drawn from five symbols.
// Complexity: O(W×H×4)
func BenchmarkRegions(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	cells := make([][]rune, n)
	for y := 0; y < n; y++ {
		row := make([]rune, n)
		for x := 0; x < n; x++ {
			row[x] = rune('A' + rng.Intn(5))
		}
		cells[y] = row
	}
	gg, err := gridgraph.NewGridGraph(cells, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Regions()
	}
}
