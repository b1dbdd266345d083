package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomGrid returns an n×n grid where roughly a quarter of the cells are blocked.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for r := range rows {
		rows[r] = make([]int, n)
		for c := range rows[r] {
			rows[r][c] = 1 + rng.Intn(8)
			if rng.Intn(4) == 0 {
				rows[r][c] = int(gridgraph.Blocked)
			}
		}
	}
	g, err := gridgraph.FromInts(rows)
	if err != nil {
		b.Fatalf("setup FromInts failed: %v", err)
	}

	return g
}

// BenchmarkConnectedComponents measures flood filling a 1000×1000 grid.
// Complexity: O(R×C×4)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkBreach measures a corner-to-corner 0-1 BFS on a 500×500 grid.
func BenchmarkBreach(b *testing.B) {
	g := randomGrid(b, 500)
	dst := g.Size() - 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.Breach(0, dst)
	}
}
