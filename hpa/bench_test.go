package hpa_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/hpa"
)

func benchTerrain(b *testing.B, n int) *gridgraph.Grid {
	g, err := builder.BuildGrid(n, n, []builder.BuilderOption{builder.WithSeed(17)},
		builder.World(n/8),
		builder.Scatter(gridgraph.Blocked, 0.1),
		builder.Clear(0, 0),
		builder.Clear(n-1, n-1),
	)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}

	return g
}

// BenchmarkNewAbstractGraph measures preprocessing of a 128×128 terrain
// grid with 16-cell clusters.
func BenchmarkNewAbstractGraph(b *testing.B) {
	g := benchTerrain(b, 128)
	costs := gridgraph.DefaultCostTable()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hpa.NewAbstractGraph(g, costs, 16); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch measures queries on a prebuilt graph.
func BenchmarkSearch(b *testing.B) {
	g := benchTerrain(b, 128)
	ag, err := hpa.NewAbstractGraph(g, gridgraph.DefaultCostTable(), 16)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ag.Search(0, g.Size()-1)
	}
}
