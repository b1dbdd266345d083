package dijkstra

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// byCost orders the fringe by accumulated cost alone.
func byCost(_ int, g float64) float64 { return g }

// UniformCost returns the cheapest path from src to dst.
//
// Steps:
//  1. Validate input (search.Prepare).
//  2. Run the best-first driver with priority g over grid neighbours.
//  3. Trace back parents from dst; PathWeight is g(dst).
func UniformCost(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...search.Option) (*search.Result, error) {
	q, done, err := search.Prepare(g, costs, src, dst, opts...)
	if err != nil || done != nil {
		return done, err
	}

	tr, err := search.BestFirst(g.Size(), src, dst, search.Strategy{
		Priority:   byCost,
		Successors: q.Successors,
	}, q.Recorder())
	if err != nil {
		return nil, err
	}

	return tr.Result(dst), nil
}

// Distances returns the cheapest cost from src to every cell of g, with
// +Inf for blocked or unreachable cells. A blocked src yields all +Inf.
func Distances(g *gridgraph.Grid, costs gridgraph.CostTable, src int, opts ...search.Option) ([]float64, error) {
	q, _, err := search.Prepare(g, costs, src, src, opts...)
	if err != nil {
		return nil, err
	}
	if g.IsBlocked(src) {
		dist := make([]float64, g.Size())
		for i := range dist {
			dist[i] = math.Inf(1)
		}
		return dist, nil
	}

	// dst = -1 is never popped, so the sweep covers the whole region.
	tr, err := search.BestFirst(g.Size(), src, -1, search.Strategy{
		Priority:   byCost,
		Successors: q.Successors,
	}, q.Recorder())
	if err != nil {
		return nil, err
	}

	return tr.G, nil
}
