package astar

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// AStar returns a cheapest path from src to dst using f = g + Manhattan.
// PathWeight is g(dst).
func AStar(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...search.Option) (*search.Result, error) {
	q, done, err := search.Prepare(g, costs, src, dst, opts...)
	if err != nil || done != nil {
		return done, err
	}

	tr, err := search.BestFirst(g.Size(), src, dst, search.Strategy{
		Priority:   func(v int, cost float64) float64 { return cost + q.Heuristic(v) },
		Successors: q.Successors,
	}, q.Recorder())
	if err != nil {
		return nil, err
	}

	return tr.Result(dst), nil
}

// GreedyBestFirst expands the node closest to dst by Manhattan distance,
// keeping each node's first parent.
func GreedyBestFirst(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...search.Option) (*search.Result, error) {
	q, done, err := search.Prepare(g, costs, src, dst, opts...)
	if err != nil || done != nil {
		return done, err
	}

	tr, err := search.BestFirst(g.Size(), src, dst, search.Strategy{
		Priority:        func(v int, _ float64) float64 { return q.Heuristic(v) },
		Successors:      q.Successors,
		KeepFirstParent: true,
	}, q.Recorder())
	if err != nil {
		return nil, err
	}

	return tr.Result(dst), nil
}
