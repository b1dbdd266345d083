// Package dijkstra implements uniform-cost search (Dijkstra's algorithm)
// over a terrain grid.
//
// Every move costs the entry cost of the target cell, taken from the
// caller's CostTable. The fringe is ordered by accumulated cost g. A node is
// closed the first time it is popped and never reopened, which is valid
// because all costs are positive. Relaxing a neighbour with a better g
// re-pushes it; the stale entry is skipped when popped (lazy decrease-key).
//
// Complexity:
//
//	– Time:  O(N log N)   where N = R×C
//	– Space: O(N)
//
// Functions:
//
//	– UniformCost(g, costs, src, dst, opts...): cheapest path src→dst.
//	– Distances(g, costs, src, opts...): cheapest cost from src to every cell,
//	  +Inf where unreachable.
//
// Errors (sentinel, via package search):
//
//	– search.ErrNilGrid, search.ErrOutOfRange, gridgraph.ErrBadWeight.
//	– context errors on cancellation.
//
// Example usage:
//
//	res, err := dijkstra.UniformCost(g, gridgraph.DefaultCostTable(), src, dst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cost %.0f over %d cells\n", res.PathWeight, len(res.Path))
package dijkstra
