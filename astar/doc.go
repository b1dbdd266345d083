// Package astar implements the informed grid searches: A* and greedy
// best-first search (GBFS), both as configurations of search.BestFirst
// using the Manhattan heuristic h(n) = |Δrow| + |Δcol| to dst.
//
// A*
//
//	Priority f = g + h. Closed nodes are never reopened. This is correct
//	when h is consistent, which holds while every terrain cost is at least 1
//	(the heuristic's implicit unit). With a cost table containing weights
//	below 1, h can overestimate and A* may return a suboptimal path. The
//	heuristic is deliberately not rescaled; callers needing optimality with
//	sub-unit weights should use dijkstra.UniformCost.
//
// GBFS
//
//	Priority h only. Path cost is never compared: the first parent a node
//	receives is kept permanently and each node enters the fringe once. The
//	result is typically far from optimal on weighted terrain.
//
// Complexity (N = R×C): O(N log N) time, O(N) memory for both.
package astar
