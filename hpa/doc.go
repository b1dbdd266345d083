// Package hpa implements Hierarchical Pathfinding A* (HPA*) on terrain grids.
//
// Preprocessing splits the grid into square clusters and builds an
// AbstractGraph: one node per side of every entrance (a maximal border run
// passable on both sides), unit-weight inter edges across entrances, and
// intra edges between the nodes of each cluster weighted by the cluster-local
// A* cost. The graph is built once per grid, cost table and cluster size.
//
// A query inserts src and dst into their clusters, searches the abstract
// graph with A* and refines the coarse path cluster by cluster:
//
//	ag, err := hpa.NewAbstractGraph(g, costs, 10)
//	if err != nil {
//	    return err
//	}
//	res, err := ag.Search(src, dst)
//
// Paths are near-optimal: the coarse path is forced through entrance
// midpoints. A cluster with no entrances is unreachable, including the single
// cluster of a grid no larger than the cluster size.
package hpa
