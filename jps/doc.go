// Package jps implements jump point search on 4-connected grids with
// uniform move costs.
//
// Instead of pushing every neighbour, JPS scans straight lines from a node
// and only pushes "jump points": cells where the optimal path may turn.
//
// Pruning (from parent p into n):
//
//	– no parent:   every passable neighbour.
//	– horizontal:  the natural neighbour ahead, plus the cell above (below) n
//	               when the cell above (below) the one behind n is blocked
//	               and the cell above (below) n is not. Those are forced.
//	– vertical:    the natural neighbour ahead only.
//
// Jumping from n in direction d steps until the step leaves the grid or hits
// a wall (no jump point), reaches dst, or lands on a cell with a forced
// neighbour. Vertical scans also scan right then left from every cell; a
// cell whose side scans find jump points is itself a jump point, and those
// results are cached as its extra successors.
//
// The move cost between jump points is their Manhattan distance times the
// grid's unit cost. Path is expanded cell by cell; Visited lists jump points
// in discovery order.
//
// Weighted grids are rejected with ErrWeightedGrid.
package jps
