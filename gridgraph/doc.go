// Package gridgraph models a rectangular terrain grid as an implicit
// 4-connected graph: node indices, neighbour enumeration, the cost of
// entering a cell, and the Manhattan heuristic.
//
// What:
//
//   - Grid wraps an immutable R×C matrix of TerrainKind codes. Build it with
//     NewGrid, FromInts or ParseASCII; the input is deep-copied.
//   - Neighbors enumerates passable in-bounds cells in the fixed order
//     up, right, down, left. Every search relies on this order for
//     reproducible Visited sequences.
//   - CostTable gives the cost of entering each passable terrain kind.
//     Blocked is never entered. Validate pre-scans a grid for missing or
//     non-positive weights.
//   - ConnectedComponents and Region report passable connectivity; Breach
//     finds the fewest blocked cells separating two nodes.
//
// Node indices are row*Cols + col.
//
// Complexity:
//
//   - Neighbors, Cost, Manhattan: O(1).
//   - Validate, ConnectedComponents, Region, Breach: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownTerrain: malformed input.
//   - ErrBadWeight: cost table rejects a terrain present in the grid.
//   - ErrOutOfRange: node index or rectangle outside the grid.
//
// All of the above wrap ErrInvalidArgument.
package gridgraph
