// Package bfs provides breadth-first searches over a terrain grid:
// single-source BFS and alternating bidirectional BFS.
//
// What
//
//   - BFS explores cells in non-decreasing hop count from src using a FIFO
//     fringe. Parents are fixed when a cell is first discovered and the
//     search stops the moment dst is dequeued, so the path is hop-optimal.
//     Terrain weights do not influence the route; they only price
//     Result.PathWeight.
//   - Bidirectional runs one BFS from src and one from dst, alternating one
//     dequeue per side. It stops when a dequeued cell has already been
//     discovered by the other side and splices the two parent chains at
//     that meeting cell. The touch point is not guaranteed to minimize the
//     total hop count.
//
// Determinism
//
//	Neighbours are enumerated up, right, down, left, so Visited is fully
//	reproducible.
//
// Complexity (N = R×C)
//
//   - Time:   O(N)
//   - Memory: O(N) for the parent table, seen flags and fringe.
//
// Usage
//
//	res, err := bfs.BFS(g, gridgraph.DefaultCostTable(), src, dst,
//	    search.WithContext(ctx),
//	    search.WithOnVisit(func(n int) error { frames = append(frames, n); return nil }),
//	)
//	if err != nil {
//	    // search.ErrInvalidArgument family, ctx.Err(), or a hook error
//	}
//	if !res.Found() {
//	    // dst unreachable; res.Visited holds the whole region of src
//	}
package bfs
