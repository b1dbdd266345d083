package gridgraph

import (
	"container/list"
	"fmt"
)

// Breach finds a route from src to dst that crosses the fewest blocked cells,
// as a diagnostic for queries that report no path. Entering a blocked cell
// costs 1 and any other cell costs 0, so the route always exists.
// Returns the node path (src..dst inclusive) and the number of blocked cells on it.
//
// Behavior:
//  1. Validate src and dst.
//  2. 0-1 BFS from src: zero-cost moves go to the front of the deque,
//     unit-cost moves to the back.
//  3. Stop when dst is popped and rebuild the path from predecessors.
//
// Complexity: O(R·C) time and memory.
func (g *Grid) Breach(src, dst int) (path []int, walls int, err error) {
	if !g.Contains(src) || !g.Contains(dst) {
		return nil, 0, fmt.Errorf("breach %d→%d: %w", src, dst, ErrOutOfRange)
	}
	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	dist[src] = 0
	if g.cells[src] == Blocked {
		dist[src] = 1
	}
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		for _, d := range Directions {
			v, ok := g.Neighbor(u, d)
			if !ok {
				continue
			}
			step := 0
			if g.cells[v] == Blocked {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
