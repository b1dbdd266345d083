package jps

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// ErrWeightedGrid is returned when the passable cells of the grid do not all
// share one cost.
var ErrWeightedGrid = fmt.Errorf("jps: grid has non-uniform terrain costs: %w", search.ErrInvalidArgument)

// JPS returns a shortest path from src to dst on a uniform-cost grid.
func JPS(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...search.Option) (*search.Result, error) {
	q, done, err := search.Prepare(g, costs, src, dst, opts...)
	if err != nil {
		return nil, err
	}
	unit, ok := costs.Uniform(g)
	if !ok {
		return nil, ErrWeightedGrid
	}
	if done != nil {
		return done, nil
	}

	j := &jumper{g: g, dst: dst, unit: unit, forced: make(map[int][]int)}
	tr, err := search.BestFirst(g.Size(), src, dst, search.Strategy{
		Priority:   func(v int, cost float64) float64 { return cost + q.Heuristic(v) },
		Successors: j.successors,
	}, q.Recorder())
	if err != nil {
		return nil, err
	}

	res := tr.Result(dst)
	res.Path = expand(g, res.Path)
	q.Opts.Logger.Debug("jps finished",
		"src", src, "dst", dst,
		"jump_points", len(res.Visited),
		"cached", len(j.forced),
	)

	return res, nil
}

type jumper struct {
	g      *gridgraph.Grid
	dst    int
	unit   float64
	forced map[int][]int // jump points found by side scans of a vertical jump, keyed by the scanning cell
	adj    []neighbor
}

type neighbor struct {
	node   int
	forced bool
}

// successors jumps from n toward every pruned neighbour and every cached
// side-scan result.
func (j *jumper) successors(n, parent int, buf []search.Step) []search.Step {
	j.adj = j.prune(n, parent, j.adj[:0])
	for _, w := range j.forced[n] {
		j.adj = append(j.adj, neighbor{node: w, forced: true})
	}
	for _, w := range j.adj {
		d, ok := j.g.DirectionOf(n, w.node)
		if !ok {
			continue
		}
		if v, found := j.jump(n, d); found {
			buf = append(buf, search.Step{To: v, Cost: j.g.Manhattan(n, v) * j.unit})
		}
	}

	return buf
}

// prune returns the natural and forced neighbours of n when entered from
// parent. Natural neighbours are not checked for walls; jump handles that.
func (j *jumper) prune(n, parent int, out []neighbor) []neighbor {
	if parent < 0 {
		for _, d := range gridgraph.Directions {
			if w, ok := j.g.Neighbor(n, d); ok && !j.g.IsBlocked(w) {
				out = append(out, neighbor{node: w})
			}
		}

		return out
	}

	d, _ := j.g.DirectionOf(parent, n)
	if w, ok := j.g.Neighbor(n, d); ok {
		out = append(out, neighbor{node: w})
	}
	if !d.Horizontal() {
		return out
	}

	behind, ok := j.g.Neighbor(n, d.Opposite())
	if !ok {
		return out
	}
	for _, side := range [2]gridgraph.Direction{gridgraph.Up, gridgraph.Down} {
		wall, ok := j.g.Neighbor(behind, side)
		if !ok || !j.g.IsBlocked(wall) {
			continue
		}
		if w, _ := j.g.Neighbor(n, side); !j.g.IsBlocked(w) {
			out = append(out, neighbor{node: w, forced: true})
		}
	}

	return out
}

// hasForced reports whether v, entered from n, has a forced neighbour.
func (j *jumper) hasForced(v, n int) bool {
	var buf [3]neighbor
	for _, w := range j.prune(v, n, buf[:0]) {
		if w.forced {
			return true
		}
	}

	return false
}

// step moves one cell from n in direction d; false on the edge or a wall.
func (j *jumper) step(n int, d gridgraph.Direction) (int, bool) {
	v, ok := j.g.Neighbor(n, d)
	if !ok || j.g.IsBlocked(v) {
		return -1, false
	}

	return v, true
}

// jump scans from n in direction d and returns the first jump point.
func (j *jumper) jump(n int, d gridgraph.Direction) (int, bool) {
	for {
		v, ok := j.step(n, d)
		if !ok {
			return -1, false
		}
		if v == j.dst || j.hasForced(v, n) {
			return v, true
		}
		if !d.Horizontal() {
			var sideHits []int
			for _, side := range [2]gridgraph.Direction{gridgraph.Right, gridgraph.Left} {
				if w, found := j.jump(v, side); found {
					sideHits = append(sideHits, w)
				}
			}
			if len(sideHits) > 0 {
				j.forced[v] = sideHits
				return v, true
			}
		}
		n = v
	}
}

// expand fills the straight runs between consecutive jump points.
func expand(g *gridgraph.Grid, jumps []int) []int {
	if len(jumps) < 2 {
		return jumps
	}
	path := []int{jumps[0]}
	for i := 1; i < len(jumps); i++ {
		d, _ := g.DirectionOf(jumps[i-1], jumps[i])
		for v := jumps[i-1]; v != jumps[i]; {
			v, _ = g.Neighbor(v, d)
			path = append(path, v)
		}
	}

	return path
}
