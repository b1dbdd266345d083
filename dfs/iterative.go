package dfs

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/queue"
	"github.com/katalvlaran/gridpath/search"
)

// Iterative is the legacy stack-popping depth-first search. Neighbours are
// marked when pushed, so parents are fixed by the first node to push them
// rather than by the branch that eventually reaches them. Visited lists
// nodes in pop order, excluding dst.
//
// Deprecated: tracebacks differ from DFS and are not authoritative. Use DFS.
func Iterative(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...search.Option) (*search.Result, error) {
	q, done, err := search.Prepare(g, costs, src, dst, opts...)
	if err != nil || done != nil {
		return done, err
	}

	rec := q.Recorder()
	parent := search.NewParents(g.Size())
	stack := queue.NewStack[int](64)
	explored := make([]int, 0, 64)
	nbrs := make([]int, 0, 4)

	stack.Push(src)
	rec.Pushed(src)
	if err = rec.Discover(src); err != nil {
		return nil, err
	}
	found := false
	for !stack.IsEmpty() {
		v, _ := stack.Pop()
		if err = rec.Popped(v); err != nil {
			return nil, err
		}
		if v == dst {
			found = true
			break
		}
		explored = append(explored, v)

		for _, n := range g.AppendNeighbors(nbrs[:0], v) {
			if rec.Seen(n) {
				continue
			}
			parent[n] = v
			stack.Push(n)
			rec.Pushed(n)
			if err = rec.Discover(n); err != nil {
				return nil, err
			}
		}
	}

	res := &search.Result{Path: []int{}, Visited: explored, Ops: rec.Ops()}
	if found {
		res.Path = search.PathFromParents(parent, dst)
		res.PathWeight = costs.PathCost(g, res.Path)
	}

	return res, nil
}
