package dfs

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/queue"
	"github.com/katalvlaran/gridpath/search"
)

// frame is one level of the simulated recursion: the node being explored
// and the next direction to try.
type frame struct {
	node int
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	q      *search.Query
	rec    *search.Recorder
	stack  *queue.Stack[frame]
	parent []int
}

// DFS performs depth-first search from src until dst is discovered or the
// region of src is exhausted.
func DFS(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...search.Option) (*search.Result, error) {
	// 1. Validate input and resolve trivial answers
	q, done, err := search.Prepare(g, costs, src, dst, opts...)
	if err != nil || done != nil {
		return done, err
	}

	// 2. Traverse
	w := &dfsWalker{
		q:      q,
		rec:    q.Recorder(),
		stack:  queue.NewStack[frame](64),
		parent: search.NewParents(g.Size()),
	}
	if err = w.traverse(); err != nil {
		return nil, err
	}

	// 3. Trace back
	res := &search.Result{Path: []int{}, Visited: w.rec.Order()}
	res.Ops = len(res.Visited)
	if w.rec.Seen(dst) {
		res.Path = search.PathFromParents(w.parent, dst)
		res.PathWeight = costs.PathCost(g, res.Path)
	}

	return res, nil
}

// discover marks n with its parent and pushes a fresh frame for it.
func (w *dfsWalker) discover(n, parent int) error {
	w.parent[n] = parent
	w.stack.Push(frame{node: n})
	w.rec.Pushed(n)

	return w.rec.Discover(n)
}

// traverse simulates the recursive walk: each frame tries its directions in
// order and descends into the first unseen passable neighbour.
func (w *dfsWalker) traverse() error {
	if err := w.discover(w.q.Src, -1); err != nil {
		return err
	}
	g := w.q.Grid
	for !w.stack.IsEmpty() {
		// Sibling branches stop once dst is marked.
		if w.rec.Seen(w.q.Dst) {
			return nil
		}
		top := w.stack.Top()
		if top.next == len(gridgraph.Directions) {
			f, _ := w.stack.Pop()
			if err := w.rec.Popped(f.node); err != nil {
				return err
			}
			continue
		}
		d := gridgraph.Directions[top.next]
		top.next++

		n, ok := g.Neighbor(top.node, d)
		if !ok || g.IsBlocked(n) || w.rec.Seen(n) {
			continue
		}
		if err := w.rec.Err(); err != nil {
			return err
		}
		// top is invalidated by the push below.
		if err := w.discover(n, top.node); err != nil {
			return err
		}
	}

	return nil
}
