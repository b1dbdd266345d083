package bfs

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/queue"
	"github.com/katalvlaran/gridpath/search"
)

// walker encapsulates mutable BFS state.
type walker struct {
	q      *search.Query
	rec    *search.Recorder
	fringe *queue.Queue[int]
	parent []int
	nbrs   []int
}

// BFS runs breadth-first search from src to dst on g.
// Returns an error wrapping search.ErrInvalidArgument for malformed input,
// ctx.Err() on cancellation, or an OnVisit hook error.
func BFS(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...search.Option) (*search.Result, error) {
	q, done, err := search.Prepare(g, costs, src, dst, opts...)
	if err != nil || done != nil {
		return done, err
	}

	w := &walker{
		q:      q,
		rec:    q.Recorder(),
		fringe: queue.NewQueue[int](g.Cols * 2),
		parent: search.NewParents(g.Size()),
		nbrs:   make([]int, 0, 4),
	}
	found, err := w.loop()
	if err != nil {
		return nil, err
	}

	res := &search.Result{Path: []int{}, Visited: w.rec.Order(), Ops: w.rec.Ops()}
	if found {
		res.Path = search.PathFromParents(w.parent, dst)
		res.PathWeight = costs.PathCost(g, res.Path)
	}

	return res, nil
}

// enqueue records v as discovered from parent and adds it to the fringe.
func (w *walker) enqueue(v, parent int) error {
	w.parent[v] = parent
	w.fringe.Enqueue(v)
	w.rec.Pushed(v)

	return w.rec.Discover(v)
}

// loop drains the fringe until dst is dequeued, the fringe is empty, or an
// error occurs.
func (w *walker) loop() (bool, error) {
	if err := w.enqueue(w.q.Src, -1); err != nil {
		return false, err
	}
	for !w.fringe.IsEmpty() {
		v, _ := w.fringe.Dequeue()
		if err := w.rec.Popped(v); err != nil {
			return false, err
		}
		if v == w.q.Dst {
			return true, nil
		}

		w.nbrs = w.q.Grid.AppendNeighbors(w.nbrs[:0], v)
		for _, n := range w.nbrs {
			if w.rec.Seen(n) {
				continue
			}
			if err := w.enqueue(n, v); err != nil {
				return false, err
			}
		}
	}

	return false, nil
}
