package bfs

import (
	"slices"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/queue"
	"github.com/katalvlaran/gridpath/search"
)

// BidirectionalResult extends search.Result with per-side detail.
// Visited is the forward side's discovery order, so an unreachable dst
// leaves it equal to the region of src. OnVisit hooks fire for both sides.
type BidirectionalResult struct {
	search.Result
	// Forward is the discovery order of the search rooted at src.
	Forward []int `json:"forward"`
	// Backward is the discovery order of the search rooted at dst.
	Backward []int `json:"backward"`
	// Meeting is the cell where the frontiers touched, or -1.
	Meeting int `json:"meeting"`
}

// frontier is one side of the bidirectional search.
type frontier struct {
	fringe *queue.Queue[int]
	parent []int
	rec    *search.Recorder
}

func newFrontier(q *search.Query) *frontier {
	return &frontier{
		fringe: queue.NewQueue[int](q.Grid.Cols * 2),
		parent: search.NewParents(q.Grid.Size()),
		rec:    q.Recorder(),
	}
}

func (f *frontier) enqueue(v, parent int) error {
	f.parent[v] = parent
	f.fringe.Enqueue(v)
	f.rec.Pushed(v)

	return f.rec.Discover(v)
}

// step dequeues one cell. If the other side has already discovered it, the
// cell is returned as the meeting point; otherwise its unseen neighbours are
// enqueued and -1 is returned.
func (f *frontier) step(g *gridgraph.Grid, other *frontier, nbrs []int) (int, error) {
	v, _ := f.fringe.Dequeue()
	if err := f.rec.Popped(v); err != nil {
		return -1, err
	}
	if other.rec.Seen(v) {
		return v, nil
	}
	for _, n := range g.AppendNeighbors(nbrs[:0], v) {
		if f.rec.Seen(n) {
			continue
		}
		if err := f.enqueue(n, v); err != nil {
			return -1, err
		}
	}

	return -1, nil
}

// Bidirectional runs two alternating BFS frontiers from src and dst.
//
// Rounds dequeue once from the src side, then once from the dst side, and
// stop when a dequeued cell was already discovered by the opposite side or
// the forward fringe is empty. Once the backward fringe empties without a
// touch the regions are disjoint, and the forward side keeps draining until
// it has listed the whole src region. A blocked dst never seeds the
// backward side.
func Bidirectional(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...search.Option) (*BidirectionalResult, error) {
	q, done, err := search.Prepare(g, costs, src, dst, opts...)
	if err != nil {
		return nil, err
	}
	if done != nil {
		return &BidirectionalResult{Result: *done, Forward: done.Visited, Backward: []int{}, Meeting: -1}, nil
	}

	fwd, bwd := newFrontier(q), newFrontier(q)
	if err = fwd.enqueue(src, -1); err != nil {
		return nil, err
	}
	if !g.IsBlocked(dst) {
		if err = bwd.enqueue(dst, -1); err != nil {
			return nil, err
		}
	}

	meet := -1
	nbrs := make([]int, 0, 4)
	for meet < 0 && !fwd.fringe.IsEmpty() {
		if meet, err = fwd.step(g, bwd, nbrs); err != nil {
			return nil, err
		}
		if meet >= 0 || bwd.fringe.IsEmpty() {
			continue
		}
		if meet, err = bwd.step(g, fwd, nbrs); err != nil {
			return nil, err
		}
	}

	res := &BidirectionalResult{
		Result: search.Result{
			Path:    []int{},
			Visited: fwd.rec.Order(),
			Ops:     fwd.rec.Ops() + bwd.rec.Ops(),
		},
		Forward:  slices.Clone(fwd.rec.Order()),
		Backward: bwd.rec.Order(),
		Meeting:  meet,
	}
	if meet >= 0 {
		res.Path = splice(fwd.parent, bwd.parent, meet)
		res.PathWeight = costs.PathCost(g, res.Path)
	}

	return res, nil
}

// splice joins the src→meet chain with the meet→dst chain, keeping meet once.
func splice(fwdParent, bwdParent []int, meet int) []int {
	path := search.PathFromParents(fwdParent, meet)
	for cur := bwdParent[meet]; cur >= 0; cur = bwdParent[cur] {
		path = append(path, cur)
	}

	return path
}
