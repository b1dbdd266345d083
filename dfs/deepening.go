package dfs

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/queue"
	"github.com/katalvlaran/gridpath/search"
)

// deepener holds the state shared by all iterations of IterativeDeepening.
type deepener struct {
	q      *search.Query
	rec    *search.Recorder // discoveries across all iterations
	parent []int            // first parent ever assigned
	stack  *queue.Stack[limitFrame]
}

// IterativeDeepening runs depth-limited DFS with limits 0..MaxDepth
// (search.WithMaxDepth; default the grid size) until dst is entered.
//
// The returned path follows the first parent each node received in any
// iteration. Iteration stops early once a limit is reached at which no
// branch was cut off, since deeper limits would repeat it exactly.
func IterativeDeepening(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...search.Option) (*DeepeningResult, error) {
	q, done, err := search.Prepare(g, costs, src, dst, opts...)
	if err != nil {
		return nil, err
	}
	if done != nil {
		return &DeepeningResult{Result: *done, Iterations: [][]int{done.Visited}, Depth: done.Hops()}, nil
	}

	maxDepth := q.Opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = g.Size()
	}
	d := &deepener{
		q:      q,
		rec:    q.Recorder(),
		parent: search.NewParents(g.Size()),
		stack:  queue.NewStack[limitFrame](64),
	}
	if err = d.rec.Discover(src); err != nil {
		return nil, err
	}

	res := &DeepeningResult{Depth: -1}
	for limit := 0; limit <= maxDepth; limit++ {
		order, found, cut, err := d.limited(limit)
		if err != nil {
			return nil, err
		}
		res.Iterations = append(res.Iterations, order)
		if found {
			res.Depth = limit
			break
		}
		if !cut {
			break
		}
		q.Opts.Logger.Debug("iddfs: deepening", "limit", limit+1, "discovered", len(d.rec.Order()))
	}

	res.Visited = d.rec.Order()
	res.Ops = d.rec.Ops()
	res.Path = []int{}
	if res.Depth >= 0 {
		res.Path = search.PathFromParents(d.parent, dst)
		res.PathWeight = costs.PathCost(g, res.Path)
	}

	return res, nil
}

// limited runs one depth-limited pass. It returns the nodes entered in this
// pass, whether dst was entered, and whether any branch was cut by the limit.
func (d *deepener) limited(limit int) (order []int, found, cut bool, err error) {
	g, src, dst := d.q.Grid, d.q.Src, d.q.Dst
	entered := make([]bool, g.Size())
	entered[src] = true
	order = []int{src}
	if limit <= 0 {
		return order, false, len(g.Neighbors(src)) > 0, nil
	}

	d.stack.Push(limitFrame{node: src, limit: limit})
	d.rec.Pushed(src)
	defer func() {
		for !d.stack.IsEmpty() {
			d.stack.Pop()
		}
	}()

	for !d.stack.IsEmpty() {
		top := d.stack.Top()
		if top.next == len(gridgraph.Directions) {
			f, _ := d.stack.Pop()
			if err = d.rec.Popped(f.node); err != nil {
				return nil, false, false, err
			}
			continue
		}
		dir := gridgraph.Directions[top.next]
		top.next++
		w, ok := g.Neighbor(top.node, dir)
		if !ok || g.IsBlocked(w) {
			continue
		}

		if !d.rec.Seen(w) {
			d.parent[w] = top.node
			if err = d.rec.Discover(w); err != nil {
				return nil, false, false, err
			}
		}
		if entered[w] {
			continue
		}
		entered[w] = true
		order = append(order, w)
		if w == dst {
			return order, true, cut, nil
		}
		if top.limit-1 <= 0 {
			cut = true
			continue
		}
		child := limitFrame{node: w, limit: top.limit - 1}
		d.stack.Push(child)
		d.rec.Pushed(w)
	}

	return order, false, cut, nil
}
