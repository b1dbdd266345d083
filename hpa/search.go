package hpa

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Run builds an abstract graph for g and answers one query on it.
func Run(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst, clusterSize int, opts ...search.Option) (*Result, error) {
	ag, err := NewAbstractGraph(g, costs, clusterSize, opts...)
	if err != nil {
		return nil, err
	}

	return ag.Search(src, dst, opts...)
}

// Search answers one query: it inserts src and dst, runs A* over the
// abstract graph and refines the coarse path on the grid. The inserted
// nodes are removed before returning, so the graph is unchanged afterwards.
//
// When src or dst lies in a cluster without nodes, or no abstract path
// exists, Path is empty and Visited is the region reachable from src.
// OnVisit fires for every cell of the refined Visited list.
//
// PathWeight is recomputed from the refined path; Ops = AbstractOps + RefineOps.
func (ag *AbstractGraph) Search(src, dst int, opts ...search.Option) (*Result, error) {
	q, done, err := search.Prepare(ag.grid, ag.costs, src, dst, opts...)
	if err != nil {
		return nil, err
	}
	if done != nil {
		return &Result{Result: *done, AbstractPath: []int{}}, nil
	}

	mark := len(ag.nodes)
	defer ag.truncate(mark)

	ids, abstractOps, err := ag.abstractPath(q)
	if errors.Is(err, ErrEnclosedCluster) {
		q.Opts.Logger.Debug("hpa endpoint in enclosed cluster", "src", src, "dst", dst, "err", err)
		return ag.unreachable(q, abstractOps), nil
	}
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ag.unreachable(q, abstractOps), nil
	}

	cells := make([]int, len(ids))
	for i, id := range ids {
		cells[i] = ag.cell(id)
	}
	res, err := ag.Refine(cells, search.WithContext(q.Opts.Ctx))
	if err != nil {
		return nil, err
	}
	for _, v := range res.Visited {
		if err = q.Opts.OnVisit(v); err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", search.ErrHookAborted, v, err)
		}
	}
	res.AbstractOps = abstractOps
	res.Ops = abstractOps + res.RefineOps

	q.Opts.Logger.Debug("hpa search finished",
		"src", src, "dst", dst,
		"abstract_len", len(cells),
		"abstract_ops", res.AbstractOps,
		"refine_ops", res.RefineOps,
	)

	return res, nil
}

// abstractPath inserts the endpoints and runs A* over node ids. The path is
// empty when dst's node is unreachable.
func (ag *AbstractGraph) abstractPath(q *search.Query) ([]int, int, error) {
	sr, sc := ag.grid.Coordinate(q.Src)
	dr, dc := ag.grid.Coordinate(q.Dst)
	from, err := ag.insert(q.Opts.Ctx, sr, sc)
	if err != nil {
		return nil, 0, err
	}
	to, err := ag.insert(q.Opts.Ctx, dr, dc)
	if err != nil {
		return nil, 0, err
	}

	// Hooks see grid cells, so the abstract recorder carries only the context.
	o, err := search.Apply(search.WithContext(q.Opts.Ctx))
	if err != nil {
		return nil, 0, err
	}
	rec := search.NewRecorder(len(ag.nodes), o)
	tr, err := search.BestFirst(len(ag.nodes), from, to, search.Strategy{
		Priority: func(v int, cost float64) float64 {
			return cost + ag.grid.Manhattan(ag.cell(v), q.Dst)
		},
		Successors: func(v, _ int, buf []search.Step) []search.Step {
			for _, e := range ag.nodes[v].Edges {
				buf = append(buf, search.Step{To: e.To, Cost: e.Weight})
			}
			return buf
		},
	}, rec)
	if err != nil {
		return nil, 0, err
	}

	return tr.PathTo(to), rec.Ops(), nil
}

// unreachable is the empty-path answer; Visited is src's region.
func (ag *AbstractGraph) unreachable(q *search.Query, abstractOps int) *Result {
	visited := ag.grid.Region(q.Src)
	if visited == nil {
		visited = []int{}
	}

	return &Result{
		Result:       search.Result{Path: []int{}, Visited: visited, Ops: abstractOps},
		AbstractPath: []int{},
		AbstractOps:  abstractOps,
	}
}

// Refine expands a coarse path of cells into a 4-connected grid path.
//
// For each consecutive pair: inside one cluster, local A* runs on the
// cluster sub-grid and its path and visited cells are spliced in; across
// clusters the pair is an entrance crossing and both cells are appended.
// Consecutive duplicates are then collapsed. Visited keeps first
// occurrences only. PathWeight is the cost of the refined path.
//
// Consecutive cells must be joined by an edge of the graph, as on a path
// returned by Search.
func (ag *AbstractGraph) Refine(cells []int, opts ...search.Option) (*Result, error) {
	o, err := search.Apply(opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range cells {
		if !ag.grid.Contains(v) {
			return nil, fmt.Errorf("refine cell %d: %w", v, search.ErrOutOfRange)
		}
	}

	var (
		path    []int
		visited []int
		ops     int
	)
	seen := make(map[int]bool)
	see := func(v int) {
		if !seen[v] {
			seen[v] = true
			visited = append(visited, v)
		}
	}

	for i := 1; i < len(cells); i++ {
		a, b := cells[i-1], cells[i]
		ar, ac := ag.grid.Coordinate(a)
		br, bc := ag.grid.Coordinate(b)
		ca, cb := ag.ClusterOf(ar, ac), ag.ClusterOf(br, bc)
		if ca != cb {
			see(a)
			path = append(path, a, b)
			continue
		}

		res, err := ag.local(o.Ctx, ca, a, b)
		if err != nil {
			return nil, err
		}
		cl := ag.clusters[ca]
		for _, v := range res.Path {
			path = append(path, cl.toGlobal(ag.grid, v))
		}
		for _, v := range res.Visited {
			see(cl.toGlobal(ag.grid, v))
		}
		ops += res.Ops
	}

	path = slices.Compact(path)
	if path == nil {
		path = []int{}
	}
	if visited == nil {
		visited = []int{}
	}

	return &Result{
		Result: search.Result{
			Path:       path,
			Visited:    visited,
			Ops:        ops,
			PathWeight: ag.costs.PathCost(ag.grid, path),
		},
		AbstractPath: cells,
		RefineOps:    ops,
	}, nil
}
