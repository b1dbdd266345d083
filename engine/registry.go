package engine

import (
	"context"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/hpa"
	"github.com/katalvlaran/gridpath/jps"
	"github.com/katalvlaran/gridpath/search"
)

// Registered algorithm names.
const (
	BFS           = "bfs"
	DFS           = "dfs"
	DFSIterative  = "dfs-iterative"
	IDDFS         = "iddfs"
	UCS           = "ucs"
	GBFS          = "gbfs"
	AStar         = "astar"
	Bidirectional = "bidirectional"
	JPS           = "jps"
	HPA           = "hpa"
)

// Descriptor describes a registered algorithm.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Weighted is set when the algorithm minimises terrain cost rather than hops.
	Weighted bool `json:"weighted"`
	// Optimal is set when the returned path is optimal for its cost model.
	Optimal bool `json:"optimal"`
}

var descriptors = []Descriptor{
	{Name: BFS, Description: "breadth-first search", Optimal: true},
	{Name: DFS, Description: "depth-first search"},
	{Name: DFSIterative, Description: "legacy stack-based depth-first search"},
	{Name: IDDFS, Description: "iterative deepening depth-first search"},
	{Name: UCS, Description: "uniform-cost search (Dijkstra)", Weighted: true, Optimal: true},
	{Name: GBFS, Description: "greedy best-first search", Weighted: true},
	{Name: AStar, Description: "A* with the Manhattan heuristic", Weighted: true, Optimal: true},
	{Name: Bidirectional, Description: "bidirectional breadth-first search", Optimal: true},
	{Name: JPS, Description: "jump point search, uniform-cost grids only", Optimal: true},
	{Name: HPA, Description: "hierarchical pathfinding A*", Weighted: true},
}

// Descriptors lists the registered algorithms in a stable order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)

	return out
}

type runner func(ctx context.Context, e *Engine, req Request, opts []search.Option) (*Response, error)

type basicSearch func(*gridgraph.Grid, gridgraph.CostTable, int, int, ...search.Option) (*search.Result, error)

var registry = map[string]runner{
	BFS:           basic(bfs.BFS),
	DFS:           basic(dfs.DFS),
	DFSIterative:  basic(dfs.Iterative), //nolint:staticcheck // kept for comparison
	UCS:           basic(dijkstra.UniformCost),
	GBFS:          basic(astar.GreedyBestFirst),
	AStar:         basic(astar.AStar),
	JPS:           basic(jps.JPS),
	IDDFS:         runDeepening,
	Bidirectional: runBidirectional,
	HPA:           runHPA,
}

func basic(fn basicSearch) runner {
	return func(_ context.Context, _ *Engine, req Request, opts []search.Option) (*Response, error) {
		res, err := fn(req.Grid, req.Costs, req.Src, req.Dst, opts...)
		if err != nil {
			return nil, err
		}

		return &Response{Result: *res}, nil
	}
}

func runDeepening(_ context.Context, _ *Engine, req Request, opts []search.Option) (*Response, error) {
	res, err := dfs.IterativeDeepening(req.Grid, req.Costs, req.Src, req.Dst, opts...)
	if err != nil {
		return nil, err
	}

	return &Response{
		Result:    res.Result,
		Deepening: &DeepeningDetail{Iterations: res.Iterations, Depth: res.Depth},
	}, nil
}

func runBidirectional(_ context.Context, _ *Engine, req Request, opts []search.Option) (*Response, error) {
	res, err := bfs.Bidirectional(req.Grid, req.Costs, req.Src, req.Dst, opts...)
	if err != nil {
		return nil, err
	}

	return &Response{
		Result: res.Result,
		Bidirectional: &BidirectionalDetail{
			Forward:  res.Forward,
			Backward: res.Backward,
			Meeting:  res.Meeting,
		},
	}, nil
}

func runHPA(ctx context.Context, e *Engine, req Request, opts []search.Option) (*Response, error) {
	var resp *Response
	hit, err := e.withGraph(ctx, req.Grid, req.Costs, req.ClusterSize, func(ag *hpa.AbstractGraph) error {
		res, err := ag.Search(req.Src, req.Dst, opts...)
		if err != nil {
			return err
		}
		resp = &Response{
			Result: res.Result,
			HPA: &HPADetail{
				AbstractPath: res.AbstractPath,
				AbstractOps:  res.AbstractOps,
				RefineOps:    res.RefineOps,
				ClusterSize:  req.ClusterSize,
			},
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	resp.HPA.CacheHit = hit

	return resp, nil
}
