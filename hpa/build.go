package hpa

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// NewAbstractGraph partitions g into clusterSize×clusterSize clusters and
// builds the abstract graph over their entrances.
//
// Steps:
//  1. Clusters in row-major order, truncated at the right and bottom edges.
//  2. For each cluster, scan the border shared with its right and lower
//     neighbours for maximal runs passable on both sides (entrances).
//  3. Place one node per side at each run's midpoint, reusing a node
//     already on that cell, and join the pair with a unit inter edge.
//  4. Join every pair of nodes in a cluster with an intra edge weighted by
//     the local A* cost on the cluster sub-grid; unreachable pairs get none.
//
// Step 4 dominates: O(K² · S log S) per cluster for K nodes and S cells.
// It checks the options' context before every local run.
func NewAbstractGraph(g *gridgraph.Grid, costs gridgraph.CostTable, clusterSize int, opts ...search.Option) (*AbstractGraph, error) {
	o, err := search.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, search.ErrNilGrid
	}
	if clusterSize <= 0 {
		return nil, fmt.Errorf("cluster size %d: %w", clusterSize, ErrBadClusterSize)
	}
	if err = costs.Validate(g); err != nil {
		return nil, err
	}

	ag := &AbstractGraph{
		grid:        g,
		costs:       costs,
		clusterSize: clusterSize,
		byPos:       make(map[int]int),
	}
	if err = ag.buildClusters(); err != nil {
		return nil, err
	}
	ag.buildEntrances()
	ag.buildInterEdges()
	if err = ag.buildIntraEdges(o.Ctx); err != nil {
		return nil, err
	}

	o.Logger.Debug("hpa abstract graph built",
		"rows", g.Rows, "cols", g.Cols,
		"cluster_size", clusterSize,
		"clusters", len(ag.clusters),
		"entrances", len(ag.entrances),
		"nodes", len(ag.nodes),
	)

	return ag, nil
}

func (ag *AbstractGraph) buildClusters() error {
	g, cs := ag.grid, ag.clusterSize
	ag.cRows = (g.Rows + cs - 1) / cs
	ag.cCols = (g.Cols + cs - 1) / cs
	ag.clusters = make([]Cluster, 0, ag.cRows*ag.cCols)
	ag.subs = make([]*gridgraph.Grid, 0, ag.cRows*ag.cCols)

	for top := 0; top < g.Rows; top += cs {
		bottom := min(top+cs, g.Rows) - 1
		for left := 0; left < g.Cols; left += cs {
			right := min(left+cs, g.Cols) - 1
			c := Cluster{Row: top / cs, Col: left / cs, Top: top, Left: left, Bottom: bottom, Right: right}
			sub, err := g.Sub(top, left, bottom+1, right+1)
			if err != nil {
				return err
			}
			ag.clusters = append(ag.clusters, c)
			ag.subs = append(ag.subs, sub)
		}
	}
	ag.members = make([][]int, len(ag.clusters))

	return nil
}

// buildEntrances visits clusters in row-major order and pairs each with its
// not-yet-visited neighbours, which are always the right and lower ones.
func (ag *AbstractGraph) buildEntrances() {
	for a, c := range ag.clusters {
		if c.Col+1 < ag.cCols {
			ag.scanBorder(a, a+1, gridgraph.Right)
		}
		if c.Row+1 < ag.cRows {
			ag.scanBorder(a, a+ag.cCols, gridgraph.Down)
		}
	}
}

// scanBorder records the entrances on the border of cluster a facing d.
func (ag *AbstractGraph) scanBorder(a, b int, d gridgraph.Direction) {
	g, ca := ag.grid, ag.clusters[a]
	vertical := d == gridgraph.Down

	first, last := ca.Top, ca.Bottom
	if vertical {
		first, last = ca.Left, ca.Right
	}
	open := func(k int) bool {
		inner := g.Index(k, ca.Right)
		if vertical {
			inner = g.Index(ca.Bottom, k)
		}
		outer, _ := g.Neighbor(inner, d)

		return !g.IsBlocked(inner) && !g.IsBlocked(outer)
	}

	for k := first; k <= last; k++ {
		start := k
		for k <= last && open(k) {
			k++
		}
		if k > start {
			ag.entrances = append(ag.entrances, Entrance{A: a, B: b, Start: start, End: k, Vertical: vertical})
		}
	}
}

func (ag *AbstractGraph) buildInterEdges() {
	for _, e := range ag.entrances {
		ca, cb := ag.clusters[e.A], ag.clusters[e.B]
		mid := e.Mid()
		ra, colA, rb, colB := mid, ca.Right, mid, cb.Left
		if e.Vertical {
			ra, colA, rb, colB = ca.Bottom, mid, cb.Top, mid
		}
		ag.connect(ag.nodeOn(ra, colA), ag.nodeOn(rb, colB), 1, true)
	}
}

// nodeOn returns the node on (row, col), creating it if needed.
func (ag *AbstractGraph) nodeOn(row, col int) int {
	if id, ok := ag.byPos[ag.grid.Index(row, col)]; ok {
		return id
	}

	return ag.addNode(row, col)
}

func (ag *AbstractGraph) buildIntraEdges(ctx context.Context) error {
	for c, ids := range ag.members {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := 0; i < len(ids)-1; i++ {
			for j := i + 1; j < len(ids); j++ {
				w, err := ag.distance(ctx, c, ids[i], ids[j])
				if err != nil {
					return err
				}
				if w > 0 {
					ag.connect(ids[i], ids[j], w, false)
				}
			}
		}
	}

	return nil
}

// distance is the local A* cost between two nodes of cluster c, 0 when
// no path exists inside the cluster.
func (ag *AbstractGraph) distance(ctx context.Context, c, a, b int) (float64, error) {
	res, err := ag.local(ctx, c, ag.cell(a), ag.cell(b))
	if err != nil {
		return 0, err
	}

	return res.PathWeight, nil
}

// local runs A* between two global cells of cluster c on its sub-grid.
// The result is in sub-grid indices.
func (ag *AbstractGraph) local(ctx context.Context, c, from, to int) (*search.Result, error) {
	cl := ag.clusters[c]

	return astar.AStar(ag.subs[c], ag.costs, cl.toLocal(ag.grid, from), cl.toLocal(ag.grid, to), search.WithContext(ctx))
}
