package hpa

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// InsertNode adds a node on (row, col) and connects it to every node of its
// cluster reachable inside the cluster. If a node already sits on that cell
// its id is returned unchanged. A cluster without nodes yields
// ErrEnclosedCluster.
func (ag *AbstractGraph) InsertNode(row, col int, opts ...search.Option) (int, error) {
	o, err := search.Apply(opts...)
	if err != nil {
		return -1, err
	}
	if !ag.grid.InBounds(row, col) {
		return -1, fmt.Errorf("insert (%d,%d): %w", row, col, search.ErrOutOfRange)
	}

	return ag.insert(o.Ctx, row, col)
}

func (ag *AbstractGraph) insert(ctx context.Context, row, col int) (int, error) {
	c := ag.ClusterOf(row, col)
	peers := ag.members[c]
	if len(peers) == 0 {
		return -1, fmt.Errorf("cluster %d at (%d,%d): %w", c, row, col, ErrEnclosedCluster)
	}
	cell := ag.grid.Index(row, col)
	if id, ok := ag.byPos[cell]; ok {
		return id, nil
	}

	weights := make([]float64, len(peers))
	for i, p := range peers {
		res, err := ag.local(ctx, c, cell, ag.cell(p))
		if err != nil {
			return -1, err
		}
		weights[i] = res.PathWeight
	}

	id := ag.addNode(row, col)
	for i, p := range peers {
		if weights[i] > 0 {
			ag.connect(id, p, weights[i], false)
		}
	}

	return id, nil
}

// truncate drops every node with id ≥ mark along with the edges pointing at
// them, undoing insertions made after len(Nodes()) was mark.
func (ag *AbstractGraph) truncate(mark int) {
	for id := len(ag.nodes) - 1; id >= mark; id-- {
		n := ag.nodes[id]
		for _, e := range n.Edges {
			if e.To < mark {
				ag.dropEdgesFrom(e.To, mark)
			}
		}
		ms := ag.members[n.Cluster]
		ag.members[n.Cluster] = ms[:len(ms)-1]
		delete(ag.byPos, ag.grid.Index(n.Row, n.Col))
	}
	ag.nodes = ag.nodes[:mark]
}

func (ag *AbstractGraph) dropEdgesFrom(id, mark int) {
	edges := ag.nodes[id].Edges
	kept := edges[:0]
	for _, e := range edges {
		if e.To < mark {
			kept = append(kept, e)
		}
	}
	ag.nodes[id].Edges = kept
}
