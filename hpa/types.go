package hpa

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for HPA* construction and insertion.
var (
	// ErrBadClusterSize is returned when clusterSize is not positive.
	ErrBadClusterSize = fmt.Errorf("hpa: cluster size must be positive: %w", search.ErrInvalidArgument)

	// ErrEnclosedCluster is returned by InsertNode when the target cluster
	// has no abstract nodes, i.e. no entrance connects it to its neighbours.
	ErrEnclosedCluster = errors.New("hpa: cluster has no abstract nodes")
)

// Cluster is one rectangular partition of the grid. Bounds are absolute and
// inclusive; clusters on the right and bottom edges may be smaller than the
// cluster size.
type Cluster struct {
	Row, Col      int // position in the cluster lattice
	Top, Left     int
	Bottom, Right int
}

// Rows returns the cluster height in cells.
func (c Cluster) Rows() int { return c.Bottom - c.Top + 1 }

// Cols returns the cluster width in cells.
func (c Cluster) Cols() int { return c.Right - c.Left + 1 }

// toLocal maps a global cell of g into the cluster's sub-grid.
func (c Cluster) toLocal(g *gridgraph.Grid, cell int) int {
	r, col := g.Coordinate(cell)

	return (r-c.Top)*c.Cols() + (col - c.Left)
}

// toGlobal maps a sub-grid cell back into g.
func (c Cluster) toGlobal(g *gridgraph.Grid, local int) int {
	w := c.Cols()

	return g.Index(c.Top+local/w, c.Left+local%w)
}

// Entrance is a maximal run of border cells between clusters A and B that
// is passable on both sides. Start and End (exclusive) index columns when
// Vertical is set (B lies below A) and rows otherwise (B lies right of A).
type Entrance struct {
	A, B       int
	Start, End int
	Vertical   bool
}

// Mid returns the run's midpoint along the border.
func (e Entrance) Mid() int { return e.Start + (e.End-e.Start)/2 }

// Edge connects two abstract nodes. Inter edges cross an entrance and weigh 1;
// intra edges weigh the local shortest-path cost inside one cluster.
type Edge struct {
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
	Inter  bool    `json:"inter"`
}

// AbstractNode is a vertex of the abstract graph: an entrance midpoint or an
// inserted query endpoint.
type AbstractNode struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Cluster int    `json:"cluster"`
	Edges   []Edge `json:"edges"`
}

// Result extends search.Result with the abstract-level path and the split of
// operations between the abstract search and refinement.
type Result struct {
	search.Result

	// AbstractPath lists the cells of the abstract nodes on the coarse path.
	AbstractPath []int `json:"abstractPath"`
	AbstractOps  int   `json:"abstractOps"`
	RefineOps    int   `json:"refineOps"`
}

// AbstractGraph is the preprocessed HPA* structure for one grid, cost table
// and cluster size. Nodes live in a flat arena and reference each other by
// index; byPos maps a cell to the node placed on it.
//
// Search and InsertNode mutate the graph, so concurrent use needs external
// locking. Editing the grid invalidates the graph.
type AbstractGraph struct {
	grid        *gridgraph.Grid
	costs       gridgraph.CostTable
	clusterSize int

	clusters  []Cluster
	cRows     int
	cCols     int
	subs      []*gridgraph.Grid
	entrances []Entrance

	nodes   []AbstractNode
	members [][]int     // node ids per cluster, in insertion order
	byPos   map[int]int // cell → node id
}

// Grid returns the grid the graph was built from.
func (ag *AbstractGraph) Grid() *gridgraph.Grid { return ag.grid }

// ClusterSize returns the nominal cluster edge length.
func (ag *AbstractGraph) ClusterSize() int { return ag.clusterSize }

// Clusters returns the clusters in row-major order. The slice must not be modified.
func (ag *AbstractGraph) Clusters() []Cluster { return ag.clusters }

// Entrances returns the entrances in discovery order. The slice must not be modified.
func (ag *AbstractGraph) Entrances() []Entrance { return ag.entrances }

// Nodes returns the abstract node arena. The slice must not be modified.
func (ag *AbstractGraph) Nodes() []AbstractNode { return ag.nodes }

// Members returns the node ids of cluster c.
func (ag *AbstractGraph) Members(c int) []int { return ag.members[c] }

// ClusterOf returns the index of the cluster holding cell (row, col).
func (ag *AbstractGraph) ClusterOf(row, col int) int {
	return (row/ag.clusterSize)*ag.cCols + col/ag.clusterSize
}

// NodeAt returns the node placed on cell, if any.
func (ag *AbstractGraph) NodeAt(cell int) (int, bool) {
	id, ok := ag.byPos[cell]

	return id, ok
}

// cell returns the grid index of node id.
func (ag *AbstractGraph) cell(id int) int {
	n := &ag.nodes[id]

	return ag.grid.Index(n.Row, n.Col)
}

func (ag *AbstractGraph) connect(a, b int, w float64, inter bool) {
	ag.nodes[a].Edges = append(ag.nodes[a].Edges, Edge{To: b, Weight: w, Inter: inter})
	ag.nodes[b].Edges = append(ag.nodes[b].Edges, Edge{To: a, Weight: w, Inter: inter})
}

// addNode appends a node on (row, col) without connecting it.
func (ag *AbstractGraph) addNode(row, col int) int {
	c := ag.ClusterOf(row, col)
	id := len(ag.nodes)
	ag.nodes = append(ag.nodes, AbstractNode{Row: row, Col: col, Cluster: c})
	ag.members[c] = append(ag.members[c], id)
	ag.byPos[ag.grid.Index(row, col)] = id

	return id
}
