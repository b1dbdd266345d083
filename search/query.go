package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Query is a validated search request.
type Query struct {
	Grid  *gridgraph.Grid
	Costs gridgraph.CostTable
	Src   int
	Dst   int
	Opts  Options
}

// Prepare validates a search request.
//
// Steps:
//  1. Fold options; a violation yields ErrOptionViolation.
//  2. Reject a nil grid and src/dst outside the grid.
//  3. Pre-scan the grid against the cost table (gridgraph.ErrBadWeight).
//  4. Resolve trivial answers: blocked src → empty Result;
//     src == dst → Path = Visited = [src].
//
// When done is non-nil the caller returns it as is.
func Prepare(g *gridgraph.Grid, costs gridgraph.CostTable, src, dst int, opts ...Option) (q *Query, done *Result, err error) {
	o, err := Apply(opts...)
	if err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.Contains(src) || !g.Contains(dst) {
		return nil, nil, fmt.Errorf("src=%d dst=%d on %dx%d grid: %w", src, dst, g.Rows, g.Cols, ErrOutOfRange)
	}
	if err = costs.Validate(g); err != nil {
		return nil, nil, err
	}
	if err = checkContext(o); err != nil {
		return nil, nil, err
	}

	q = &Query{Grid: g, Costs: costs, Src: src, Dst: dst, Opts: o}
	switch {
	case g.IsBlocked(src):
		return q, emptyResult(), nil
	case src == dst:
		return q, trivialResult(src), nil
	}

	return q, nil, nil
}

// Recorder returns a Recorder sized for the query's grid.
func (q *Query) Recorder() *Recorder { return NewRecorder(q.Grid.Size(), q.Opts) }

func checkContext(o Options) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

// Successors is the Strategy successor generator over grid neighbours,
// with each move priced at the entry cost of its target.
func (q *Query) Successors(v, _ int, buf []Step) []Step {
	for _, d := range gridgraph.Directions {
		w, ok := q.Grid.Neighbor(v, d)
		if !ok || q.Grid.IsBlocked(w) {
			continue
		}
		buf = append(buf, Step{To: w, Cost: q.Costs.Cost(q.Grid, w)})
	}

	return buf
}

// Heuristic returns the Manhattan distance from v to the query's dst.
func (q *Query) Heuristic(v int) float64 { return q.Grid.Manhattan(v, q.Dst) }
