package search

import (
	"math"

	"github.com/katalvlaran/gridpath/queue"
)

// Step is one successor produced by a Strategy: the node reached and the
// cost of the move.
type Step struct {
	To   int
	Cost float64
}

// Strategy configures BestFirst.
type Strategy struct {
	// Priority orders the fringe. v is the node being pushed and g its
	// accumulated cost.
	Priority func(v int, g float64) float64

	// Successors appends the moves out of v to buf and returns it. parent
	// is v's current parent, or -1 for the root.
	Successors func(v, parent int, buf []Step) []Step

	// KeepFirstParent pushes each node once and never re-parents it.
	KeepFirstParent bool
}

// Trace is the raw outcome of BestFirst.
type Trace struct {
	Found  bool
	Parent []int
	G      []float64
	Rec    *Recorder
}

// BestFirst runs the open/closed-set loop over node ids in [0, n).
//
// Loop:
//  1. Pop the minimum-priority node v. Stop if v == dst.
//  2. Skip v if already closed (stale entry from a lazy decrease-key).
//  3. Close v and relax each successor w that is not closed: push it when
//     unseen, or when its cost improves unless KeepFirstParent is set.
//
// Nodes are discovered (and recorded) when first pushed.
// Complexity: O((V + E) log V) time, O(V + E) memory.
func BestFirst(n, src, dst int, s Strategy, rec *Recorder) (*Trace, error) {
	t := &Trace{
		Parent: NewParents(n),
		G:      make([]float64, n),
		Rec:    rec,
	}
	for i := range t.G {
		t.G[i] = math.Inf(1)
	}
	closed := make([]bool, n)
	pq := queue.NewPriorityQueue[int](64)

	t.G[src] = 0
	pq.Push(src, s.Priority(src, 0))
	rec.Pushed(src)
	if err := rec.Discover(src); err != nil {
		return nil, err
	}

	var buf []Step
	for {
		v, ok := pq.Pop()
		if !ok {
			break
		}
		if err := rec.Popped(v); err != nil {
			return nil, err
		}
		if v == dst {
			t.Found = true
			break
		}
		if closed[v] {
			continue
		}
		closed[v] = true

		buf = s.Successors(v, t.Parent[v], buf[:0])
		for _, st := range buf {
			w := st.To
			if closed[w] {
				continue
			}
			ng := t.G[v] + st.Cost
			if rec.Seen(w) && (s.KeepFirstParent || !(ng < t.G[w])) {
				continue
			}
			t.G[w] = ng
			t.Parent[w] = v
			pq.Push(w, s.Priority(w, ng))
			rec.Pushed(w)
			if err := rec.Discover(w); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// PathTo returns the src..dst path, or an empty slice if dst was not reached.
func (t *Trace) PathTo(dst int) []int {
	if !t.Found {
		return []int{}
	}

	return PathFromParents(t.Parent, dst)
}

// Result assembles a Result for dst from the trace.
func (t *Trace) Result(dst int) *Result {
	res := &Result{
		Path:    t.PathTo(dst),
		Visited: t.Rec.Order(),
		Ops:     t.Rec.Ops(),
	}
	if t.Found {
		res.PathWeight = t.G[dst]
	}

	return res
}
