package search

import "fmt"

// Recorder tracks discovery order and the operation count of one search,
// firing hooks and checking the context as it goes.
type Recorder struct {
	opts  Options
	seen  []bool
	order []int
	ops   int
}

// NewRecorder returns a Recorder for node ids in [0, n).
func NewRecorder(n int, o Options) *Recorder {
	return &Recorder{opts: o, seen: make([]bool, n), order: make([]int, 0, 64)}
}

// Discover marks v as seen and appends it to the visit order once.
// It returns the OnVisit hook's error, wrapped in ErrHookAborted.
func (r *Recorder) Discover(v int) error {
	if r.seen[v] {
		return nil
	}
	r.seen[v] = true
	r.order = append(r.order, v)
	if err := r.opts.OnVisit(v); err != nil {
		return fmt.Errorf("%w: node %d: %w", ErrHookAborted, v, err)
	}

	return nil
}

// Seen reports whether v has been discovered.
func (r *Recorder) Seen(v int) bool { return r.seen[v] }

// Pushed counts a fringe push.
func (r *Recorder) Pushed(v int) {
	r.ops++
	r.opts.OnEnqueue(v)
}

// Popped counts a fringe pop and checks for cancellation.
func (r *Recorder) Popped(v int) error {
	r.ops++
	r.opts.OnDequeue(v)

	return checkContext(r.opts)
}

// Order returns the discovery order.
func (r *Recorder) Order() []int { return r.order }

// Ops returns the operation count.
func (r *Recorder) Ops() int { return r.ops }

// Err reports context cancellation without counting an operation.
func (r *Recorder) Err() error { return checkContext(r.opts) }
