package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrInvalidArgument is shared with gridgraph so one errors.Is check covers
// every malformed input.
var ErrInvalidArgument = gridgraph.ErrInvalidArgument

// Sentinel errors for search setup.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = fmt.Errorf("search: grid is nil: %w", ErrInvalidArgument)

	// ErrOutOfRange is returned when src or dst is not a node of the grid.
	ErrOutOfRange = fmt.Errorf("search: node index out of range: %w", ErrInvalidArgument)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("search: invalid option supplied: %w", ErrInvalidArgument)

	// ErrHookAborted wraps an error returned by an OnVisit hook.
	ErrHookAborted = errors.New("search: aborted by OnVisit hook")
)

// Result is the record returned by every search.
type Result struct {
	// Path runs from src to dst inclusive; empty when dst is unreachable.
	Path []int `json:"path"`
	// Visited lists discovered nodes in discovery order. Never contains a blocked cell.
	Visited []int `json:"visited"`
	// Ops counts fringe pushes plus pops.
	Ops int `json:"ops"`
	// PathWeight is the sum of entry costs of Path[1:].
	PathWeight float64 `json:"pathWeight"`
}

// Found reports whether a path was produced.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Hops returns the number of moves on Path, or -1 when there is no path.
func (r *Result) Hops() int { return len(r.Path) - 1 }

// emptyResult is the answer for a blocked source.
func emptyResult() *Result {
	return &Result{Path: []int{}, Visited: []int{}}
}

// trivialResult is the answer for src == dst.
func trivialResult(src int) *Result {
	return &Result{Path: []int{src}, Visited: []int{src}}
}

// PathFromParents walks parent links back from dst and returns the
// src..dst sequence. Roots have parent -1.
func PathFromParents(parent []int, dst int) []int {
	var path []int
	for cur := dst; cur >= 0; cur = parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// NewParents returns a parent slice of length n filled with -1.
func NewParents(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = -1
	}

	return p
}
