// Package dfs implements depth-first searches over a terrain grid.
//
// Key features:
//   - DFS(g, costs, src, dst, opts...): the canonical depth-first search.
//     One global parent map; once dst is discovered no branch recurses
//     further and dst's parent is never changed. Returns the first path
//     found, which is not guaranteed shortest.
//   - IterativeDeepening: depth-limited DFS run at limits 0, 1, 2, … until
//     dst is reached or MaxDepth is exhausted, recording each iteration.
//   - Iterative: a legacy stack-popping variant kept for side-by-side
//     comparison. Its tracebacks differ from DFS; do not rely on them.
//
// All variants run on an explicit stack, so grid size never hits a
// recursion limit.
//
// Complexity:
//
//   - DFS, Iterative: O(N) time and memory (N = R×C).
//   - IterativeDeepening: O(N·D) time for final depth D, O(N) memory.
//
// Ops:
//
//	For DFS, Ops equals len(Visited). For the other variants it counts
//	stack pushes plus pops.
//
// Errors:
//
//   - search.ErrInvalidArgument family for malformed input.
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit.
package dfs
