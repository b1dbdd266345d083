package dfs

import "github.com/katalvlaran/gridpath/search"

// DeepeningResult holds the outcome of IterativeDeepening.
//   - Visited: every node discovered across all iterations, first discovery first.
//   - Iterations: per depth limit, the nodes entered during that iteration.
//   - Depth: the limit at which dst was reached, or -1.
type DeepeningResult struct {
	search.Result
	Iterations [][]int `json:"iterations"`
	Depth      int     `json:"depth"`
}

// limitFrame is a frame of depth-limited search.
type limitFrame struct {
	node  int
	next  int
	limit int
}
