package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleDFS shows that depth-first search returns the first path it finds,
// here sweeping the whole grid before reaching a cell two moves away.
func ExampleDFS() {
	g := gridgraph.MustParse("...\n...\n...")
	res, _ := dfs.DFS(g, gridgraph.UniformCostTable(), g.Index(0, 0), g.Index(2, 0))
	fmt.Println("path:", res.Path)
	fmt.Println("hops:", res.Hops())
	// Output:
	// path: [0 1 2 5 8 7 4 3 6]
	// hops: 8
}

// ExampleIterativeDeepening prints the cells entered at each depth limit.
func ExampleIterativeDeepening() {
	g := gridgraph.MustParse("....")
	res, _ := dfs.IterativeDeepening(g, gridgraph.UniformCostTable(), 0, 3)
	for limit, it := range res.Iterations {
		fmt.Println(limit, it)
	}
	// Output:
	// 0 [0]
	// 1 [0 1]
	// 2 [0 1 2]
	// 3 [0 1 2 3]
}
