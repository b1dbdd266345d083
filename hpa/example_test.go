package hpa_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/hpa"
)

// ExampleAbstractGraph_Search builds the abstract graph of an open 10×10
// grid once and answers a corner-to-corner query on it.
func ExampleAbstractGraph_Search() {
	g := openGrid(10, 10)
	ag, err := hpa.NewAbstractGraph(g, gridgraph.UniformCostTable(), 5)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	fmt.Printf("clusters=%d entrances=%d nodes=%d\n",
		len(ag.Clusters()), len(ag.Entrances()), len(ag.Nodes()))

	res, err := ag.Search(0, 99)
	if err != nil {
		fmt.Println("search:", err)
		return
	}
	fmt.Printf("cost=%.0f hops=%d abstract=%d\n", res.PathWeight, res.Hops(), len(res.AbstractPath))
	// Output:
	// clusters=4 entrances=4 nodes=8
	// cost=18 hops=18 abstract=6
}
