// Package gridpath answers shortest and cheapest path queries on 4-connected
// weighted terrain grids and compares search strategies on them.
//
// The module is organized as flat packages:
//
//	queue/      — priority queue, FIFO and stack primitives
//	gridgraph/  — the grid-as-graph model: terrain, costs, neighbours, regions
//	search/     — shared query preparation, options, hooks and the best-first driver
//	bfs/        — breadth-first and bidirectional breadth-first search
//	dfs/        — depth-first, legacy iterative and iterative-deepening search
//	dijkstra/   — uniform-cost search and single-source distances
//	astar/      — A* and greedy best-first search
//	jps/        — jump point search on uniform-cost grids
//	hpa/        — hierarchical pathfinding A* (cluster abstraction + refinement)
//	engine/     — algorithm registry, request validation, HPA graph cache
//	config/     — YAML configuration and grid files
//	builder/    — generated terrain for tests, benchmarks and the CLI
//	server/     — HTTP API with metrics, tracing and GeoJSON overlays
//	cmd/gridpath — command-line entry point
//
// Every algorithm returns a search.Result: the path (empty when the target is
// unreachable), the cells discovered in order, the number of fringe
// operations and the path weight. Invalid input is reported with errors
// wrapping search.ErrInvalidArgument; "no path" is not an error.
//
// Quick start:
//
//	g := gridgraph.MustParse(`
//		..~~.
//		.##..
//		.....
//	`)
//	res, err := astar.AStar(g, gridgraph.DefaultCostTable(), 0, g.Size()-1)
package gridpath
