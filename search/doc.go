// Package search holds the contract shared by every grid search in this
// module: the Result record, functional options and hooks, input
// validation, and the generic best-first driver that uniform-cost, A*,
// greedy best-first, jump point search and the HPA* abstract level are
// configured from.
//
// What
//
//   - Result: Path (src..dst inclusive, empty when unreachable), Visited
//     (nodes in discovery order), Ops (fringe pushes plus pops) and
//     PathWeight (sum of entry costs along Path).
//   - Prepare validates (grid, costs, src, dst, options) and resolves the
//     two trivial answers: a blocked src gives an empty Result, and
//     src == dst gives Path = Visited = [src].
//   - Recorder centralizes Visited, Ops, the hooks and context checks so
//     each algorithm only describes its frontier discipline.
//   - BestFirst runs the open/closed-set loop for a Strategy made of a
//     priority function and a successor generator.
//
// Hooks
//
//	OnEnqueue(node) fires on every fringe push, OnDequeue(node) on every pop,
//	and OnVisit(node) when a node is first discovered. A non-nil error from
//	OnVisit aborts the search and is returned wrapped.
//
// Errors
//
//   - ErrNilGrid, ErrOutOfRange, ErrOptionViolation and the gridgraph input
//     errors all wrap ErrInvalidArgument.
//   - Context cancellation is returned as ctx.Err().
//
// "No path" is never an error.
package search
