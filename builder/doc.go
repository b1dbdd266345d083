// Package builder generates terrain grids for tests, benchmarks and the CLI.
//
// A grid is built by painting Layers, in order, onto a rows×cols canvas that
// starts as Normal terrain:
//
//	g, err := builder.BuildGrid(64, 64,
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.World(16),
//		builder.Scatter(gridgraph.Blocked, 0.1),
//		builder.Clear(0, 0), builder.Clear(63, 63),
//	)
//
// Stochastic layers (Scatter, World) need a random source, supplied with
// WithSeed or WithRand. For a fixed seed the output is reproducible.
package builder
