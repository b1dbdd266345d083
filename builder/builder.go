package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Layer paints onto the canvas. Layers must not resize it.
type Layer func(canvas [][]gridgraph.TerrainKind, cfg builderConfig) error

// BuildGrid creates a rows×cols Normal canvas, applies layers in order and
// returns the resulting grid. Layer errors are wrapped with their index.
func BuildGrid(rows, cols int, opts []BuilderOption, layers ...Layer) (*gridgraph.Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("BuildGrid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)

	canvas := make([][]gridgraph.TerrainKind, rows)
	for r := range canvas {
		canvas[r] = make([]gridgraph.TerrainKind, cols)
		for c := range canvas[r] {
			canvas[r][c] = gridgraph.Normal
		}
	}

	for i, layer := range layers {
		if layer == nil {
			return nil, fmt.Errorf("BuildGrid: nil layer at index %d: %w", i, ErrConstructFailed)
		}
		if err := layer(canvas, cfg); err != nil {
			return nil, fmt.Errorf("BuildGrid: layer %d: %w", i, err)
		}
	}

	return gridgraph.NewGrid(canvas)
}
