package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Fill paints every cell with kind.
func Fill(kind gridgraph.TerrainKind) Layer {
	return Rect(0, 0, -1, -1, kind)
}

// Rect paints the inclusive rectangle [top..bottom]×[left..right] with kind.
// Negative bottom or right mean the last row or column.
func Rect(top, left, bottom, right int, kind gridgraph.TerrainKind) Layer {
	return func(canvas [][]gridgraph.TerrainKind, _ builderConfig) error {
		if !kind.Valid() {
			return fmt.Errorf("Rect: kind %d: %w", kind, ErrInvalidTerrain)
		}
		rows, cols := len(canvas), len(canvas[0])
		if bottom < 0 {
			bottom = rows - 1
		}
		if right < 0 {
			right = cols - 1
		}
		if top < 0 || left < 0 || top > bottom || left > right || bottom >= rows || right >= cols {
			return fmt.Errorf("Rect: [%d..%d]x[%d..%d] on %dx%d: %w", top, bottom, left, right, rows, cols, ErrOutOfBounds)
		}
		for r := top; r <= bottom; r++ {
			for c := left; c <= right; c++ {
				canvas[r][c] = kind
			}
		}

		return nil
	}
}

// Clear resets one cell to Normal, typically to keep a query endpoint open.
func Clear(row, col int) Layer {
	return Rect(row, col, row, col, gridgraph.Normal)
}

// Scatter repaints each cell with kind independently with probability p.
// Cells are drawn in row-major order.
func Scatter(kind gridgraph.TerrainKind, p float64) Layer {
	return func(canvas [][]gridgraph.TerrainKind, cfg builderConfig) error {
		if !kind.Valid() {
			return fmt.Errorf("Scatter: kind %d: %w", kind, ErrInvalidTerrain)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("Scatter: p=%v: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("Scatter: %w", ErrNeedRandSource)
		}
		for r := range canvas {
			for c := range canvas[r] {
				if cfg.rng.Float64() < p {
					canvas[r][c] = kind
				}
			}
		}

		return nil
	}
}
