package gridgraph

import (
	"fmt"
	"math"
)

// CostTable maps each passable terrain kind to the cost of entering a cell of
// that kind. It is passed explicitly into every search; there is no package state.
type CostTable map[TerrainKind]float64

// DefaultCostTable returns the stock terrain weights.
func DefaultCostTable() CostTable {
	return CostTable{
		Normal:    1,
		DeepWater: 100,
		Water:     25,
		Sand:      8,
		Forest:    10,
		Grassland: 5,
		Rock:      15,
		Snow:      30,
	}
}

// UniformCostTable returns a table in which every passable kind costs 1.
func UniformCostTable() CostTable {
	t := make(CostTable, 8)
	for _, k := range Kinds() {
		t[k] = 1
	}

	return t
}

// Clone returns an independent copy of t.
func (t CostTable) Clone() CostTable {
	out := make(CostTable, len(t))
	for k, w := range t {
		out[k] = w
	}

	return out
}

// Cost returns the cost of entering node v. It is independent of the
// direction of entry. v must be passable and Validate must have accepted t.
func (t CostTable) Cost(g *Grid, v int) float64 { return t[g.cells[v]] }

// Validate pre-scans g and checks that every passable terrain present has a
// positive finite cost. Kinds absent from the grid are not checked.
// Complexity: O(R×C).
func (t CostTable) Validate(g *Grid) error {
	var seen [Blocked + 1]bool
	for _, k := range g.cells {
		if k == Blocked || seen[k] {
			continue
		}
		seen[k] = true
		w, ok := t[k]
		if !ok {
			return fmt.Errorf("no cost for %s: %w", k, ErrBadWeight)
		}
		if !(w > 0) || math.IsInf(w, 0) {
			return fmt.Errorf("cost for %s is %v: %w", k, w, ErrBadWeight)
		}
	}

	return nil
}

// Uniform reports whether every passable cell of g costs the same, and that
// cost. A grid with no passable cells is uniform at cost 1.
func (t CostTable) Uniform(g *Grid) (float64, bool) {
	unit := math.NaN()
	for _, k := range g.cells {
		if k == Blocked {
			continue
		}
		w := t[k]
		if math.IsNaN(unit) {
			unit = w
			continue
		}
		if w != unit {
			return 0, false
		}
	}
	if math.IsNaN(unit) {
		return 1, true
	}

	return unit, true
}

// PathCost sums the entry cost of every node of path after the first.
func (t CostTable) PathCost(g *Grid, path []int) float64 {
	var sum float64
	for i := 1; i < len(path); i++ {
		sum += t.Cost(g, path[i])
	}

	return sum
}
