package gridgraph

// ConnectedComponents finds all 4-connected regions of passable cells.
// Components are listed in row-major order of their first cell; each holds
// node indices in flood order.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	for i := range g.cells {
		if g.cells[i] == Blocked || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen))
	}

	return comps
}

// Region returns every passable node reachable from src, in breadth-first
// discovery order. A blocked or out-of-range src yields nil.
func (g *Grid) Region(src int) []int {
	if !g.Contains(src) || g.cells[src] == Blocked {
		return nil
	}

	return g.flood(src, make([]bool, len(g.cells)))
}

// flood collects the component containing start, marking seen.
func (g *Grid) flood(start int, seen []bool) []int {
	comp := []int{start}
	seen[start] = true
	var nbrs [4]int
	for qi := 0; qi < len(comp); qi++ {
		for _, v := range g.AppendNeighbors(nbrs[:0], comp[qi]) {
			if !seen[v] {
				seen[v] = true
				comp = append(comp, v)
			}
		}
	}

	return comp
}
