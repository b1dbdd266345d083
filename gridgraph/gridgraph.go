package gridgraph

import (
	"fmt"
	"hash/fnv"
	"slices"
)

// NewGrid constructs a Grid from a non-empty rectangular 2D slice indexed [row][col].
// The input is deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownTerrain on malformed input.
// Complexity: O(R×C).
func NewGrid(rows [][]TerrainKind) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]TerrainKind, 0, h*w)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
		for c, k := range row {
			if !k.Valid() {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, k, ErrUnknownTerrain)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{Rows: h, Cols: w, cells: cells}, nil
}

// FromInts is NewGrid over raw integer codes (1..9).
func FromInts(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	kinds := make([][]TerrainKind, len(rows))
	for r, row := range rows {
		kinds[r] = make([]TerrainKind, len(row))
		for c, v := range row {
			if v < int(Normal) || v > int(Blocked) {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, v, ErrUnknownTerrain)
			}
			kinds[r][c] = TerrainKind(v)
		}
	}

	return NewGrid(kinds)
}

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Index maps (row, col) to its node index.
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Coordinate converts a node index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) { return idx / g.Cols, idx % g.Cols }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Contains reports whether idx is a valid node index.
func (g *Grid) Contains(idx int) bool { return idx >= 0 && idx < len(g.cells) }

// At returns the terrain of node idx. idx must be in range.
func (g *Grid) At(idx int) TerrainKind { return g.cells[idx] }

// IsBlocked reports whether node idx is impassable.
func (g *Grid) IsBlocked(idx int) bool { return g.cells[idx] == Blocked }

// Neighbor returns the node one step from idx in direction d.
// The boolean is false when the step leaves the grid; passability is not checked.
func (g *Grid) Neighbor(idx int, d Direction) (int, bool) {
	r, c := g.Coordinate(idx)
	dr, dc := d.Delta()
	r, c = r+dr, c+dc
	if !g.InBounds(r, c) {
		return -1, false
	}

	return g.Index(r, c), true
}

// Neighbors returns the in-bounds, non-blocked neighbours of idx in the
// order up, right, down, left.
func (g *Grid) Neighbors(idx int) []int {
	return g.AppendNeighbors(make([]int, 0, 4), idx)
}

// AppendNeighbors is Neighbors appending into dst, for allocation-free loops.
func (g *Grid) AppendNeighbors(dst []int, idx int) []int {
	for _, d := range Directions {
		if n, ok := g.Neighbor(idx, d); ok && g.cells[n] != Blocked {
			dst = append(dst, n)
		}
	}

	return dst
}

// DirectionOf returns the direction of the straight line from a to b.
// The boolean is false if a == b or the two do not share a row or column.
func (g *Grid) DirectionOf(a, b int) (Direction, bool) {
	ar, ac := g.Coordinate(a)
	br, bc := g.Coordinate(b)
	switch {
	case ar == br && bc > ac:
		return Right, true
	case ar == br && bc < ac:
		return Left, true
	case ac == bc && br > ar:
		return Down, true
	case ac == bc && br < ar:
		return Up, true
	}

	return 0, false
}

// Manhattan returns |Δrow| + |Δcol| between two nodes; it is the heuristic
// of the informed searches.
func (g *Grid) Manhattan(a, b int) float64 {
	ar, ac := g.Coordinate(a)
	br, bc := g.Coordinate(b)

	return float64(abs(ar-br) + abs(ac-bc))
}

// Sub copies the half-open rectangle [top,bottom) × [left,right) into a new Grid.
func (g *Grid) Sub(top, left, bottom, right int) (*Grid, error) {
	if top < 0 || left < 0 || bottom > g.Rows || right > g.Cols || top >= bottom || left >= right {
		return nil, fmt.Errorf("rect [%d,%d)x[%d,%d): %w", top, bottom, left, right, ErrOutOfRange)
	}
	w := right - left
	cells := make([]TerrainKind, 0, (bottom-top)*w)
	for r := top; r < bottom; r++ {
		cells = append(cells, g.cells[r*g.Cols+left:r*g.Cols+right]...)
	}

	return &Grid{Rows: bottom - top, Cols: w, cells: cells}, nil
}

// Fingerprint hashes dimensions and cells. Equal grids have equal fingerprints.
func (g *Grid) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%dx%d:", g.Rows, g.Cols)
	buf := make([]byte, len(g.cells))
	for i, k := range g.cells {
		buf[i] = byte(k)
	}
	_, _ = h.Write(buf)

	return h.Sum64()
}

// Equal reports whether o has the same dimensions and cells as g.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}

	return g.Rows == o.Rows && g.Cols == o.Cols && slices.Equal(g.cells, o.cells)
}

// Cells returns a copy of the grid as [row][col].
func (g *Grid) Cells() [][]TerrainKind {
	out := make([][]TerrainKind, g.Rows)
	for r := range out {
		out[r] = make([]TerrainKind, g.Cols)
		copy(out[r], g.cells[r*g.Cols:(r+1)*g.Cols])
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
