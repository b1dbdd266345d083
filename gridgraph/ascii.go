package gridgraph

import (
	"fmt"
	"strings"
)

// Glyphs used by ParseASCII and Grid.String. Digits 1..9 are also accepted
// on input as raw terrain codes.
var glyphs = map[TerrainKind]byte{
	Normal:    '.',
	DeepWater: 'D',
	Water:     '~',
	Sand:      's',
	Forest:    'f',
	Grassland: 'g',
	Rock:      'r',
	Snow:      '*',
	Blocked:   '#',
}

// GlyphKind maps a single map character to its terrain.
func GlyphKind(ch byte) (TerrainKind, bool) {
	if ch >= '1' && ch <= '9' {
		return TerrainKind(ch - '0'), true
	}
	for k, g := range glyphs {
		if g == ch {
			return k, true
		}
	}

	return 0, false
}

// ParseASCII builds a Grid from a text map, one row per line. Leading and
// trailing whitespace on each line is trimmed and blank lines are skipped.
func ParseASCII(s string) (*Grid, error) {
	lines := strings.Split(s, "\n")

	return ParseRows(lines)
}

// ParseRows is ParseASCII over pre-split lines.
func ParseRows(lines []string) (*Grid, error) {
	var rows [][]TerrainKind
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]TerrainKind, len(line))
		for c := 0; c < len(line); c++ {
			k, ok := GlyphKind(line[c])
			if !ok {
				return nil, fmt.Errorf("row %d col %d %q: %w", len(rows), c, line[c], ErrUnknownTerrain)
			}
			row[c] = k
		}
		rows = append(rows, row)
	}

	return NewGrid(rows)
}

// MustParse is ParseASCII that panics on error. Intended for tests and fixtures.
func MustParse(s string) *Grid {
	g, err := ParseASCII(s)
	if err != nil {
		panic(err)
	}

	return g
}

// String renders g in the ParseASCII format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			b.WriteByte(glyphs[g.cells[r*g.Cols+c]])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
