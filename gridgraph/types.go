package gridgraph

import "strconv"

// TerrainKind is the code stored in a grid cell.
type TerrainKind uint8

// Terrain codes. Blocked is reserved and impassable; every other kind is
// passable at the cost given by a CostTable.
const (
	Normal TerrainKind = iota + 1
	DeepWater
	Water
	Sand
	Forest
	Grassland
	Rock
	Snow
	Blocked
)

var terrainNames = [...]string{
	Normal:    "normal",
	DeepWater: "deep_water",
	Water:     "water",
	Sand:      "sand",
	Forest:    "forest",
	Grassland: "grassland",
	Rock:      "rock",
	Snow:      "snow",
	Blocked:   "blocked",
}

// Valid reports whether k is one of the defined terrain codes.
func (k TerrainKind) Valid() bool { return k >= Normal && k <= Blocked }

// Passable reports whether a search may enter a cell of this kind.
func (k TerrainKind) Passable() bool { return k.Valid() && k != Blocked }

// String returns the snake_case terrain name used in configuration files.
func (k TerrainKind) String() string {
	if !k.Valid() {
		return "terrain(" + strconv.Itoa(int(k)) + ")"
	}

	return terrainNames[k]
}

// ParseTerrain maps a terrain name back to its kind.
func ParseTerrain(name string) (TerrainKind, bool) {
	for k := Normal; k <= Blocked; k++ {
		if terrainNames[k] == name {
			return k, true
		}
	}

	return 0, false
}

// Kinds lists every passable terrain kind in code order.
func Kinds() []TerrainKind {
	return []TerrainKind{Normal, DeepWater, Water, Sand, Forest, Grassland, Rock, Snow}
}

// Direction is one of the four orthogonal moves.
type Direction int

// Directions in neighbour enumeration order.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all moves in the fixed enumeration order used by every search.
var Directions = [4]Direction{Up, Right, Down, Left}

// offsets are (dRow, dCol) per Direction.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Delta returns the row and column step of d.
func (d Direction) Delta() (dRow, dCol int) { return offsets[d][0], offsets[d][1] }

// Opposite returns the reverse move.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}

	return "direction(" + strconv.Itoa(int(d)) + ")"
}

// Grid is a read-only rectangular matrix of terrain codes stored row-major.
// Node indices are row*Cols + col.
type Grid struct {
	Rows, Cols int
	cells      []TerrainKind
}
