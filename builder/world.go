package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// band maps noise values below upper to kind.
type band struct {
	upper float64
	kind  gridgraph.TerrainKind
}

// worldBands are checked in order; values at or above the last bound are snow.
var worldBands = []band{
	{0.20, gridgraph.DeepWater},
	{0.30, gridgraph.Water},
	{0.35, gridgraph.Sand},
	{0.77, gridgraph.Grassland},
	{0.80, gridgraph.Forest},
	{0.90, gridgraph.Rock},
}

// TerrainAt classifies a noise value in [0, 1].
func TerrainAt(v float64) gridgraph.TerrainKind {
	for _, b := range worldBands {
		if v < b.upper {
			return b.kind
		}
	}

	return gridgraph.Snow
}

// World paints natural-looking terrain: fractal value noise whose base
// lattice has one random sample every scale cells, classified by TerrainAt.
// The result contains no Blocked cells.
func World(scale int) Layer {
	return func(canvas [][]gridgraph.TerrainKind, cfg builderConfig) error {
		if scale < 1 {
			return fmt.Errorf("World: scale=%d: %w", scale, ErrTooSmall)
		}
		if cfg.rng == nil {
			return fmt.Errorf("World: %w", ErrNeedRandSource)
		}
		rows, cols := len(canvas), len(canvas[0])

		field := make([]float64, rows*cols)
		amp, total := 1.0, 0.0
		step := float64(scale)
		for o := 0; o < cfg.octaves; o++ {
			lat := newLattice(cfg.rng, rows, cols, step)
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					field[r*cols+c] += amp * lat.at(float64(r)/step, float64(c)/step)
				}
			}
			total += amp
			amp /= 2
			step = math.Max(step/2, 1)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				canvas[r][c] = TerrainAt(field[r*cols+c] / total)
			}
		}

		return nil
	}
}

// lattice holds random samples in [0, 1) on integer points.
type lattice struct {
	w      int
	values []float64
}

func newLattice(rng *rand.Rand, rows, cols int, step float64) lattice {
	h := int(math.Ceil(float64(rows)/step)) + 2
	w := int(math.Ceil(float64(cols)/step)) + 2
	values := make([]float64, h*w)
	for i := range values {
		values[i] = rng.Float64()
	}

	return lattice{w: w, values: values}
}

// at interpolates the lattice at (y, x) with a smoothstep fade.
func (l lattice) at(y, x float64) float64 {
	y0, x0 := math.Floor(y), math.Floor(x)
	fy, fx := smooth(y-y0), smooth(x-x0)
	i, j := int(y0), int(x0)

	top := lerp(l.values[i*l.w+j], l.values[i*l.w+j+1], fx)
	bot := lerp(l.values[(i+1)*l.w+j], l.values[(i+1)*l.w+j+1], fx)

	return lerp(top, bot, fy)
}

func smooth(t float64) float64 { return t * t * (3 - 2*t) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
