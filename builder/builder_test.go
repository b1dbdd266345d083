package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestBuildGrid_Open(t *testing.T) {
	g, err := builder.BuildGrid(3, 4, nil)
	require.NoError(t, err)
	assert.True(t, g.Equal(gridgraph.MustParse("....\n....\n....")))
}

func TestBuildGrid_Layers(t *testing.T) {
	g, err := builder.BuildGrid(3, 4, nil,
		builder.Fill(gridgraph.Water),
		builder.Rect(1, 0, 1, -1, gridgraph.Blocked),
		builder.Clear(1, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, "~~~~\n##.#\n~~~~\n", g.String())
}

func TestBuildGrid_Errors(t *testing.T) {
	tests := []struct {
		name   string
		rows   int
		opts   []builder.BuilderOption
		layers []builder.Layer
		want   error
	}{
		{"zero rows", 0, nil, nil, builder.ErrTooSmall},
		{"nil layer", 2, nil, []builder.Layer{nil}, builder.ErrConstructFailed},
		{"rect outside", 2, nil, []builder.Layer{builder.Rect(0, 0, 2, 0, gridgraph.Blocked)}, builder.ErrOutOfBounds},
		{"rect inverted", 2, nil, []builder.Layer{builder.Rect(1, 0, 0, 0, gridgraph.Blocked)}, builder.ErrOutOfBounds},
		{"clear outside", 2, nil, []builder.Layer{builder.Clear(-1, 0)}, builder.ErrOutOfBounds},
		{"bad kind", 2, nil, []builder.Layer{builder.Fill(0)}, builder.ErrInvalidTerrain},
		{"scatter no rng", 2, nil, []builder.Layer{builder.Scatter(gridgraph.Blocked, 0.5)}, builder.ErrNeedRandSource},
		{"scatter p", 2, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Layer{builder.Scatter(gridgraph.Blocked, 1.5)}, builder.ErrInvalidProbability},
		{"world no rng", 2, nil, []builder.Layer{builder.World(4)}, builder.ErrNeedRandSource},
		{"world scale", 2, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Layer{builder.World(0)}, builder.ErrTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.BuildGrid(tt.rows, 3, tt.opts, tt.layers...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithOctaves(0) })
}

func TestScatter(t *testing.T) {
	g, err := builder.BuildGrid(4, 4, []builder.BuilderOption{builder.WithSeed(3)}, builder.Scatter(gridgraph.Blocked, 1))
	require.NoError(t, err)
	for v := 0; v < g.Size(); v++ {
		assert.True(t, g.IsBlocked(v))
	}

	g, err = builder.BuildGrid(4, 4, []builder.BuilderOption{builder.WithSeed(3)}, builder.Scatter(gridgraph.Blocked, 0))
	require.NoError(t, err)
	assert.Len(t, g.Region(0), 16)
}

func TestWorld_Deterministic(t *testing.T) {
	build := func(seed int64) *gridgraph.Grid {
		g, err := builder.BuildGrid(40, 50, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(seed)))}, builder.World(8))
		require.NoError(t, err)
		return g
	}
	a, b := build(11), build(11)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(build(12)))

	costs := gridgraph.DefaultCostTable()
	require.NoError(t, costs.Validate(a))
	for v := 0; v < a.Size(); v++ {
		assert.True(t, a.At(v).Passable())
	}
	assert.Len(t, a.Region(0), a.Size())
}

func TestTerrainAt(t *testing.T) {
	tests := []struct {
		v    float64
		want gridgraph.TerrainKind
	}{
		{0, gridgraph.DeepWater},
		{0.2, gridgraph.Water},
		{0.31, gridgraph.Sand},
		{0.5, gridgraph.Grassland},
		{0.78, gridgraph.Forest},
		{0.85, gridgraph.Rock},
		{0.9, gridgraph.Snow},
		{0.999, gridgraph.Snow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, builder.TerrainAt(tt.v), "v=%v", tt.v)
	}
}
