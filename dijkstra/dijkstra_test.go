package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func TestUniformCost_Open3x3(t *testing.T) {
	g := gridgraph.MustParse("...\n...\n...")
	res, err := dijkstra.UniformCost(g, gridgraph.UniformCostTable(), 0, 8)
	require.NoError(t, err)
	assert.Len(t, res.Path, 5)
	assert.Equal(t, 4.0, res.PathWeight)
	assert.Equal(t, 0, res.Path[0])
	assert.Equal(t, 8, res.Path[4])
}

// TestUniformCost_AvoidsExpensiveTerrain routes around a water band when
// the detour is cheaper than wading through it.
func TestUniformCost_AvoidsExpensiveTerrain(t *testing.T) {
	g := gridgraph.MustParse(`
		.~.
		.~.
		...
	`)
	res, err := dijkstra.UniformCost(g, gridgraph.DefaultCostTable(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6, 7, 8, 5, 2}, res.Path)
	assert.Equal(t, 6.0, res.PathWeight)
	assert.NotContains(t, res.Path, 1)
}

func TestUniformCost_PrefersWeightedShortcut(t *testing.T) {
	// Sand (8) is cheaper than a 10-move detour.
	g := gridgraph.MustParse(`
		.s.
		.#.
		.#.
		.#.
		...
	`)
	res, err := dijkstra.UniformCost(g, gridgraph.DefaultCostTable(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
	assert.Equal(t, 9.0, res.PathWeight)
}

func TestUniformCost_WallWithGap(t *testing.T) {
	g := gridgraph.MustParse(`
		.....
		.....
		##.##
		.....
		.....
	`)
	res, err := dijkstra.UniformCost(g, gridgraph.UniformCostTable(), 0, 20)
	require.NoError(t, err)
	assert.Contains(t, res.Path, 12)
	assert.Equal(t, 8.0, res.PathWeight)
}

func TestUniformCost_Disconnected(t *testing.T) {
	g := gridgraph.MustParse("..#..\n..#..")
	res, err := dijkstra.UniformCost(g, gridgraph.UniformCostTable(), 0, 4)
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.PathWeight)
	assert.ElementsMatch(t, g.Region(0), res.Visited)
}

func TestUniformCost_BadWeights(t *testing.T) {
	g := gridgraph.MustParse(".f.")
	costs := gridgraph.DefaultCostTable()
	costs[gridgraph.Forest] = -1
	_, err := dijkstra.UniformCost(g, costs, 0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrBadWeight)
	assert.ErrorIs(t, err, search.ErrInvalidArgument)
}

func TestDistances(t *testing.T) {
	g := gridgraph.MustParse(`
		.g#
		~..
	`)
	dist, err := dijkstra.Distances(g, gridgraph.DefaultCostTable(), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5, math.Inf(1), 25, 6, 7}, dist)

	dist, err = dijkstra.Distances(g, gridgraph.DefaultCostTable(), 2)
	require.NoError(t, err)
	for _, d := range dist {
		assert.True(t, math.IsInf(d, 1))
	}
}
