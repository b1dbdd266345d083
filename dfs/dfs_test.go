package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func open3() *gridgraph.Grid { return gridgraph.MustParse("...\n...\n...") }

func TestDFS_Straight(t *testing.T) {
	res, err := dfs.DFS(open3(), gridgraph.UniformCostTable(), 0, 8)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 8}, res.Path)
	assert.Equal(t, []int{0, 1, 2, 5, 8}, res.Visited)
	assert.Equal(t, 5, res.Ops)
	assert.Equal(t, 4.0, res.PathWeight)
}

// TestDFS_NotShortest shows the first path found is kept even when a
// two-move route exists.
func TestDFS_NotShortest(t *testing.T) {
	res, err := dfs.DFS(open3(), gridgraph.UniformCostTable(), 0, 6)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 8, 7, 4, 3, 6}, res.Path)
	assert.Equal(t, len(res.Visited), res.Ops)
}

func TestDFS_Disconnected(t *testing.T) {
	g := gridgraph.MustParse("..#..\n..#..")
	res, err := dfs.DFS(g, gridgraph.UniformCostTable(), 0, 4)
	assert.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.ElementsMatch(t, g.Region(0), res.Visited)
}

func TestDFS_WallWithGap(t *testing.T) {
	g := gridgraph.MustParse(`
		.....
		.....
		##.##
		.....
		.....
	`)
	res, err := dfs.DFS(g, gridgraph.UniformCostTable(), 0, 20)
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, 0, res.Path[0])
	assert.Equal(t, 20, res.Path[len(res.Path)-1])
	assert.Contains(t, res.Path, 12)
	for i := 1; i < len(res.Path); i++ {
		assert.Equal(t, 1.0, g.Manhattan(res.Path[i-1], res.Path[i]))
	}
	for _, v := range res.Visited {
		assert.False(t, g.IsBlocked(v))
	}
}

func TestDFS_LongCorridor(t *testing.T) {
	// A 20000-cell corridor keeps 20000 frames on the stack at once.
	cells := [][]int{make([]int, 20000)}
	for i := range cells[0] {
		cells[0][i] = 1
	}
	g, err := gridgraph.FromInts(cells)
	require.NoError(t, err)
	res, err := dfs.DFS(g, gridgraph.UniformCostTable(), 0, g.Size()-1)
	require.NoError(t, err)
	assert.Len(t, res.Path, 20000)
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, nil, 0, 0)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = dfs.DFS(open3(), gridgraph.UniformCostTable(), 0, 9)
	assert.ErrorIs(t, err, search.ErrOutOfRange)

	stop := errors.New("stop")
	_, err = dfs.DFS(open3(), gridgraph.UniformCostTable(), 0, 8,
		search.WithOnVisit(func(n int) error {
			if n == 2 {
				return stop
			}
			return nil
		}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(open3(), gridgraph.UniformCostTable(), 0, 8, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIterative_Legacy(t *testing.T) {
	res, err := dfs.Iterative(open3(), gridgraph.UniformCostTable(), 0, 8)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6, 7, 8}, res.Path)
	assert.Equal(t, []int{0, 3, 6, 7}, res.Visited)
	assert.Equal(t, 12, res.Ops)

	g := gridgraph.MustParse("..#..\n..#..")
	res, err = dfs.Iterative(g, gridgraph.UniformCostTable(), 0, 4)
	assert.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.ElementsMatch(t, g.Region(0), res.Visited)
}

func TestIterativeDeepening_Open(t *testing.T) {
	res, err := dfs.IterativeDeepening(open3(), gridgraph.UniformCostTable(), 0, 8)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Depth)
	assert.Equal(t, []int{0, 1, 2, 5, 8}, res.Path)
	assert.Equal(t, []int{0, 1, 3, 2, 4, 6, 5, 7, 8}, res.Visited)
	assert.Equal(t, [][]int{
		{0},
		{0, 1, 3},
		{0, 1, 2, 4, 3, 6},
		{0, 1, 2, 5, 4, 7, 3},
		{0, 1, 2, 5, 8},
	}, res.Iterations)
}

func TestIterativeDeepening_MaxDepth(t *testing.T) {
	res, err := dfs.IterativeDeepening(open3(), gridgraph.UniformCostTable(), 0, 8, search.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, -1, res.Depth)
	assert.Empty(t, res.Path)
	assert.Len(t, res.Iterations, 3)
}

func TestIterativeDeepening_StopsWhenExhausted(t *testing.T) {
	g := gridgraph.MustParse("..#..\n..#..")
	res, err := dfs.IterativeDeepening(g, gridgraph.UniformCostTable(), 0, 4)
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Equal(t, -1, res.Depth)
	assert.Len(t, res.Iterations, 5)
	assert.ElementsMatch(t, g.Region(0), res.Visited)
}

func TestIterativeDeepening_Trivial(t *testing.T) {
	res, err := dfs.IterativeDeepening(open3(), gridgraph.UniformCostTable(), 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, res.Path)
	assert.Equal(t, 0, res.Depth)
}
