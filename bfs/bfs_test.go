package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// assertPath checks endpoints, 4-adjacency and that no blocked cell is visited.
func assertPath(t *testing.T, g *gridgraph.Grid, res *search.Result, src, dst int) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	assert.Equal(t, src, res.Path[0])
	assert.Equal(t, dst, res.Path[len(res.Path)-1])
	for i := 1; i < len(res.Path); i++ {
		assert.Equal(t, 1.0, g.Manhattan(res.Path[i-1], res.Path[i]), "step %d", i)
	}
	for _, v := range res.Visited {
		assert.False(t, g.IsBlocked(v), "visited blocked cell %d", v)
	}
}

func TestBFS_OpenGrid3x3(t *testing.T) {
	g := gridgraph.MustParse("...\n...\n...")
	res, err := bfs.BFS(g, gridgraph.DefaultCostTable(), 0, 8)
	require.NoError(t, err)
	assertPath(t, g, res, 0, 8)
	assert.Equal(t, []int{0, 1, 2, 5, 8}, res.Path)
	assert.Equal(t, 4.0, res.PathWeight)
	assert.Equal(t, []int{0, 1, 3, 2, 4, 6, 5, 7, 8}, res.Visited)
	assert.Equal(t, 18, res.Ops)
}

// TestBFS_OpenGridHops checks the (R-1)+(C-1) hop count corner to corner.
func TestBFS_OpenGridHops(t *testing.T) {
	cases := []struct{ rows, cols int }{{1, 7}, {4, 6}, {9, 3}, {12, 12}}
	for _, tc := range cases {
		cells := make([][]int, tc.rows)
		for r := range cells {
			cells[r] = make([]int, tc.cols)
			for c := range cells[r] {
				cells[r][c] = 1
			}
		}
		g, err := gridgraph.FromInts(cells)
		require.NoError(t, err)
		res, err := bfs.BFS(g, gridgraph.UniformCostTable(), 0, g.Size()-1)
		require.NoError(t, err)
		assert.Equal(t, tc.rows-1+tc.cols-1, res.Hops(), "%dx%d", tc.rows, tc.cols)
	}
}

func TestBFS_WallWithGap(t *testing.T) {
	g := gridgraph.MustParse(`
		.....
		.....
		##.##
		.....
		.....
	`)
	res, err := bfs.BFS(g, gridgraph.UniformCostTable(), 0, 20)
	require.NoError(t, err)
	assertPath(t, g, res, 0, 20)
	assert.Contains(t, res.Path, 12)
	assert.Equal(t, 8, res.Hops())
}

func TestBFS_Disconnected(t *testing.T) {
	g := gridgraph.MustParse(`
		..#..
		..#..
	`)
	res, err := bfs.BFS(g, gridgraph.UniformCostTable(), 0, 4)
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.False(t, res.Found())
	assert.ElementsMatch(t, g.Region(0), res.Visited)
}

func TestBFS_IgnoresWeights(t *testing.T) {
	g := gridgraph.MustParse(".~.\n...")
	res, err := bfs.BFS(g, gridgraph.DefaultCostTable(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
	assert.Equal(t, 26.0, res.PathWeight)
}

func TestBFS_DegenerateInputs(t *testing.T) {
	g := gridgraph.MustParse("#..\n...")
	costs := gridgraph.UniformCostTable()

	res, err := bfs.BFS(g, costs, 0, 5)
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.Visited)

	res, err = bfs.BFS(g, costs, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, res.Path)
	assert.Equal(t, []int{4}, res.Visited)

	// A blocked dst is simply unreachable.
	res, err = bfs.BFS(g, costs, 5, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Len(t, res.Visited, 5)

	_, err = bfs.BFS(g, costs, 0, 6)
	assert.ErrorIs(t, err, search.ErrOutOfRange)
	_, err = bfs.BFS(nil, costs, 0, 1)
	assert.ErrorIs(t, err, search.ErrInvalidArgument)
}

func TestBFS_HookAbort(t *testing.T) {
	g := gridgraph.MustParse("....\n....")
	stop := errors.New("enough")
	res, err := bfs.BFS(g, gridgraph.UniformCostTable(), 0, 7,
		search.WithOnVisit(func(n int) error {
			if n == 2 {
				return stop
			}
			return nil
		}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrHookAborted)
	assert.ErrorIs(t, err, stop)
}

func TestBFS_CancelMidSearch(t *testing.T) {
	g := gridgraph.MustParse("....\n....\n....")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pops := 0
	_, err := bfs.BFS(g, gridgraph.UniformCostTable(), 0, 11,
		search.WithContext(ctx),
		search.WithOnDequeue(func(int) {
			pops++
			if pops == 3 {
				cancel()
			}
		}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, pops)
}

func TestBFS_EnqueueHookMatchesVisited(t *testing.T) {
	g := gridgraph.MustParse("..\n..")
	var enq []int
	res, err := bfs.BFS(g, gridgraph.UniformCostTable(), 0, 3,
		search.WithOnEnqueue(func(n int) { enq = append(enq, n) }))
	require.NoError(t, err)
	assert.Equal(t, res.Visited, enq)
}
