package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestParseCell(t *testing.T) {
	g := gridgraph.MustParse("...\n...")

	v, err := parseCell(g, "1,2")
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = parseCell(g, " 0 , 1 ")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	for _, bad := range []string{"", "1", "a,1", "1,b", "2,0", "0,-1"} {
		_, err := parseCell(g, bad)
		assert.Error(t, err, bad)
	}
	_, err = parseCell(g, "2,0")
	assert.ErrorIs(t, err, gridgraph.ErrOutOfRange)
}

func TestGenerateWorld(t *testing.T) {
	g, err := generateWorld("16x24", 3)
	require.NoError(t, err)
	assert.Equal(t, 16, g.Rows)
	assert.Equal(t, 24, g.Cols)
	assert.Equal(t, gridgraph.Normal, g.At(0))
	assert.Equal(t, gridgraph.Normal, g.At(g.Size()-1))

	for _, bad := range []string{"16", "ax2", "2xb", "0x4"} {
		_, err := generateWorld(bad, 1)
		assert.Error(t, err, bad)
	}
}
