package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/core"
	"github.com/katalvlaran/aoc2021/dfs"
)

// chain builds an undirected graph from pairs.
func chain(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := chain(t, [2]string{"A", "B"})
	_, err = dfs.DFS(g, "Z")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_OrderDepthParent(t *testing.T) {
	g := chain(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "D", "A"}, res.Order)
	assert.Equal(t, 2, res.Depth["C"])
	assert.Equal(t, "B", res.Parent["C"])
	assert.NotContains(t, res.Parent, "A")
	assert.Len(t, res.Visited, 4)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"})

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Visited["C"])
	assert.True(t, res.Visited["B"])

	res, err = dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool { return id != "D" }))
	require.NoError(t, err)
	assert.False(t, res.Visited["D"])
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	g := chain(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	var pre []string
	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		pre = append(pre, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, pre)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)

	boom := errors.New("boom")
	res, err = dfs.DFS(g, "A", dfs.WithOnExit(func(id string) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	g := chain(t, [2]string{"A", "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_LongChain(t *testing.T) {
	const n = 50000
	pairs := make([][2]string, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]string{strconv.Itoa(i - 1), strconv.Itoa(i)})
	}
	g := chain(t, pairs...)

	res, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	assert.Equal(t, strconv.Itoa(n-1), res.Order[0])
	assert.Equal(t, "0", res.Order[n-1])
	assert.Equal(t, n-1, res.Depth[strconv.Itoa(n-1)])
	assert.Equal(t, strconv.Itoa(n-2), res.Parent[strconv.Itoa(n-1)])
}
