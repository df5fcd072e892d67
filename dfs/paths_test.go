package dfs_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/core"
	"github.com/katalvlaran/aoc2021/dfs"
)

func caves(t *testing.T, lines string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range strings.Fields(lines) {
		a, b, ok := strings.Cut(l, "-")
		require.True(t, ok)
		_, err := g.AddEdge(a, b, 0)
		require.NoError(t, err)
	}
	return g
}

func small(id string) bool { return unicode.IsLower(rune(id[0])) }

func TestCountPaths_Caves(t *testing.T) {
	cases := []struct {
		name  string
		lines string
		once  int
		twice int
	}{
		{"small", "start-A start-b A-c A-b b-d A-end b-end", 10, 36},
		{"medium", "dc-end HN-start start-kj dc-start dc-HN LN-dc HN-end kj-sa kj-HN kj-dc", 19, 103},
		{"large", "fs-end he-DX fs-he start-DX pj-DX end-zg zg-sl zg-pj pj-he RW-he fs-DX pj-RW zg-RW start-pj he-WI zg-he pj-fs start-RW", 226, 3509},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := caves(t, tc.lines)

			n, err := dfs.CountPaths(g, "start", "end", dfs.WithLimited(small))
			require.NoError(t, err)
			assert.Equal(t, tc.once, n)

			n, err = dfs.CountPaths(g, "start", "end", dfs.WithLimited(small), dfs.WithRevisits(1))
			require.NoError(t, err)
			assert.Equal(t, tc.twice, n)
		})
	}
}

func TestCountPaths_SimplePathsByDefault(t *testing.T) {
	// square A-B-D, A-C-D plus diagonal B-C
	g := caves(t, "A-B B-D A-C C-D B-C")
	var walks []string
	n, err := dfs.CountPaths(g, "A", "D", dfs.WithOnPath(func(p []string) error {
		walks = append(walks, strings.Join(p, ""))
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.ElementsMatch(t, []string{"ABD", "ABCD", "ACD", "ACBD"}, walks)
}

func TestCountPaths_Errors(t *testing.T) {
	_, err := dfs.CountPaths(nil, "a", "b")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := caves(t, "a-b")
	_, err = dfs.CountPaths(g, "x", "b")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	_, err = dfs.CountPaths(g, "a", "x")
	assert.ErrorIs(t, err, dfs.ErrEndVertexNotFound)

	stop := errors.New("stop")
	_, err = dfs.CountPaths(g, "a", "b", dfs.WithOnPath(func([]string) error { return stop }))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.CountPaths(g, "a", "b", dfs.WithPathContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
