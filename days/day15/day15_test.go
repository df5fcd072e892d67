package day15_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/days/day15"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const sample = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
`

func TestWrap(t *testing.T) {
	assert.Equal(t, 8, day15.Wrap(8, 0, 0))
	assert.Equal(t, 9, day15.Wrap(8, 1, 0))
	assert.Equal(t, 1, day15.Wrap(8, 1, 1))
	assert.Equal(t, 7, day15.Wrap(9, 4, 3))
}

func TestLowestRisk(t *testing.T) {
	cave, err := day15.Parse([]byte(sample))
	require.NoError(t, err)

	risk, err := day15.LowestRisk(cave)
	require.NoError(t, err)
	assert.Equal(t, int64(40), risk)

	full, err := day15.FullCave(cave)
	require.NoError(t, err)
	assert.Equal(t, 50, full.Width)
	v, err := full.Value(49, 49)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	risk, err = day15.LowestRisk(full)
	require.NoError(t, err)
	assert.Equal(t, int64(315), risk)
}

func TestRoute(t *testing.T) {
	cave, err := day15.Parse([]byte(sample))
	require.NoError(t, err)

	path, risk, err := day15.Route(cave)
	require.NoError(t, err)
	assert.Equal(t, int64(40), risk)
	require.NotEmpty(t, path)
	assert.Equal(t, "0,0", path[0])
	assert.Equal(t, "9,9", path[len(path)-1])

	var sum int64
	px, py := 0, 0
	for _, id := range path[1:] {
		var x, y int
		_, err := fmt.Sscanf(id, "%d,%d", &x, &y)
		require.NoError(t, err)
		assert.Equal(t, 1, abs(x-px)+abs(y-py), "step %s is not adjacent", id)
		v, err := cave.Value(x, y)
		require.NoError(t, err)
		sum += int64(v)
		px, py = x, y
	}
	assert.Equal(t, risk, sum)
}

func TestRoute_SingleCell(t *testing.T) {
	cave, err := day15.Parse([]byte("7\n"))
	require.NoError(t, err)

	path, risk, err := day15.Route(cave)
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0"}, path)
	assert.Zero(t, risk)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestSolve(t *testing.T) {
	ans, err := day15.Solve(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "40", Part2: "315"}, ans)
}
