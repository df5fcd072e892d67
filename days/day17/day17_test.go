package day17_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/days/day17"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const sample = "target area: x=20..30, y=-10..-5\n"

func TestLaunch(t *testing.T) {
	target, err := day17.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, day17.Target{MinX: 20, MaxX: 30, MinY: -10, MaxY: -5}, target)

	hit, apex := day17.Launch(target, puzzle.Point{X: 6, Y: 9})
	assert.True(t, hit)
	assert.Equal(t, 45, apex)

	hit, _ = day17.Launch(target, puzzle.Point{X: 7, Y: 2})
	assert.True(t, hit)
	hit, _ = day17.Launch(target, puzzle.Point{X: 9, Y: 0})
	assert.True(t, hit)
	hit, _ = day17.Launch(target, puzzle.Point{X: 17, Y: -4})
	assert.False(t, hit)
}

func TestSearch(t *testing.T) {
	target, err := day17.Parse([]byte(sample))
	require.NoError(t, err)
	apex, hits := day17.Search(target)
	assert.Equal(t, 45, apex)
	assert.Equal(t, 112, hits)
}

func TestSolve(t *testing.T) {
	ans, err := day17.Solve(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "45", Part2: "112"}, ans)

	d, err := puzzle.Lookup(17)
	require.NoError(t, err)
	ans, err = day17.Solve(context.Background(), d.Input)
	require.NoError(t, err)
	// apex of a target reaching y=-118 is 118·117/2
	assert.Equal(t, puzzle.Answer{Part1: "6903", Part2: "2351"}, ans)
}

func TestParse_Errors(t *testing.T) {
	_, err := day17.Parse([]byte("target area: x=20..30\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = day17.Parse([]byte("target area: x=20..30, y=5..10\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
