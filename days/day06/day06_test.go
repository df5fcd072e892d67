package day06_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/days/day06"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func TestGrow(t *testing.T) {
	s, err := day06.Parse([]byte("3,4,3,1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), s.Total())
	assert.Equal(t, uint64(26), s.Grow(18).Total())
	assert.Equal(t, uint64(5934), s.Grow(80).Total())
	assert.Equal(t, uint64(26984457539), s.Grow(256).Total())
}

func TestSolve(t *testing.T) {
	ans, err := day06.Solve(context.Background(), []byte("3,4,3,1,2"))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "5934", Part2: "26984457539"}, ans)
}

func TestEmbeddedInput(t *testing.T) {
	d, err := puzzle.Lookup(6)
	require.NoError(t, err)
	require.NotEmpty(t, d.Input)

	s, err := day06.Parse(d.Input)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), s.Total())

	ans, err := day06.Solve(context.Background(), d.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "388739", Part2: "1741362314973"}, ans)
}

func TestParse_Errors(t *testing.T) {
	_, err := day06.Parse([]byte("3,9"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = day06.Parse(nil)
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)
}
