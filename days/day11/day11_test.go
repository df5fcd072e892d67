package day11_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/days/day11"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const sample = `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

func TestStep_Small(t *testing.T) {
	c, err := day11.Parse([]byte("11111\n19991\n19191\n19991\n11111\n"))
	require.NoError(t, err)

	assert.Equal(t, 9, c.Step())
	assert.Equal(t, "34543\n40004\n50005\n40004\n34543", c.String())
	assert.Equal(t, 0, c.Step())
	assert.Equal(t, "45654\n51115\n61116\n51115\n45654", c.String())
}

func TestFlashesAndSync(t *testing.T) {
	c, err := day11.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 204, day11.Flashes(c, 10))
	assert.Equal(t, 1656, day11.Flashes(c, 100))

	step, err := day11.FirstSync(context.Background(), c, 1000)
	require.NoError(t, err)
	assert.Equal(t, 195, step)

	_, err = day11.FirstSync(context.Background(), c, 10)
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	ans, err := day11.Solve(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "1656", Part2: "195"}, ans)
}

func TestEmbeddedInput(t *testing.T) {
	d, err := puzzle.Lookup(11)
	require.NoError(t, err)
	c, err := day11.Parse(d.Input)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Size())

	ans, err := day11.Solve(context.Background(), d.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "1729", Part2: "237"}, ans)
}
