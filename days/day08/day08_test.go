package day08_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/days/day08"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const sample = `be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc
fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg
fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb
aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea
fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb
dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe
bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef
egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb
gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce
`

func TestParts(t *testing.T) {
	entries, err := day08.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 26, day08.CountEasy(entries))

	sum, err := day08.SumOutputs(entries)
	require.NoError(t, err)
	assert.Equal(t, 61229, sum)
}

func TestDecode_Single(t *testing.T) {
	entries, err := day08.Parse([]byte("acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf\n"))
	require.NoError(t, err)
	v, err := entries[0].Decode()
	require.NoError(t, err)
	assert.Equal(t, 5353, v)
}

func TestSolve(t *testing.T) {
	ans, err := day08.Solve(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "26", Part2: "61229"}, ans)
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{
		"ab cd\n",
		"ab | cd\n",
		"ab ab ab ab ab ab ab ab ab xyz | ab ab ab ab\n",
	} {
		_, err := day08.Parse([]byte(in))
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
