package day10_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/days/day10"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const sample = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`

func TestCheck(t *testing.T) {
	cases := []struct {
		line string
		want day10.Result
	}{
		{"([])", day10.Result{Status: day10.Complete}},
		{"{([(<{}[<>[]}>{[]{[(<()>", day10.Result{Status: day10.Corrupted, Illegal: '}'}},
		{"[[<[([]))<([[{}[[()]]]", day10.Result{Status: day10.Corrupted, Illegal: ')'}},
		{"[({(<(())[]>[[{[]{<()<>>", day10.Result{Status: day10.Incomplete, Completion: "}}]])})]"}},
		{"())", day10.Result{Status: day10.Corrupted, Illegal: ')'}},
		{")", day10.Result{Status: day10.Corrupted, Illegal: ')'}},
		{"(a)", day10.Result{Status: day10.Invalid, Illegal: 'a'}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, day10.Check(tc.line), tc.line)
	}
}

func TestCompletionScore(t *testing.T) {
	assert.Equal(t, 294, day10.CompletionScore("])}>"))
	assert.Equal(t, 288957, day10.CompletionScore("}}]])})]"))
}

func TestScores(t *testing.T) {
	syntax, median := day10.Scores(puzzle.Lines([]byte(sample)))
	assert.Equal(t, 26397, syntax)
	assert.Equal(t, 288957, median)

	syntax, median = day10.Scores([]string{"()", "x"})
	assert.Zero(t, syntax)
	assert.Zero(t, median)
}

func TestSolve(t *testing.T) {
	ans, err := day10.Solve(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "26397", Part2: "288957"}, ans)
}
