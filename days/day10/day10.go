// Package day10 solves "Syntax Scoring": checking bracket chunks for
// corruption and completing the incomplete ones.
package day10

import (
	"context"
	"sort"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 10, Title: "Syntax Scoring", Solve: Solve})
}

// Status classifies a navigation line.
type Status int

const (
	// Complete lines close every chunk they open.
	Complete Status = iota
	// Incomplete lines end with chunks still open.
	Incomplete
	// Corrupted lines close a chunk with the wrong character, or close
	// a chunk that was never opened.
	Corrupted
	// Invalid lines contain a character that is not a bracket.
	Invalid
)

// Result is the outcome of checking one line.
type Result struct {
	Status Status
	// Illegal is the first wrong closing character (Corrupted) or the
	// unknown character (Invalid).
	Illegal rune
	// Completion closes the open chunks (Incomplete).
	Completion string
}

var closer = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

var (
	corruptedPoints  = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completionPoints = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// Check scans line with a stack of expected closers.
func Check(line string) Result {
	var stack []rune
	for _, c := range line {
		if want, ok := closer[c]; ok {
			stack = append(stack, want)
			continue
		}
		if _, ok := corruptedPoints[c]; !ok {
			return Result{Status: Invalid, Illegal: c}
		}
		if len(stack) == 0 || stack[len(stack)-1] != c {
			return Result{Status: Corrupted, Illegal: c}
		}
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		return Result{Status: Complete}
	}
	completion := make([]rune, len(stack))
	for i := range stack {
		completion[i] = stack[len(stack)-1-i]
	}

	return Result{Status: Incomplete, Completion: string(completion)}
}

// CompletionScore scores a completion string: ×5 then add the character's points.
func CompletionScore(completion string) int {
	score := 0
	for _, c := range completion {
		score = score*5 + completionPoints[c]
	}
	return score
}

// Scores returns the total syntax error score and the median completion score.
// Invalid lines are ignored. The median is 0 without incomplete lines.
func Scores(lines []string) (syntax int, median int) {
	var completions []int
	for _, l := range lines {
		r := Check(l)
		switch r.Status {
		case Corrupted:
			syntax += corruptedPoints[r.Illegal]
		case Incomplete:
			completions = append(completions, CompletionScore(r.Completion))
		}
	}
	if len(completions) == 0 {
		return syntax, 0
	}
	sort.Ints(completions)

	return syntax, completions[len(completions)/2]
}

// Solve scores corrupted lines and completes the incomplete ones.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}
	syntax, median := Scores(lines)

	return puzzle.NewAnswer(syntax, median), nil
}
