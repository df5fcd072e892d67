// Package day01 solves "Sonar Sweep": counting how often a depth
// measurement, or a sliding-window sum of measurements, increases.
package day01

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 1, Title: "Sonar Sweep", Solve: Solve})
}

// Parse reads one depth per line.
func Parse(input []byte) ([]int, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	depths := make([]int, 0, len(lines))
	for i, l := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil {
			return nil, puzzle.Malformed(i+1, l, "depth: %v", err)
		}
		depths = append(depths, n)
	}

	return depths, nil
}

// CountIncreases counts how many window sums are larger than the previous
// one. Two consecutive windows share all but one element, so comparing the
// element entering with the element leaving is enough.
func CountIncreases(depths []int, window int) int {
	n := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}

	return n
}

// Solve counts single-measurement increases and 3-window increases.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	depths, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(CountIncreases(depths, 1), CountIncreases(depths, 3)), nil
}
