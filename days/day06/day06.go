// Package day06 solves "Lanternfish": simulating an exponentially growing
// school of fish by counting fish per timer value.
package day06

import (
	"context"
	_ "embed"

	"github.com/katalvlaran/aoc2021/puzzle"
)

//go:embed input.txt
var input []byte

func init() {
	puzzle.Register(puzzle.Day{Number: 6, Title: "Lanternfish", Solve: Solve, Input: input})
}

const (
	// resetTimer is the timer of a fish that just spawned.
	resetTimer = 6
	// newbornTimer is the timer of a freshly spawned fish.
	newbornTimer = 8
)

// School counts fish by internal timer.
type School [newbornTimer + 1]uint64

// Parse reads a comma-separated list of timers (0..8).
func Parse(input []byte) (School, error) {
	var s School
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return s, puzzle.ErrEmptyInput
	}
	timers, err := puzzle.CommaInts(lines[0])
	if err != nil {
		return s, err
	}
	for _, t := range timers {
		if t < 0 || t > newbornTimer {
			return s, puzzle.Malformed(1, lines[0], "timer %d out of range 0..%d", t, newbornTimer)
		}
		s[t]++
	}

	return s, nil
}

// Grow advances the school by days and returns the new counts.
func (s School) Grow(days int) School {
	for d := 0; d < days; d++ {
		spawning := s[0]
		copy(s[:], s[1:])
		s[newbornTimer] = spawning
		s[resetTimer] += spawning
	}

	return s
}

// Total returns the population size.
func (s School) Total() uint64 {
	return puzzle.Sum(s[:])
}

// Solve counts the fish after 80 and 256 days.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(s.Grow(80).Total(), s.Grow(256).Total()), nil
}
