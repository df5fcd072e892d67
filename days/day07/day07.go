// Package day07 solves "The Treachery of Whales": aligning crab submarines
// at the position that costs the least fuel.
package day07

import (
	"context"
	"math"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 7, Title: "The Treachery of Whales", Solve: Solve})
}

// Parse reads the comma-separated crab positions.
func Parse(input []byte) ([]int, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	return puzzle.CommaInts(lines[0])
}

// Linear costs one unit of fuel per step.
func Linear(dist int) int { return dist }

// Triangular costs 1 for the first step, 2 for the second, and so on.
func Triangular(dist int) int { return dist * (dist + 1) / 2 }

// MinFuel tries every target between the leftmost and rightmost crab and
// returns the cheapest total fuel under cost.
func MinFuel(crabs []int, cost func(dist int) int) int {
	lo, hi := puzzle.MinMax(crabs)
	best := math.MaxInt
	for target := lo; target <= hi; target++ {
		fuel := 0
		for _, c := range crabs {
			fuel += cost(puzzle.Abs(c - target))
			if fuel >= best {
				break
			}
		}
		if fuel < best {
			best = fuel
		}
	}

	return best
}

// Solve computes the minimum fuel under linear then triangular cost.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	crabs, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(MinFuel(crabs, Linear), MinFuel(crabs, Triangular)), nil
}
