// Package day11 solves "Dumbo Octopus": a grid of octopuses whose energy
// cascades in flashes to their eight neighbors.
package day11

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/katalvlaran/aoc2021/gridgraph"
	"github.com/katalvlaran/aoc2021/matrix"
	"github.com/katalvlaran/aoc2021/puzzle"
)

//go:embed input.txt
var input []byte

func init() {
	puzzle.Register(puzzle.Day{Number: 11, Title: "Dumbo Octopus", Solve: Solve, Input: input})
}

// flashAt is the energy level above which an octopus flashes.
const flashAt = 9

// Cavern holds energy levels and the 8-neighborhood of every octopus.
type Cavern struct {
	energy *matrix.Dense[int]
	layout *gridgraph.GridGraph
}

// Parse reads the grid of energy levels.
func Parse(input []byte) (*Cavern, error) {
	grid, err := puzzle.DigitGrid(puzzle.Lines(input))
	if err != nil {
		return nil, err
	}
	energy, err := matrix.FromRows(grid)
	if err != nil {
		return nil, err
	}
	layout, err := gridgraph.From2D(grid, gridgraph.Conn8)
	if err != nil {
		return nil, err
	}

	return &Cavern{energy: energy, layout: layout}, nil
}

// Clone returns an independent copy of c.
func (c *Cavern) Clone() *Cavern {
	return &Cavern{energy: c.energy.Clone(), layout: c.layout}
}

// Size returns the number of octopuses.
func (c *Cavern) Size() int { return c.layout.Size() }

func (c *Cavern) get(idx int) int {
	x, y := c.layout.Coordinate(idx)
	v, _ := c.energy.At(y, x)
	return v
}

func (c *Cavern) set(idx, v int) {
	x, y := c.layout.Coordinate(idx)
	_ = c.energy.Set(y, x, v)
}

// Step advances one step and returns how many octopuses flashed.
//
//  1. Every energy level rises by one.
//  2. Each octopus above flashAt flashes once, raising all neighbors;
//     neighbors pushed over the limit flash in turn.
//  3. Every octopus that flashed drops to 0.
func (c *Cavern) Step() int {
	c.energy.Apply(func(_, _ int, v int) int { return v + 1 })

	var queue []int
	for idx := 0; idx < c.Size(); idx++ {
		if c.get(idx) > flashAt {
			queue = append(queue, idx)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range c.layout.Neighbors(queue[qi]) {
			v := c.get(n) + 1
			c.set(n, v)
			if v == flashAt+1 {
				queue = append(queue, n)
			}
		}
	}

	c.energy.Apply(func(_, _ int, v int) int {
		if v > flashAt {
			return 0
		}
		return v
	})

	return len(queue)
}

// String renders the energy grid as digit rows.
func (c *Cavern) String() string {
	b := make([]byte, 0, c.Size()+c.energy.Rows())
	for idx := 0; idx < c.Size(); idx++ {
		if idx > 0 && idx%c.energy.Cols() == 0 {
			b = append(b, '\n')
		}
		b = append(b, byte('0'+c.get(idx)))
	}
	return string(b)
}

// Flashes counts flashes over the given number of steps.
func Flashes(c *Cavern, steps int) int {
	c = c.Clone()
	n := 0
	for i := 0; i < steps; i++ {
		n += c.Step()
	}
	return n
}

// FirstSync returns the first step on which every octopus flashes. It gives
// up after limit steps.
func FirstSync(ctx context.Context, c *Cavern, limit int) (int, error) {
	c = c.Clone()
	for step := 1; step <= limit; step++ {
		if step%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if c.Step() == c.Size() {
			return step, nil
		}
	}
	return 0, fmt.Errorf("day11: no synchronized flash within %d steps", limit)
}

// Solve counts flashes after 100 steps and finds the first synchronized step.
func Solve(ctx context.Context, input []byte) (puzzle.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sync, err := FirstSync(ctx, c, 1_000_000)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(Flashes(c, 100), sync), nil
}
