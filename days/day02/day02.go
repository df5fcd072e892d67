// Package day02 solves "Dive!": steering a submarine with
// forward/down/up commands.
package day02

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 2, Title: "Dive!", Solve: Solve})
}

// Direction of a command.
type Direction string

// Known directions.
const (
	Forward Direction = "forward"
	Down    Direction = "down"
	Up      Direction = "up"
)

// Command is one line of the course.
type Command struct {
	Dir   Direction
	Units int
}

// Parse reads "<direction> <units>" lines.
func Parse(input []byte) ([]Command, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	cmds := make([]Command, 0, len(lines))
	for i, l := range lines {
		fields := strings.Fields(l)
		if len(fields) != 2 {
			return nil, puzzle.Malformed(i+1, l, "want 2 fields, got %d", len(fields))
		}
		dir := Direction(fields[0])
		switch dir {
		case Forward, Down, Up:
		default:
			return nil, puzzle.Malformed(i+1, l, "unknown direction %q", fields[0])
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, puzzle.Malformed(i+1, l, "units: %v", err)
		}
		cmds = append(cmds, Command{Dir: dir, Units: n})
	}

	return cmds, nil
}

// Part1 treats down/up as direct depth changes and returns horizontal×depth.
func Part1(cmds []Command) int {
	var pos, depth int
	for _, c := range cmds {
		switch c.Dir {
		case Forward:
			pos += c.Units
		case Down:
			depth += c.Units
		case Up:
			depth -= c.Units
		}
	}

	return pos * depth
}

// Part2 treats down/up as aim changes; forward moves by aim×units in depth.
func Part2(cmds []Command) int {
	var pos, depth, aim int
	for _, c := range cmds {
		switch c.Dir {
		case Forward:
			pos += c.Units
			depth += aim * c.Units
		case Down:
			aim += c.Units
		case Up:
			aim -= c.Units
		}
	}

	return pos * depth
}

// Solve runs both interpretations of the course.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	cmds, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(Part1(cmds), Part2(cmds)), nil
}
