// Package day05 solves "Hydrothermal Venture": counting points where at
// least two vent lines overlap.
package day05

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 5, Title: "Hydrothermal Venture", Solve: Solve})
}

// Segment is a vent line between two inclusive end points.
type Segment struct {
	From, To puzzle.Point
}

// Diagonal reports whether the segment is at 45°.
func (s Segment) Diagonal() bool {
	return s.From.X != s.To.X && s.From.Y != s.To.Y
}

// Points returns every grid point covered by the segment, From first.
func (s Segment) Points() []puzzle.Point {
	step := puzzle.Point{X: puzzle.Sign(s.To.X - s.From.X), Y: puzzle.Sign(s.To.Y - s.From.Y)}
	n := max(puzzle.Abs(s.To.X-s.From.X), puzzle.Abs(s.To.Y-s.From.Y))
	out := make([]puzzle.Point, 0, n+1)
	for p, i := s.From, 0; i <= n; i++ {
		out = append(out, p)
		p = p.Add(step)
	}

	return out
}

// Parse reads "x1,y1 -> x2,y2" lines. Lines that are neither horizontal,
// vertical nor exactly diagonal are malformed.
func Parse(input []byte) ([]Segment, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	segs := make([]Segment, 0, len(lines))
	for i, l := range lines {
		var s Segment
		if _, err := fmt.Sscanf(strings.TrimSpace(l), "%d,%d -> %d,%d", &s.From.X, &s.From.Y, &s.To.X, &s.To.Y); err != nil {
			return nil, puzzle.Malformed(i+1, l, "%v", err)
		}
		if s.Diagonal() && puzzle.Abs(s.To.X-s.From.X) != puzzle.Abs(s.To.Y-s.From.Y) {
			return nil, puzzle.Malformed(i+1, l, "line is not at 45°")
		}
		segs = append(segs, s)
	}

	return segs, nil
}

// Overlaps counts the points covered by two or more segments. Diagonal
// segments are ignored unless withDiagonals is set.
func Overlaps(segs []Segment, withDiagonals bool) int {
	cover := make(map[puzzle.Point]int)
	n := 0
	for _, s := range segs {
		if s.Diagonal() && !withDiagonals {
			continue
		}
		for _, p := range s.Points() {
			cover[p]++
			if cover[p] == 2 {
				n++
			}
		}
	}

	return n
}

// Solve counts overlaps of axis-aligned lines, then of all lines.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	segs, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(Overlaps(segs, false), Overlaps(segs, true)), nil
}
