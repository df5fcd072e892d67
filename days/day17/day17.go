// Package day17 solves "Trick Shot": launching a probe so that it lands in
// a target area under drag and gravity.
package day17

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

//go:embed input.txt
var input []byte

func init() {
	puzzle.Register(puzzle.Day{Number: 17, Title: "Trick Shot", Solve: Solve, Input: input})
}

// Target is the inclusive landing area.
type Target struct {
	MinX, MaxX, MinY, MaxY int
}

// Contains reports whether p lies inside the target.
func (t Target) Contains(p puzzle.Point) bool {
	return p.X >= t.MinX && p.X <= t.MaxX && p.Y >= t.MinY && p.Y <= t.MaxY
}

// Parse reads "target area: x=A..B, y=C..D". The target must lie to the
// right of and below the launch point.
func Parse(input []byte) (Target, error) {
	var t Target
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return t, puzzle.ErrEmptyInput
	}
	l := strings.TrimSpace(lines[0])
	if _, err := fmt.Sscanf(l, "target area: x=%d..%d, y=%d..%d", &t.MinX, &t.MaxX, &t.MinY, &t.MaxY); err != nil {
		return t, puzzle.Malformed(1, l, "%v", err)
	}
	if t.MinX > t.MaxX {
		t.MinX, t.MaxX = t.MaxX, t.MinX
	}
	if t.MinY > t.MaxY {
		t.MinY, t.MaxY = t.MaxY, t.MinY
	}
	if t.MinX <= 0 || t.MaxY >= 0 {
		return t, puzzle.Malformed(1, l, "target must be right of and below the origin")
	}

	return t, nil
}

// Launch simulates a probe fired with velocity v. It reports whether any
// step lands inside t and the highest y reached.
//
// Each step: position += velocity, x velocity drags one toward 0, y velocity
// drops by one. The flight is over once the probe is right of or below
// the target.
func Launch(t Target, v puzzle.Point) (hit bool, apex int) {
	var p puzzle.Point
	for p.X <= t.MaxX && p.Y >= t.MinY {
		p = p.Add(v)
		v.X -= puzzle.Sign(v.X)
		v.Y--
		apex = max(apex, p.Y)
		if t.Contains(p) {
			return true, apex
		}
	}
	return false, apex
}

// Search tries every velocity that can possibly hit t and returns the
// highest apex among hits and the number of hitting velocities.
//
// vx above MaxX overshoots on the first step. vy below MinY undershoots on
// the first step, and vy ≥ -MinY comes back through y=0 with speed above
// -MinY and skips the target.
func Search(t Target) (apex, hits int) {
	for vx := 1; vx <= t.MaxX; vx++ {
		for vy := t.MinY; vy < -t.MinY; vy++ {
			hit, top := Launch(t, puzzle.Point{X: vx, Y: vy})
			if !hit {
				continue
			}
			hits++
			apex = max(apex, top)
		}
	}
	return apex, hits
}

// Solve finds the highest apex and counts every hitting velocity.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	t, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	apex, hits := Search(t)

	return puzzle.NewAnswer(apex, hits), nil
}
