// Package day08 solves "Seven Segment Search": untangling scrambled
// seven-segment wiring to read four-digit displays.
package day08

import (
	"context"
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 8, Title: "Seven Segment Search", Solve: Solve})
}

// Pattern is a set of lit segments, bit i standing for segment 'a'+i.
type Pattern uint8

// ParsePattern converts a string of segment letters a..g into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	for _, c := range s {
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("segment %q outside a..g", c)
		}
		p |= 1 << (c - 'a')
	}
	return p, nil
}

// Len returns the number of lit segments.
func (p Pattern) Len() int { return bits.OnesCount8(uint8(p)) }

// Contains reports whether every segment of q is lit in p.
func (p Pattern) Contains(q Pattern) bool { return p&q == q }

// Entry is one display: ten unique signal patterns and four output digits.
type Entry struct {
	Signals [10]Pattern
	Output  [4]Pattern
}

// Parse reads "<10 patterns> | <4 patterns>" lines.
func Parse(input []byte) ([]Entry, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	entries := make([]Entry, 0, len(lines))
	for i, l := range lines {
		left, right, ok := strings.Cut(l, "|")
		if !ok {
			return nil, puzzle.Malformed(i+1, l, "missing '|'")
		}
		sig, out := strings.Fields(left), strings.Fields(right)
		if len(sig) != 10 || len(out) != 4 {
			return nil, puzzle.Malformed(i+1, l, "want 10 patterns and 4 digits, got %d and %d", len(sig), len(out))
		}
		var e Entry
		for j, s := range sig {
			p, err := ParsePattern(s)
			if err != nil {
				return nil, puzzle.Malformed(i+1, l, "%v", err)
			}
			e.Signals[j] = p
		}
		for j, s := range out {
			p, err := ParsePattern(s)
			if err != nil {
				return nil, puzzle.Malformed(i+1, l, "%v", err)
			}
			e.Output[j] = p
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// CountEasy counts output digits 1, 4, 7 and 8, the ones with a unique
// segment count.
func CountEasy(entries []Entry) int {
	n := 0
	for _, e := range entries {
		for _, p := range e.Output {
			switch p.Len() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n
}

// Decode works out which pattern is which digit and returns the output value.
//
// 1, 4, 7 and 8 have unique lengths. Among six-segment digits, 9 contains 4,
// 0 contains 1 but not 4, and 6 is left. Among five-segment digits, 3
// contains 1, 5 is contained in 6, and 2 is left.
func (e Entry) Decode() (int, error) {
	var one, four, six Pattern
	for _, p := range e.Signals {
		switch p.Len() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	if one == 0 || four == 0 {
		return 0, fmt.Errorf("%w: patterns for 1 and 4 missing", puzzle.ErrMalformedInput)
	}
	for _, p := range e.Signals {
		if p.Len() == 6 && !p.Contains(one) {
			six = p
		}
	}

	digit := make(map[Pattern]int, 10)
	for _, p := range e.Signals {
		switch p.Len() {
		case 2:
			digit[p] = 1
		case 3:
			digit[p] = 7
		case 4:
			digit[p] = 4
		case 7:
			digit[p] = 8
		case 6:
			switch {
			case p.Contains(four):
				digit[p] = 9
			case p.Contains(one):
				digit[p] = 0
			default:
				digit[p] = 6
			}
		case 5:
			switch {
			case p.Contains(one):
				digit[p] = 3
			case six.Contains(p):
				digit[p] = 5
			default:
				digit[p] = 2
			}
		}
	}

	value := 0
	for _, p := range e.Output {
		d, ok := digit[p]
		if !ok {
			return 0, fmt.Errorf("%w: output pattern %07b matches no signal", puzzle.ErrMalformedInput, p)
		}
		value = value*10 + d
	}

	return value, nil
}

// SumOutputs decodes every entry and adds the output values.
func SumOutputs(entries []Entry) (int, error) {
	sum := 0
	for i, e := range entries {
		v, err := e.Decode()
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

// Solve counts easy digits and sums the decoded outputs.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	entries, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum, err := SumOutputs(entries)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(CountEasy(entries), sum), nil
}
