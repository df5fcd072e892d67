// Package day03 solves "Binary Diagnostic": deriving power consumption and
// life-support ratings from columns of bits.
package day03

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 3, Title: "Binary Diagnostic", Solve: Solve})
}

// Parse reads equal-width lines of '0' and '1'.
func Parse(input []byte) ([]string, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	width := len(strings.TrimSpace(lines[0]))
	out := make([]string, 0, len(lines))
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) != width || width == 0 {
			return nil, puzzle.Malformed(i+1, l, "width %d, want %d", len(l), width)
		}
		if strings.Trim(l, "01") != "" {
			return nil, puzzle.Malformed(i+1, l, "not a binary number")
		}
		out = append(out, l)
	}

	return out, nil
}

// mostCommon returns the most common bit at column col; ties give '1'.
func mostCommon(report []string, col int) byte {
	ones := 0
	for _, l := range report {
		if l[col] == '1' {
			ones++
		}
	}
	if 2*ones >= len(report) {
		return '1'
	}

	return '0'
}

// PowerConsumption returns gamma×epsilon.
func PowerConsumption(report []string) int64 {
	width := len(report[0])
	var gamma, epsilon int64
	for col := 0; col < width; col++ {
		gamma <<= 1
		epsilon <<= 1
		if mostCommon(report, col) == '1' {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}

	return gamma * epsilon
}

// rating filters report column by column, keeping lines whose bit equals the
// most common bit (or the least common one when least is set) until one is left.
// A column where every kept line has the same bit keeps them all.
func rating(report []string, least bool) int64 {
	kept := append([]string(nil), report...)
	for col := 0; col < len(report[0]) && len(kept) > 1; col++ {
		want := mostCommon(kept, col)
		if least {
			want ^= 1 // '0' <-> '1'
		}
		next := kept[:0:0]
		for _, l := range kept {
			if l[col] == want {
				next = append(next, l)
			}
		}
		if len(next) > 0 {
			kept = next
		}
	}
	v, _ := strconv.ParseInt(kept[0], 2, 64)

	return v
}

// LifeSupport returns the oxygen generator rating × CO2 scrubber rating.
func LifeSupport(report []string) int64 {
	return rating(report, false) * rating(report, true)
}

// Solve computes power consumption and life support rating.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	report, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(PowerConsumption(report), LifeSupport(report)), nil
}
