package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits input into lines, dropping carriage returns and any trailing
// empty lines. Interior empty lines are kept.
func Lines(input []byte) []string {
	s := strings.ReplaceAll(string(input), "\r", "")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// Blocks groups lines into runs separated by blank lines. Empty runs are dropped.
func Blocks(input []byte) [][]string {
	var out [][]string
	var cur []string
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// Ints parses every field as a base-10 integer.
func Ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, &ParseError{Text: f, Err: fmt.Errorf("%w: field %d: %v", ErrMalformedInput, i+1, err)}
		}
		out[i] = n
	}

	return out, nil
}

// CommaInts parses a comma-separated list of integers, such as "3,4,3,1,2".
func CommaInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}

	return Ints(strings.Split(s, ","))
}

// DigitGrid converts lines of decimal digits into a rectangular grid.
func DigitGrid(lines []string) ([][]int, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	width := len(lines[0])
	grid := make([][]int, len(lines))
	for y, l := range lines {
		if len(l) != width {
			return nil, Malformed(y+1, l, "width %d, want %d", len(l), width)
		}
		row := make([]int, width)
		for x := 0; x < width; x++ {
			c := l[x]
			if c < '0' || c > '9' {
				return nil, Malformed(y+1, l, "column %d: %q is not a digit", x+1, c)
			}
			row[x] = int(c - '0')
		}
		grid[y] = row
	}

	return grid, nil
}
