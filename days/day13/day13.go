// Package day13 solves "Transparent Origami": folding a transparent sheet
// of dots to reveal an activation code.
package day13

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/matrix"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 13, Title: "Transparent Origami", Solve: Solve})
}

// Fold is one instruction: along a vertical line x=Line (Axis 'x') or a
// horizontal line y=Line (Axis 'y').
type Fold struct {
	Axis byte
	Line int
}

// Manual is the parsed sheet: dot positions and fold instructions.
type Manual struct {
	Dots  []puzzle.Point
	Folds []Fold
}

// Parse reads "x,y" dots, a blank line, then "fold along x=N" / "fold along y=N".
func Parse(input []byte) (*Manual, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	m := &Manual{}
	for i, l := range lines {
		l = strings.TrimSpace(l)
		switch {
		case l == "":
		case strings.HasPrefix(l, "fold along "):
			var f Fold
			if _, err := fmt.Sscanf(l, "fold along %c=%d", &f.Axis, &f.Line); err != nil {
				return nil, puzzle.Malformed(i+1, l, "%v", err)
			}
			if (f.Axis != 'x' && f.Axis != 'y') || f.Line <= 0 {
				return nil, puzzle.Malformed(i+1, l, "bad fold")
			}
			m.Folds = append(m.Folds, f)
		default:
			var p puzzle.Point
			if _, err := fmt.Sscanf(l, "%d,%d", &p.X, &p.Y); err != nil {
				return nil, puzzle.Malformed(i+1, l, "%v", err)
			}
			if p.X < 0 || p.Y < 0 {
				return nil, puzzle.Malformed(i+1, l, "negative coordinate")
			}
			m.Dots = append(m.Dots, p)
		}
	}
	if len(m.Dots) == 0 || len(m.Folds) == 0 {
		return nil, puzzle.Malformed(0, "", "need dots and fold instructions")
	}

	return m, nil
}

// Sheet rasterizes the dots. Each axis spans at least twice the first fold
// along it plus one, so the first fold always halves the sheet.
func (m *Manual) Sheet() (*matrix.Dense[uint8], error) {
	var w, h int
	for _, p := range m.Dots {
		w, h = max(w, p.X+1), max(h, p.Y+1)
	}
	seenX, seenY := false, false
	for _, f := range m.Folds {
		if f.Axis == 'x' && !seenX {
			w, seenX = max(w, 2*f.Line+1), true
		}
		if f.Axis == 'y' && !seenY {
			h, seenY = max(h, 2*f.Line+1), true
		}
	}
	sheet, err := matrix.NewDense[uint8](h, w)
	if err != nil {
		return nil, err
	}
	for _, p := range m.Dots {
		if err := sheet.Set(p.Y, p.X, 1); err != nil {
			return nil, err
		}
	}

	return sheet, nil
}

func or(a, b uint8) uint8 { return a | b }

// Apply folds sheet along f.
func Apply(sheet *matrix.Dense[uint8], f Fold) (*matrix.Dense[uint8], error) {
	if f.Axis == 'y' {
		return sheet.FoldUp(f.Line, or)
	}
	return sheet.FoldLeft(f.Line, or)
}

// Render draws dots as '#' and empty cells as '.', one line per row.
func Render(sheet *matrix.Dense[uint8]) string {
	var sb strings.Builder
	for i, row := range sheet.ToRows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func visible(v uint8) bool { return v != 0 }

// FirstFold returns the number of dots visible after the first fold.
func FirstFold(m *Manual) (int, error) {
	sheet, err := m.Sheet()
	if err != nil {
		return 0, err
	}
	sheet, err = Apply(sheet, m.Folds[0])
	if err != nil {
		return 0, err
	}
	return sheet.Count(visible), nil
}

// Code applies every fold and renders the result.
func Code(m *Manual) (string, error) {
	sheet, err := m.Sheet()
	if err != nil {
		return "", err
	}
	for _, f := range m.Folds {
		if sheet, err = Apply(sheet, f); err != nil {
			return "", fmt.Errorf("fold along %c=%d: %w", f.Axis, f.Line, err)
		}
	}
	return Render(sheet), nil
}

// Solve counts dots after the first fold and renders the final code.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	m, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n, err := FirstFold(m)
	if err != nil {
		return puzzle.Answer{}, err
	}
	code, err := Code(m)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: fmt.Sprint(n), Part2: code}, nil
}
