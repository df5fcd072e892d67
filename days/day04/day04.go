// Package day04 solves "Giant Squid": playing bingo against a squid and
// scoring the first and the last board to win.
package day04

import (
	"context"
	"errors"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 4, Title: "Giant Squid", Solve: Solve})
}

// Size is the side length of a board.
const Size = 5

// ErrNoWinner is returned when the draws run out before any board wins.
var ErrNoWinner = errors.New("day04: no board wins")

// Board is a 5×5 bingo card with marks.
type Board struct {
	cells  [Size][Size]int
	marked [Size][Size]bool
	won    bool
}

// Game is the draw order plus the boards.
type Game struct {
	Draws  []int
	Boards []*Board
}

// Parse reads the draw line followed by blank-line separated boards.
func Parse(input []byte) (*Game, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	if len(blocks[0]) != 1 {
		return nil, puzzle.Malformed(2, blocks[0][1], "want a blank line after the draws")
	}
	draws, err := puzzle.CommaInts(blocks[0][0])
	if err != nil {
		return nil, err
	}
	g := &Game{Draws: draws}
	// line 1 holds the draws, line 2 is blank
	line := 3
	for _, blk := range blocks[1:] {
		if len(blk) != Size {
			return nil, puzzle.Malformed(line, blk[0], "board has %d rows, want %d", len(blk), Size)
		}
		b := &Board{}
		for r, row := range blk {
			nums, err := puzzle.Ints(strings.Fields(row))
			if err != nil {
				return nil, err
			}
			if len(nums) != Size {
				return nil, puzzle.Malformed(line+r, row, "board row has %d numbers, want %d", len(nums), Size)
			}
			copy(b.cells[r][:], nums)
		}
		g.Boards = append(g.Boards, b)
		line += Size + 1
	}
	if len(g.Boards) == 0 {
		return nil, puzzle.Malformed(0, "", "no boards")
	}

	return g, nil
}

// Mark marks n and reports whether the board now has a full row or column.
func (b *Board) Mark(n int) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] != n {
				continue
			}
			b.marked[r][c] = true
			if b.rowDone(r) || b.colDone(c) {
				return true
			}
		}
	}

	return false
}

func (b *Board) rowDone(r int) bool {
	for c := 0; c < Size; c++ {
		if !b.marked[r][c] {
			return false
		}
	}
	return true
}

func (b *Board) colDone(c int) bool {
	for r := 0; r < Size; r++ {
		if !b.marked[r][c] {
			return false
		}
	}
	return true
}

// Unmarked returns the sum of the unmarked numbers.
func (b *Board) Unmarked() int {
	sum := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b.marked[r][c] {
				sum += b.cells[r][c]
			}
		}
	}
	return sum
}

// Play draws numbers until every board has won or the draws run out and
// returns the winning scores (unmarked sum × winning draw) in winning order.
// A board scores at most once.
func (g *Game) Play() []int {
	var scores []int
	for _, n := range g.Draws {
		for _, b := range g.Boards {
			if b.won {
				continue
			}
			if b.Mark(n) {
				b.won = true
				scores = append(scores, b.Unmarked()*n)
			}
		}
		if len(scores) == len(g.Boards) {
			break
		}
	}

	return scores
}

// Solve scores the first and the last winning board.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	g, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	scores := g.Play()
	if len(scores) == 0 {
		return puzzle.Answer{}, ErrNoWinner
	}

	return puzzle.NewAnswer(scores[0], scores[len(scores)-1]), nil
}
