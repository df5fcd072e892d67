// Package day14 solves "Extended Polymerization": growing a polymer by pair
// insertion and measuring its element spread.
package day14

import (
	"context"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 14, Title: "Extended Polymerization", Solve: Solve})
}

// Pair is two adjacent elements.
type Pair [2]byte

// Polymer tracks a template as counts of adjacent pairs. The last element is
// kept aside because it never starts a pair.
type Polymer struct {
	pairs map[Pair]uint64
	last  byte
	rules map[Pair]byte
}

// Parse reads the template, a blank line and "AB -> C" rules.
func Parse(input []byte) (*Polymer, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, puzzle.Malformed(0, "", "want a template line, a blank line and rules")
	}
	tpl := strings.TrimSpace(blocks[0][0])
	if len(tpl) < 2 {
		return nil, puzzle.Malformed(1, tpl, "template needs at least two elements")
	}

	p := &Polymer{
		pairs: make(map[Pair]uint64),
		last:  tpl[len(tpl)-1],
		rules: make(map[Pair]byte, len(blocks[1])),
	}
	for i := 0; i+1 < len(tpl); i++ {
		p.pairs[Pair{tpl[i], tpl[i+1]}]++
	}
	for i, l := range blocks[1] {
		from, to, ok := strings.Cut(strings.TrimSpace(l), " -> ")
		if !ok || len(from) != 2 || len(to) != 1 {
			return nil, puzzle.Malformed(i+3, l, "want AB -> C")
		}
		p.rules[Pair{from[0], from[1]}] = to[0]
	}

	return p, nil
}

// Step returns the polymer after one round of insertions. A pair without a
// rule is carried over unchanged.
func (p *Polymer) Step() *Polymer {
	next := &Polymer{pairs: make(map[Pair]uint64, len(p.pairs)), last: p.last, rules: p.rules}
	for pair, n := range p.pairs {
		c, ok := p.rules[pair]
		if !ok {
			next.pairs[pair] += n
			continue
		}
		next.pairs[Pair{pair[0], c}] += n
		next.pairs[Pair{c, pair[1]}] += n
	}
	return next
}

// Grow applies steps rounds.
func (p *Polymer) Grow(steps int) *Polymer {
	for i := 0; i < steps; i++ {
		p = p.Step()
	}
	return p
}

// Elements counts every element of the polymer.
func (p *Polymer) Elements() map[byte]uint64 {
	counts := map[byte]uint64{p.last: 1}
	for pair, n := range p.pairs {
		counts[pair[0]] += n
	}
	return counts
}

// Length returns the number of elements.
func (p *Polymer) Length() uint64 {
	return puzzle.Sum(values(p.Elements()))
}

// Spread returns the most common element count minus the least common one.
func (p *Polymer) Spread() uint64 {
	lo, hi := puzzle.MinMax(values(p.Elements()))
	return hi - lo
}

func values(m map[byte]uint64) []uint64 {
	out := make([]uint64, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// Solve measures the spread after 10 and 40 steps.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	p, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p10 := p.Grow(10)
	p40 := p10.Grow(30)

	return puzzle.NewAnswer(p10.Spread(), p40.Spread()), nil
}
