// Package day12 solves "Passage Pathing": counting routes through a cave
// system where small caves may only be visited a limited number of times.
package day12

import (
	"context"
	_ "embed"
	"strings"
	"unicode"

	"github.com/katalvlaran/aoc2021/bfs"
	"github.com/katalvlaran/aoc2021/core"
	"github.com/katalvlaran/aoc2021/dfs"
	"github.com/katalvlaran/aoc2021/puzzle"
)

//go:embed input.txt
var input []byte

func init() {
	puzzle.Register(puzzle.Day{Number: 12, Title: "Passage Pathing", Solve: Solve, Input: input})
}

// Cave names with a fixed meaning.
const (
	Start = "start"
	End   = "end"
)

// Parse reads "a-b" connections into an undirected cave graph.
func Parse(input []byte) (*core.Graph, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	g := core.NewGraph()
	for i, l := range lines {
		a, b, ok := strings.Cut(strings.TrimSpace(l), "-")
		if !ok || a == "" || b == "" {
			return nil, puzzle.Malformed(i+1, l, "want <cave>-<cave>")
		}
		if a == b {
			return nil, puzzle.Malformed(i+1, l, "cave connected to itself")
		}
		if g.HasEdge(a, b) {
			continue
		}
		if _, err := g.AddEdge(a, b, 0); err != nil {
			return nil, puzzle.Malformed(i+1, l, "%v", err)
		}
	}
	if !g.HasVertex(Start) || !g.HasVertex(End) {
		return nil, puzzle.Malformed(0, "", "caves %q and %q are required", Start, End)
	}
	reach, err := bfs.BFS(g, Start)
	if err != nil {
		return nil, err
	}
	if _, ok := reach.Depth[End]; !ok {
		return nil, puzzle.Malformed(0, "", "%q cannot be reached from %q", End, Start)
	}

	return g, nil
}

// Small reports whether a cave is small (lower-case name).
func Small(id string) bool {
	for _, r := range id {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// CountPaths counts routes from start to end visiting small caves at most
// once, plus up to revisits repeated visits to small caves other than start.
func CountPaths(ctx context.Context, g *core.Graph, revisits int) (int, error) {
	return dfs.CountPaths(g, Start, End,
		dfs.WithPathContext(ctx),
		dfs.WithLimited(Small),
		dfs.WithRevisits(revisits),
	)
}

// Solve counts routes without, then with, one repeated small cave.
func Solve(ctx context.Context, input []byte) (puzzle.Answer, error) {
	g, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	once, err := CountPaths(ctx, g, 0)
	if err != nil {
		return puzzle.Answer{}, err
	}
	twice, err := CountPaths(ctx, g, 1)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(once, twice), nil
}
