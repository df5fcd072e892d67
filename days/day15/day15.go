// Package day15 solves "Chiton": the lowest-risk route across a cave, then
// across the same cave tiled five times in each direction.
package day15

import (
	"context"

	"github.com/katalvlaran/aoc2021/dijkstra"
	"github.com/katalvlaran/aoc2021/gridgraph"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 15, Title: "Chiton", Solve: Solve})
}

// Tiles is how many copies of the map the full cave holds along each axis.
const Tiles = 5

// Parse reads the risk map.
func Parse(input []byte) (*gridgraph.GridGraph, error) {
	grid, err := puzzle.DigitGrid(puzzle.Lines(input))
	if err != nil {
		return nil, err
	}
	return gridgraph.From2D(grid, gridgraph.Conn4)
}

// Wrap raises a risk level by tx+ty, wrapping values above 9 back to 1.
func Wrap(risk, tx, ty int) int {
	return (risk+tx+ty-1)%9 + 1
}

// LowestRisk returns the total risk of the cheapest route from the top-left
// to the bottom-right corner. The starting cell is never entered, so its
// risk does not count.
func LowestRisk(cave *gridgraph.GridGraph) (int64, error) {
	risk, _, err := cave.ShortestPath(0, cave.Size()-1, nil)
	return risk, err
}

// Route finds the cheapest route over the vertex graph of cave and returns
// the visited vertex IDs ("x,y", start first) with the total risk.
func Route(cave *gridgraph.GridGraph) ([]string, int64, error) {
	g, err := cave.ToCoreGraph(nil)
	if err != nil {
		return nil, 0, err
	}
	src := gridgraph.VertexID(0, 0)
	dst := gridgraph.VertexID(cave.Width-1, cave.Height-1)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	path, err := dijkstra.Path(prev, src, dst)
	if err != nil {
		return nil, 0, err
	}

	return path, dist[dst], nil
}

// FullCave tiles the map Tiles×Tiles with wrapped risk levels.
func FullCave(cave *gridgraph.GridGraph) (*gridgraph.GridGraph, error) {
	return cave.Tile(Tiles, Wrap)
}

// Solve finds the lowest risk on the map and on the full cave.
func Solve(ctx context.Context, input []byte) (puzzle.Answer, error) {
	cave, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	_, small, err := Route(cave)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return puzzle.Answer{}, err
	}
	full, err := FullCave(cave)
	if err != nil {
		return puzzle.Answer{}, err
	}
	large, err := LowestRisk(full)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(small, large), nil
}
