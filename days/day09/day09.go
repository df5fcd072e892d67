// Package day09 solves "Smoke Basin": finding low points of a height map and
// the basins that drain into them.
package day09

import (
	"context"
	"sort"

	"github.com/katalvlaran/aoc2021/dfs"
	"github.com/katalvlaran/aoc2021/gridgraph"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{Number: 9, Title: "Smoke Basin", Solve: Solve})
}

// ridge is the height that separates basins.
const ridge = 9

// Parse reads the height map with orthogonal neighbors.
func Parse(input []byte) (*gridgraph.GridGraph, error) {
	grid, err := puzzle.DigitGrid(puzzle.Lines(input))
	if err != nil {
		return nil, err
	}
	return gridgraph.From2D(grid, gridgraph.Conn4)
}

// LowPoints returns the cell indices lower than all of their orthogonal neighbors.
// A 9 is never a low point.
func LowPoints(hm *gridgraph.GridGraph) []int {
	var out []int
	for idx := 0; idx < hm.Size(); idx++ {
		h := hm.At(idx)
		if h == ridge {
			continue
		}
		low := true
		for _, n := range hm.Neighbors(idx) {
			if hm.At(n) <= h {
				low = false
				break
			}
		}
		if low {
			out = append(out, idx)
		}
	}

	return out
}

// RiskLevel sums 1 + height over all low points.
func RiskLevel(hm *gridgraph.GridGraph) int {
	sum := 0
	for _, idx := range LowPoints(hm) {
		sum += hm.At(idx) + 1
	}
	return sum
}

// BasinSizes flood-fills from every low point and returns the basin sizes,
// largest first. Ridge cells stop the fill.
func BasinSizes(hm *gridgraph.GridGraph) ([]int, error) {
	g, err := hm.ToCoreGraph(nil)
	if err != nil {
		return nil, err
	}
	land := func(id string) bool {
		v, err := g.Vertex(id)
		return err == nil && v.Metadata["value"] != ridge
	}

	var sizes []int
	for _, idx := range LowPoints(hm) {
		x, y := hm.Coordinate(idx)
		res, err := dfs.DFS(g, gridgraph.VertexID(x, y), dfs.WithFilterNeighbor(land))
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, len(res.Order))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes, nil
}

// LargestBasins multiplies the sizes of the k largest basins.
func LargestBasins(hm *gridgraph.GridGraph, k int) (int, error) {
	sizes, err := BasinSizes(hm)
	if err != nil {
		return 0, err
	}

	product := 1
	for i := 0; i < k && i < len(sizes); i++ {
		product *= sizes[i]
	}
	return product, nil
}

// Solve computes the risk level and the product of the three largest basins.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	hm, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	basins, err := LargestBasins(hm, 3)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(RiskLevel(hm), basins), nil
}
