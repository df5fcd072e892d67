package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/dijkstra"
)

// ShortestPath returns the minimum total cost of moving from cell index src to
// cell index dst, and the cells visited on the way (src first, dst last).
// Entering a cell costs cost(idx); a nil cost uses the cell value. The source
// cell itself is free.
//
// Returns ErrIndexOutOfRange for invalid indices and ErrNoPath when dst
// cannot be reached. Negative costs surface as dijkstra.ErrNegativeWeight.
// Complexity: O(W·H·log(W·H)).
func (gg *GridGraph) ShortestPath(src, dst int, cost func(idx int) int64) (int64, []int, error) {
	size := gg.Size()
	if src < 0 || src >= size || dst < 0 || dst >= size {
		return 0, nil, fmt.Errorf("%w: src=%d dst=%d", ErrIndexOutOfRange, src, dst)
	}
	if cost == nil {
		cost = func(idx int) int64 { return int64(gg.At(idx)) }
	}

	successors := func(u int) []dijkstra.Arc[int] {
		nbs := gg.Neighbors(u)
		arcs := make([]dijkstra.Arc[int], len(nbs))
		for i, v := range nbs {
			arcs[i] = dijkstra.Arc[int]{To: v, Cost: cost(v)}
		}
		return arcs
	}

	res, err := dijkstra.Search(src, successors, dijkstra.WithTarget(dst))
	if err != nil {
		return 0, nil, err
	}
	path, err := res.PathTo(dst)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return 0, nil, ErrNoPath
	}
	if err != nil {
		return 0, nil, err
	}
	d, _ := res.Dist(dst)

	return d, path, nil
}
