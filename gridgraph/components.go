package gridgraph

import "github.com/katalvlaran/aoc2021/bfs"

// ConnectedComponents finds all contiguous regions of land cells according
// to gg.Conn connectivity. Each component is a slice of row-major cell
// indices in BFS discovery order; components are ordered by their first
// cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Size())
	land := func(_, v int) bool { return gg.isLand(gg.At(v)) }
	var comps [][]int

	for i0 := range seen {
		if seen[i0] || !gg.isLand(gg.At(i0)) {
			continue // visited or water
		}
		// Search never fails without a context or hooks.
		res, _ := bfs.Search(i0, gg.Neighbors, bfs.WithFilterNeighbor(land))
		for _, u := range res.Order {
			seen[u] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}
