// Package bfs provides breadth-first search, returning unweighted
// shortest-path depths, parent links and visit order.
//
// What
//
//   - Search explores any implicit graph given as a successor function over a
//     comparable key type (grid indices, coordinates, vertex IDs).
//   - BFS adapts Search to an unweighted *core.Graph.
//   - Result holds Order (visit sequence), Depth (edges from start) and
//     Parent (predecessor in the BFS tree; the start has none).
//   - OnVisit may abort the search with an error; FilterNeighbor skips edges;
//     MaxDepth (d > 0) stops exploring beyond depth d.
//
// Determinism
//
//	Neighbors are enqueued in the order the successor function returns them,
//	so the visit sequence is reproducible. core.Graph.NeighborIDs is sorted.
//
// Complexity (V vertices, E edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if BFS is run on a weighted graph.
//   - ErrOptionViolation      for an invalid option (negative MaxDepth).
//   - ErrNoPath               from PathTo for an unreached vertex.
//   - Wrapped OnVisit errors and context errors.
package bfs
