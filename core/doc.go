// Package core defines the in-memory Graph used by the puzzle solutions:
// string-keyed vertices joined by optionally weighted, optionally directed edges.
//
// What:
//
//   - Graph stores vertices and edges behind a sync.RWMutex, so read-only
//     traversals (dfs, dijkstra) may share one graph across goroutines.
//   - Undirected edges are stored once and mirrored in the adjacency index;
//     Neighbors always reports edges oriented away from the queried vertex.
//   - Vertices(), Edges() and Neighbors() return deterministic orderings.
//
// Options:
//
//   - WithDirected(bool): default direction of new edges (undirected by default).
//   - WithWeighted():     allow non-zero edge weights.
//   - WithLoops():        allow self-loops.
//   - WithMultiEdges():   allow parallel edges between the same endpoints.
//
// Errors:
//
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrBadWeight,
//     ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: AddVertex/AddEdge/HasEdge are O(1) amortized; Neighbors is
// O(d log d) for a vertex of degree d because of sorting.
package core
