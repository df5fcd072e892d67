// Package dijkstra implements Dijkstra's shortest-path algorithm with
// non-negative integer costs.
//
// Two entry points share one engine:
//
//   - Search explores an implicit graph given by a successor function over any
//     comparable key (grid cell indices, coordinates, vertex IDs). Nothing has
//     to be materialized up front, which keeps large tiled grids cheap.
//   - Dijkstra runs the same engine over a *core.Graph and returns the
//     familiar dist/prev maps keyed by vertex ID.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key binary heap.
//   - Space: O(V + E) worst case for the heap, O(V) for dist/prev.
//
// Errors:
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound
//     (graph adapter validation, in that order).
//   - ErrNegativeWeight when a negative cost is met.
//   - ErrNoPath when PathTo / Path cannot reach the requested target.
package dijkstra
