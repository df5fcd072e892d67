// Package dfs implements depth-first search on core.Graph: a hookable
// traversal and a path counter with a per-walk revisit budget.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre-order and post-order hooks, cancellation via
//     context.Context, depth limiting and neighbor filtering.
//   - CountPaths: counts every distinct walk from a start vertex to an end
//     vertex in which "limited" vertices are entered at most once, except for
//     a small budget of extra entries shared by the whole walk. The start
//     vertex is never re-entered and reaching the end vertex closes the walk.
//
// Options:
//
//   - DFS:        WithContext, WithOnVisit, WithOnExit, WithMaxDepth, WithFilterNeighbor
//   - CountPaths: WithPathContext, WithLimited, WithRevisits, WithOnPath
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - CountPaths: Time O(P·L) for P walks of average length L, Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrEndVertexNotFound    end vertex ID not in graph (CountPaths)
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit, OnExit or OnPath
package dfs
