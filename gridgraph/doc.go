// Package gridgraph treats a rectangular 2D grid of integer cell values as a
// graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Row-major cell indices with Index / Coordinate conversion
//   - Connected components of "land" cells
//   - n×n tiling with a per-tile value transform
//   - Weighted shortest paths through the cells (dijkstra.Search)
//   - Conversion to a directed, weighted *core.Graph
//
// A cell is "land" when its value is ≥ LandThreshold, unless GridOptions.IsLand
// is set, in which case that predicate decides.
//
// Errors:
//
//   - ErrEmptyGrid        no rows or no columns
//   - ErrNonRectangular   rows of differing lengths
//   - ErrIndexOutOfRange  coordinates or index outside the grid
//   - ErrBadTile          tile factor below 1
//   - ErrNoPath           destination unreachable
package gridgraph
