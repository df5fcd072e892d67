package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}
	isLand := opts.IsLand
	if isLand == nil {
		threshold := opts.LandThreshold
		isLand = func(v int) bool { return v >= threshold }
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		isLand:          isLand,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Size returns the number of cells.
func (gg *GridGraph) Size() int { return gg.Width * gg.Height }

// Index maps (x,y) to a row-major index y*Width + x.
func (gg *GridGraph) Index(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfRange, x, y)
	}

	return gg.index(x, y), nil
}

func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Value returns the value stored at (x,y).
func (gg *GridGraph) Value(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfRange, x, y)
	}

	return gg.CellValues[y][x], nil
}

// At returns the value of the cell with row-major index idx. idx must be valid.
func (gg *GridGraph) At(idx int) int {
	x, y := gg.Coordinate(idx)
	return gg.CellValues[y][x]
}

// IsLand reports whether the cell at (x,y) counts as land.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.isLand(gg.CellValues[y][x])
}

// Neighbors returns the in-bounds neighbor indices of idx, in offset order
// (clockwise from north). Returns nil for an invalid index.
func (gg *GridGraph) Neighbors(idx int) []int {
	if idx < 0 || idx >= gg.Size() {
		return nil
	}
	x, y := gg.Coordinate(idx)
	out := make([]int, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			out = append(out, gg.index(nx, ny))
		}
	}

	return out
}

// VertexID formats the vertex identifier ToCoreGraph gives cell (x,y).
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the grid into a directed, weighted *core.Graph.
// Each cell at (x,y) becomes a vertex "x,y" with metadata {x, y, value}.
// Every neighbor pair gets an edge in both directions whose weight is
// weight(from, to); a nil weight uses the value of the destination cell.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph(weight func(from, to Cell) int64) (*core.Graph, error) {
	if weight == nil {
		weight = func(_, to Cell) int64 { return int64(to.Value) }
	}
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			id := VertexID(x, y)
			if err := g.AddVertex(id); err != nil {
				return nil, err
			}
			v, err := g.Vertex(id)
			if err != nil {
				return nil, err
			}
			v.Metadata["x"] = x
			v.Metadata["y"] = y
			v.Metadata["value"] = gg.CellValues[y][x]
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			from := Cell{X: x, Y: y, Value: gg.CellValues[y][x]}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				to := Cell{X: nx, Y: ny, Value: gg.CellValues[ny][nx]}
				if _, err := g.AddEdge(VertexID(x, y), VertexID(nx, ny), weight(from, to)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
