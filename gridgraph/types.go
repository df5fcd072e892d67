package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrIndexOutOfRange indicates a cell coordinate or index outside the grid.
	ErrIndexOutOfRange = errors.New("gridgraph: cell out of range")
	// ErrBadTile indicates a tiling factor below 1.
	ErrBadTile = errors.New("gridgraph: tile factor must be at least 1")
	// ErrNoPath indicates the destination cell cannot be reached.
	ErrNoPath = errors.New("gridgraph: no path between cells")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Grid value at (X, Y)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// IsLand, if non-nil, overrides LandThreshold.
	IsLand func(value int) bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// CellValues[y][x] holds the value at column x, row y.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	isLand          func(int) bool
	neighborOffsets [][2]int
}
