package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Metadata stores arbitrary per-vertex data (grid coordinates, cell values).
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	ID       string // unique within the Graph ("e1", "e2", ...)
	From     string // source vertex ID
	To       string // destination vertex ID
	Weight   int64  // cost of traversing the edge
	Directed bool   // one-way when true
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the direction of every edge added later.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory graph data structure.
//
// mu guards every field below it. adjacency[from][to] lists the IDs of the
// edges leading from "from" to "to"; undirected edges appear under both keys.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge
	adjacency  map[string]map[string][]string
}

// NewGraph creates an empty Graph. By default it is undirected, unweighted,
// without loops and without parallel edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether new edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph accepts non-zero weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }
