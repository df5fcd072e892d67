package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not built WithWeighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the target was not reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Arc is one outgoing step of an implicit graph: moving to To costs Cost.
type Arc[K comparable] struct {
	To   K
	Cost int64
}

// searchConfig holds the tunables of Search.
type searchConfig[K comparable] struct {
	target      K
	hasTarget   bool
	maxDistance int64
}

// SearchOption configures Search.
type SearchOption[K comparable] func(*searchConfig[K])

// WithTarget stops the search as soon as target is settled.
// Distances of vertices not yet settled at that point are unknown.
func WithTarget[K comparable](target K) SearchOption[K] {
	return func(c *searchConfig[K]) {
		c.target = target
		c.hasTarget = true
	}
}

// WithSearchMaxDistance skips every vertex farther than max from the source.
func WithSearchMaxDistance[K comparable](max int64) SearchOption[K] {
	return func(c *searchConfig[K]) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		c.maxDistance = max
	}
}

// Options configures the behavior of Dijkstra over a *core.Graph.
//
// Source           – starting vertex ID (required).
// ReturnPath       – return the predecessor map as well.
// MaxDistance      – vertices farther than this are not explored (default MaxInt64).
// InfEdgeThreshold – edges with weight ≥ threshold are impassable (default MaxInt64).
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps the explored distance. Panics on a negative value,
// since that is a programming error.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with weight ≥ threshold as walls.
// Panics on a non-positive threshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for source with no caps and no path output.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
