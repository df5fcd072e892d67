package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Options holds parameters and callbacks for a search over keys of type K.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor K) bool

	err error
}

// Option configures a search via functional arguments. An invalid Option
// is recorded and surfaced as ErrOptionViolation when the search starts.
type Option[K comparable] func(*Options[K])

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op OnVisit.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:            context.Background(),
		OnVisit:        func(K, int) error { return nil },
		FilterNeighbor: func(_, _ K) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback; returning an error stops the search.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to depth d. d == 0 means no limit, d < 0
// is an ErrOptionViolation.
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result[K comparable] struct {
	Start  K
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the path from the start vertex to dest.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
