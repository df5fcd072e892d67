package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or CountPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrEndVertexNotFound indicates that the end vertex does not exist.
	ErrEndVertexNotFound = errors.New("dfs: end vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked once all descendants of a vertex have
	// been explored (post-order), before appending to result.Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits how deep the walk goes below the start.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recursing.
	// Return false to skip that neighbor.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// no depth limit and no neighbor filter.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips every neighbor for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its distance (#edges) from the start.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was first discovered from.
	// The start vertex does not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// PathOption configures CountPaths.
type PathOption func(*PathOptions)

// PathOptions holds the parameters of CountPaths.
type PathOptions struct {
	// Ctx allows cancellation; checked on every step of every walk.
	Ctx context.Context

	// Limited reports whether a vertex may be entered only once per walk.
	// Defaults to every vertex (simple paths).
	Limited func(id string) bool

	// Revisits is how many extra entries into already-entered limited
	// vertices one walk may spend. Default 0.
	Revisits int

	// OnPath, if non-nil, receives a copy of every completed walk.
	// Returning an error aborts counting.
	OnPath func(path []string) error
}

// DefaultPathOptions returns PathOptions for simple paths.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		Ctx:     context.Background(),
		Limited: func(string) bool { return true },
	}
}

// WithPathContext sets the Context for CountPaths. A nil context is ignored.
func WithPathContext(ctx context.Context) PathOption {
	return func(o *PathOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimited sets the predicate selecting once-only vertices.
func WithLimited(fn func(id string) bool) PathOption {
	return func(o *PathOptions) {
		if fn != nil {
			o.Limited = fn
		}
	}
}

// WithRevisits sets the per-walk budget of extra entries into limited vertices.
// Negative values are treated as 0.
func WithRevisits(n int) PathOption {
	return func(o *PathOptions) {
		if n < 0 {
			n = 0
		}
		o.Revisits = n
	}
}

// WithOnPath installs fn as the completed-walk hook.
func WithOnPath(fn func(path []string) error) PathOption {
	return func(o *PathOptions) { o.OnPath = fn }
}
