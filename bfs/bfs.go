package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/core"
)

type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable search state.
type walker[K comparable] struct {
	next    func(K) []K
	opts    Options[K]
	ctx     context.Context
	queue   []queueItem[K]
	visited map[K]bool
	res     *Result[K]
}

// Search runs breadth-first search from start over the graph whose edges are
// given by neighbors.
func Search[K comparable](start K, neighbors func(K) []K, opts ...Option[K]) (*Result[K], error) {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[K]{
		next:    neighbors,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[K]bool),
		res: &Result[K]{
			Start:  start,
			Depth:  make(map[K]int),
			Parent: make(map[K]K),
		},
	}
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[K]{id: start})

	return w.res, w.loop()
}

// BFS runs Search over an unweighted core.Graph from startID.
func BFS(g *core.Graph, startID string, opts ...Option[string]) (*Result[string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	return Search(startID, func(id string) []string {
		ids, _ := g.NeighborIDs(id) // id came from the graph
		return ids
	}, opts...)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.next(item.id) {
			if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			w.visited[nbr] = true
			w.res.Depth[nbr] = nextDepth
			w.res.Parent[nbr] = item.id
			w.queue = append(w.queue, queueItem[K]{id: nbr, depth: nextDepth})
		}
	}

	return nil
}
