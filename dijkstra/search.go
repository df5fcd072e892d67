package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Result holds the outcome of a Search.
type Result[K comparable] struct {
	source K
	dist   map[K]int64
	prev   map[K]K
}

// Dist returns the settled shortest distance to k and whether k was reached.
func (r *Result[K]) Dist(k K) (int64, bool) {
	d, ok := r.dist[k]
	return d, ok
}

// Reached returns the number of vertices with a known distance.
func (r *Result[K]) Reached() int { return len(r.dist) }

// PathTo reconstructs the vertex sequence source → … → target.
// Returns ErrNoPath if target was not reached.
func (r *Result[K]) PathTo(target K) ([]K, error) {
	if _, ok := r.dist[target]; !ok {
		return nil, ErrNoPath
	}
	path := []K{target}
	for at := target; at != r.source; {
		p, ok := r.prev[at]
		if !ok {
			return nil, ErrNoPath
		}
		path = append(path, p)
		at = p
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Search runs Dijkstra from source over the implicit graph described by
// successors. successors must be deterministic for a given key.
//
// Behavior:
//  1. dist[source] = 0, push source.
//  2. Pop the closest entry; skip it when stale (already settled).
//  3. Stop when the target (WithTarget) is settled or MaxDistance is exceeded.
//  4. Relax every arc; a negative cost aborts with ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Search[K comparable](source K, successors func(K) []Arc[K], opts ...SearchOption[K]) (*Result[K], error) {
	cfg := searchConfig[K]{maxDistance: math.MaxInt64}
	for _, opt := range opts {
		opt(&cfg)
	}

	res := &Result[K]{
		source: source,
		dist:   map[K]int64{source: 0},
		prev:   make(map[K]K),
	}
	settled := make(map[K]bool)

	pq := &itemPQ[K]{}
	heap.Push(pq, &item[K]{key: source, dist: 0})

	for pq.Len() > 0 {
		it := heap.Pop(pq).(*item[K])
		u := it.key
		if settled[u] {
			continue
		}
		if it.dist > cfg.maxDistance {
			break
		}
		settled[u] = true
		if cfg.hasTarget && u == cfg.target {
			break
		}

		for _, arc := range successors(u) {
			if arc.Cost < 0 {
				return nil, fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeWeight, u, arc.To, arc.Cost)
			}
			if settled[arc.To] {
				continue
			}
			nd := it.dist + arc.Cost
			if nd > cfg.maxDistance {
				continue
			}
			if cur, ok := res.dist[arc.To]; ok && nd >= cur {
				continue
			}
			res.dist[arc.To] = nd
			res.prev[arc.To] = u
			heap.Push(pq, &item[K]{key: arc.To, dist: nd})
		}
	}

	// Drop tentative distances of vertices that were never settled, so that
	// Dist only reports final values.
	for k := range res.dist {
		if !settled[k] {
			delete(res.dist, k)
		}
	}

	return res, nil
}

// item is a heap entry; duplicates are allowed (lazy decrease-key).
type item[K comparable] struct {
	key  K
	dist int64
}

// itemPQ is a min-heap of *item ordered by dist.
type itemPQ[K comparable] []*item[K]

func (pq itemPQ[K]) Len() int            { return len(pq) }
func (pq itemPQ[K]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq itemPQ[K]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ[K]) Push(x interface{}) { *pq = append(*pq, x.(*item[K])) }
func (pq *itemPQ[K]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
