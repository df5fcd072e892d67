package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aoc2021/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → distance; math.MaxInt64 for unreachable vertices.
//   - prev: vertex ID → predecessor when WithReturnPath is set, nil otherwise.
//     The source and unreachable vertices map to "".
//
// Validation order: ErrEmptySource, ErrNilGraph, ErrUnweightedGraph,
// ErrVertexNotFound, ErrNegativeWeight (upfront edge scan).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate inputs.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 2) Fail fast on negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Successors skip impassable edges.
	successors := func(u string) []Arc[string] {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil
		}
		arcs := make([]Arc[string], 0, len(nbs))
		for _, e := range nbs {
			if e.Weight >= cfg.InfEdgeThreshold {
				continue
			}
			arcs = append(arcs, Arc[string]{To: e.To, Cost: e.Weight})
		}
		return arcs
	}

	res, err := Search(cfg.Source, successors, WithSearchMaxDistance[string](cfg.MaxDistance))
	if err != nil {
		return nil, nil, err
	}

	// 4) Expand to the full vertex set.
	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	for _, v := range vertices {
		if d, ok := res.Dist(v); ok {
			dist[v] = d
		} else {
			dist[v] = math.MaxInt64
		}
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}

	prev := make(map[string]string, len(vertices))
	for _, v := range vertices {
		if _, ok := res.Dist(v); ok && v != cfg.Source {
			prev[v] = res.prev[v]
		} else {
			prev[v] = ""
		}
	}

	return dist, prev, nil
}

// Path walks prev from target back to source and returns source → … → target.
// Returns ErrNoPath when target is unreachable.
func Path(prev map[string]string, source, target string) ([]string, error) {
	path := []string{target}
	for at := target; at != source; {
		p := prev[at]
		if p == "" {
			return nil, ErrNoPath
		}
		path = append([]string{p}, path...)
		at = p
	}

	return path, nil
}
