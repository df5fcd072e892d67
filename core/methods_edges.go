package core

import (
	"sort"
	"strconv"
)

// AddEdge creates a new edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Create missing endpoints.
//  3. Reject parallel edges unless WithMultiEdges was given.
//  4. Store the edge and index it under adjacency[from][to]
//     (and adjacency[to][from] when undirected).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.adjacency[from][to] = append(g.adjacency[from][to], eid)
	if !g.directed && from != to {
		g.adjacency[to][from] = append(g.adjacency[to][from], eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge leads from→to.
// Undirected edges are reported in both directions.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges ordered by numeric edge ID (creation order).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of stored edges (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges leaving id, oriented so that From == id.
// Undirected edges stored in the opposite orientation are returned as copies
// with From and To swapped. Result is sorted by To, then by edge creation order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(adj))
	for _, eids := range adj {
		for _, eid := range eids {
			e := g.edges[eid]
			if e.From != id {
				flipped := *e
				flipped.From, flipped.To = e.To, e.From
				e = &flipped
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return edgeSeq(out[i].ID) < edgeSeq(out[j].ID)
	})

	return out, nil
}

// NeighborIDs returns the distinct vertex IDs reachable from id in one step, sorted.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(adj))
	for to, eids := range adj {
		if len(eids) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// edgeSeq extracts the numeric part of an edge ID ("e12" → 12).
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)
	return n
}
