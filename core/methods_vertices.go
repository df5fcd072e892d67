package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing ID is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id if missing. Caller holds g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[string][]string)
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID, or ErrVertexNotFound.
// The returned pointer is shared with the graph; callers may update Metadata.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
