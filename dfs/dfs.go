package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/core"
)

// frame is one vertex on the explicit DFS stack with the neighbors it has
// not tried yet.
type frame struct {
	id    string
	depth int
	todo  []string
}

// dfsWalker holds the traversal state. The stack replaces recursion so that
// large grids (tens of thousands of cells in one region) do not grow the
// goroutine stack.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on graph g starting at startID.
// Returns DFSResult, or a partial result and error if aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}
	if err := w.walk(startID); err != nil {
		return w.res, err
	}

	return w.res, nil
}

func (w *dfsWalker) walk(start string) error {
	if err := w.enter(start, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if len(top.todo) == 0 {
			id := top.id
			w.stack = w.stack[:len(w.stack)-1]
			if err := w.leave(id); err != nil {
				return err
			}
			continue
		}

		nid := top.todo[0]
		top.todo = top.todo[1:]
		if !w.admit(top.id, nid, top.depth) {
			continue
		}
		w.res.Parent[nid] = top.id
		if err := w.enter(nid, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// enter discovers id: marks it, runs OnVisit and pushes its neighbors.
func (w *dfsWalker) enter(id string, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: visit %q: %w", id, err)
		}
	}

	edges, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	todo := make([]string, len(edges))
	for i, e := range edges {
		todo[i] = e.To
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, todo: todo})

	return nil
}

// admit decides whether the walk steps from id to nid.
func (w *dfsWalker) admit(id, nid string, depth int) bool {
	switch {
	case nid == id:
		return false
	case w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid):
		w.res.SkippedNeighbors++
		return false
	case w.res.Visited[nid]:
		return false
	case w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth:
		return false
	}

	return true
}

// leave finishes id: runs OnExit and appends it to the post-order.
func (w *dfsWalker) leave(id string) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: exit %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
