package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/core"
)

// pathCounter holds the per-call state of CountPaths.
type pathCounter struct {
	end       string
	start     string
	opts      PathOptions
	adjacency map[string][]string
	entered   map[string]int
	path      []string
	count     int
}

// CountPaths returns the number of distinct walks from start to end.
//
// A walk may enter a vertex for which Limited returns true only once, except
// that up to Revisits extra entries into such vertices may be spent over the
// whole walk. The start vertex is never re-entered and the walk ends as soon
// as it reaches end.
//
// Steps:
//  1. Validate graph and endpoints.
//  2. Snapshot neighbor IDs once so recursion does not take graph locks.
//  3. Recurse, tracking entries per vertex and the remaining budget.
func CountPaths(g *core.Graph, start, end string, opts ...PathOption) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	popts := DefaultPathOptions()
	for _, fn := range opts {
		fn(&popts)
	}
	if !g.HasVertex(start) {
		return 0, ErrStartVertexNotFound
	}
	if !g.HasVertex(end) {
		return 0, ErrEndVertexNotFound
	}

	adjacency := make(map[string][]string, g.VertexCount())
	for _, v := range g.Vertices() {
		ids, err := g.NeighborIDs(v)
		if err != nil {
			return 0, fmt.Errorf("dfs: NeighborIDs(%q): %w", v, err)
		}
		adjacency[v] = ids
	}

	pc := &pathCounter{
		start:     start,
		end:       end,
		opts:      popts,
		adjacency: adjacency,
		entered:   map[string]int{start: 1},
		path:      []string{start},
	}
	if err := pc.walk(start, popts.Revisits); err != nil {
		return pc.count, err
	}

	return pc.count, nil
}

// walk extends the current path from id with the given remaining budget.
func (pc *pathCounter) walk(id string, budget int) error {
	select {
	case <-pc.opts.Ctx.Done():
		return pc.opts.Ctx.Err()
	default:
	}

	if id == pc.end {
		pc.count++
		if pc.opts.OnPath != nil {
			walk := append([]string(nil), pc.path...)
			if err := pc.opts.OnPath(walk); err != nil {
				return fmt.Errorf("dfs: OnPath hook: %w", err)
			}
		}
		return nil
	}

	for _, next := range pc.adjacency[id] {
		if next == pc.start {
			continue
		}
		spend := 0
		if pc.opts.Limited(next) && pc.entered[next] > 0 {
			if budget == 0 {
				continue
			}
			spend = 1
		}

		pc.entered[next]++
		pc.path = append(pc.path, next)
		err := pc.walk(next, budget-spend)
		pc.path = pc.path[:len(pc.path)-1]
		pc.entered[next]--
		if err != nil {
			return err
		}
	}

	return nil
}
