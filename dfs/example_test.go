package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/core"
	"github.com/katalvlaran/aoc2021/dfs"
)

// ExampleCountPaths counts routes through a cave system where lower-case
// caves may be entered once, then again with one repeat allowed.
func ExampleCountPaths() {
	g := core.NewGraph()
	for _, l := range []string{"start-A", "start-b", "A-c", "A-b", "b-d", "A-end", "b-end"} {
		a, b, _ := strings.Cut(l, "-")
		_, _ = g.AddEdge(a, b, 0)
	}
	lower := func(id string) bool { return strings.ToLower(id) == id }

	once, _ := dfs.CountPaths(g, "start", "end", dfs.WithLimited(lower))
	twice, _ := dfs.CountPaths(g, "start", "end", dfs.WithLimited(lower), dfs.WithRevisits(1))
	fmt.Println(once, twice)
	// Output: 10 36
}
