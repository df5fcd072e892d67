package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/dijkstra"
	"github.com/katalvlaran/aoc2021/gridgraph"
)

// digits converts rows of digit strings to a grid.
func digits(rows ...string) [][]int {
	out := make([][]int, len(rows))
	for y, r := range rows {
		out[y] = make([]int, len(r))
		for x, c := range r {
			out[y][x] = int(c - '0')
		}
	}
	return out
}

var chitonSample = digits(
	"1163751742",
	"1381373672",
	"2136511328",
	"3694931569",
	"7463417111",
	"1319128137",
	"1359912421",
	"3125421639",
	"1293138521",
	"2311944581",
)

func TestNewGridGraph_Errors(t *testing.T) {
	_, err := gridgraph.NewGridGraph(nil, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewGridGraph([][]int{{}}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewGridGraph([][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestGridGraph_Immutable(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.From2D(in, gridgraph.Conn4)
	require.NoError(t, err)
	in[0][0] = 9
	v, err := gg.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestGridGraph_IndexAndValue(t *testing.T) {
	gg, err := gridgraph.From2D(digits("123", "456"), gridgraph.Conn4)
	require.NoError(t, err)

	idx, err := gg.Index(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)
	x, y := gg.Coordinate(idx)
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})
	assert.Equal(t, 6, gg.At(idx))

	_, err = gg.Index(3, 0)
	assert.ErrorIs(t, err, gridgraph.ErrIndexOutOfRange)
	_, err = gg.Value(-1, 0)
	assert.ErrorIs(t, err, gridgraph.ErrIndexOutOfRange)
}

func TestGridGraph_Neighbors(t *testing.T) {
	grid := digits("123", "456", "789")

	g4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, g4.Neighbors(0))
	assert.Equal(t, []int{1, 5, 7, 3}, g4.Neighbors(4))

	g8, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Len(t, g8.Neighbors(0), 3)
	assert.Len(t, g8.Neighbors(4), 8)
	assert.Nil(t, g8.Neighbors(9))
}

func TestConnectedComponents_Basins(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.IsLand = func(v int) bool { return v != 9 }
	gg, err := gridgraph.NewGridGraph(digits(
		"2199943210",
		"3987894921",
		"9856789892",
		"8767896789",
		"9899965678",
	), opts)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 4)
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{3, 9, 9, 14}, sizes)
}

func TestConnectedComponents_Threshold(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 0, 1},
		{0, 0, 1},
		{1, 0, 0},
	}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Len(t, gg.ConnectedComponents(), 3)

	gg8, err := gridgraph.From2D([][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
	}, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Len(t, gg8.ConnectedComponents(), 1)
}

func TestTile(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{8}}, gridgraph.Conn4)
	require.NoError(t, err)

	_, err = gg.Tile(0, nil)
	assert.ErrorIs(t, err, gridgraph.ErrBadTile)

	wrap := func(v, tx, ty int) int { return (v+tx+ty-1)%9 + 1 }
	big, err := gg.Tile(5, wrap)
	require.NoError(t, err)
	assert.Equal(t, 5, big.Width)
	assert.Equal(t, [][]int{
		{8, 9, 1, 2, 3},
		{9, 1, 2, 3, 4},
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{3, 4, 5, 6, 7},
	}, big.CellValues)
}

func TestShortestPath_Chiton(t *testing.T) {
	gg, err := gridgraph.From2D(chitonSample, gridgraph.Conn4)
	require.NoError(t, err)

	risk, path, err := gg.ShortestPath(0, gg.Size()-1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(40), risk)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, gg.Size()-1, path[len(path)-1])

	var sum int64
	for _, idx := range path[1:] {
		sum += int64(gg.At(idx))
	}
	assert.Equal(t, risk, sum)

	big, err := gg.Tile(5, func(v, tx, ty int) int { return (v+tx+ty-1)%9 + 1 })
	require.NoError(t, err)
	risk, _, err = big.ShortestPath(0, big.Size()-1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(315), risk)

	_, _, err = gg.ShortestPath(0, gg.Size(), nil)
	assert.ErrorIs(t, err, gridgraph.ErrIndexOutOfRange)
}

func TestToCoreGraph_MatchesShortestPath(t *testing.T) {
	gg, err := gridgraph.From2D(chitonSample, gridgraph.Conn4)
	require.NoError(t, err)

	g, err := gg.ToCoreGraph(nil)
	require.NoError(t, err)
	assert.Equal(t, 100, g.VertexCount())
	assert.Equal(t, 2*(2*10*9), g.EdgeCount())

	v, err := g.Vertex("3,1")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Metadata["value"])

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("0,0"))
	require.NoError(t, err)
	assert.Equal(t, int64(40), dist["9,9"])
}
