package gridgraph

// Tile returns a new grid made of n×n copies of gg. The copy in tile column tx
// and tile row ty holds fn(value, tx, ty) for every original value; a nil fn
// copies values unchanged. Options (connectivity, land predicate) carry over.
// Returns ErrBadTile when n < 1.
// Complexity: O(n²·W·H).
func (gg *GridGraph) Tile(n int, fn func(value, tx, ty int) int) (*GridGraph, error) {
	if n < 1 {
		return nil, ErrBadTile
	}
	if fn == nil {
		fn = func(v, _, _ int) int { return v }
	}
	w, h := gg.Width*n, gg.Height*n
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		ty, sy := y/gg.Height, y%gg.Height
		for x := 0; x < w; x++ {
			tx, sx := x/gg.Width, x%gg.Width
			cells[y][x] = fn(gg.CellValues[sy][sx], tx, ty)
		}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            gg.Conn,
		LandThreshold:   gg.LandThreshold,
		isLand:          gg.isLand,
		neighborOffsets: gg.neighborOffsets,
	}, nil
}
