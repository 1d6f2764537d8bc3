package life

// neighborOffsets lists the Moore neighbourhood column by column: the left
// column top to bottom, then above and below, then the right column.
var neighborOffsets = [8]Pos{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// neighborPositions returns the eight wrapped neighbours of (row, col). They
// are distinct whenever the grid is at least 3x3.
func (g *Grid) neighborPositions(row, col int) [8]Pos {
	var out [8]Pos
	for k, off := range neighborOffsets {
		r, c := g.wrap(row+off.Row, col+off.Col)
		out[k] = Pos{Row: r, Col: c}
	}
	return out
}
