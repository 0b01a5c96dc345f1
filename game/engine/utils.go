package engine

// CenteredTopLeft converts a drop coordinate, which marks the visual center
// of the shape, into the top-left corner used for placement. The corner is
// clamped so the bounding box stays on the board whenever it fits at all.
func CenteredTopLeft(shape Shape, drop Position) Position {
	return Position{
		Row: clamp(drop.Row-shape.Rows()/2, 0, Rows-shape.Rows()),
		Col: clamp(drop.Col-shape.Cols()/2, 0, Cols-shape.Cols()),
	}
}

// ShapeCellsAt returns the board coordinates covered by shape at top-left pos
func ShapeCellsAt(shape Shape, pos Position) []Position {
	cells := shape.Cells()
	for i := range cells {
		cells[i].Row += pos.Row
		cells[i].Col += pos.Col
	}
	return cells
}

// CheckParity reports whether the empty area is a multiple of PieceCells.
// It is a necessary condition for filling the board with whole pentominoes,
// not a proof that a tiling exists.
func CheckParity(b *Board) bool {
	return b.EmptyCount()%PieceCells == 0
}

// clamp keeps v within [lo, hi]; lo wins when hi < lo
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
