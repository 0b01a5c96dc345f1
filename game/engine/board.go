package engine

// Board is the fixed Rows x Cols occupancy grid. The zero value is an
// empty board ready to use.
type Board struct {
	cells [Rows][Cols]bool
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// CanPlace checks that the shape's bounding box starting at pos lies inside
// the board and that none of its occupied cells overlap an occupied board
// cell. It has no side effects.
func (b *Board) CanPlace(shape Shape, pos Position) bool {
	rows, cols := shape.Rows(), shape.Cols()
	if rows == 0 || cols == 0 {
		return false
	}

	// Bounding box must be fully on the board
	if pos.Row < 0 || pos.Row+rows > Rows || pos.Col < 0 || pos.Col+cols > Cols {
		return false
	}

	for i, row := range shape {
		for j, cell := range row {
			if cell && b.cells[pos.Row+i][pos.Col+j] {
				return false
			}
		}
	}
	return true
}

// Place validates with CanPlace and, only when valid, marks every occupied
// cell of the shape. A rejected placement leaves the board untouched.
func (b *Board) Place(shape Shape, pos Position) bool {
	if !b.CanPlace(shape, pos) {
		return false
	}
	b.write(shape, pos, true)
	return true
}

// Clear is the inverse of Place. The caller must pass the shape and
// position of a previous successful placement; no checks are made.
func (b *Board) Clear(shape Shape, pos Position) {
	b.write(shape, pos, false)
}

func (b *Board) write(shape Shape, pos Position, value bool) {
	for i, row := range shape {
		for j, cell := range row {
			if cell {
				b.cells[pos.Row+i][pos.Col+j] = value
			}
		}
	}
}

// IsOccupied reports whether a cell is filled. Coordinates off the board
// report false.
func (b *Board) IsOccupied(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	return b.cells[row][col]
}

// EmptyCount counts unoccupied cells
func (b *Board) EmptyCount() int {
	count := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if !cell {
				count++
			}
		}
	}
	return count
}

// IsFull reports whether every cell is occupied
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// Grid returns a copy of the occupancy grid
func (b *Board) Grid() [][]bool {
	grid := make([][]bool, Rows)
	for i := range grid {
		grid[i] = append([]bool(nil), b.cells[i][:]...)
	}
	return grid
}
