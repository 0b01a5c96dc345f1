package engine

import (
	"fmt"
	"strings"
)

// Shape is a row-major cell matrix, true = occupied. Transforms never
// modify a shape in place; they return a new matrix.
type Shape [][]bool

// ParseShape builds a shape from text rows where '#' is an occupied cell
// and '.' an empty one. All rows must have the same width.
func ParseShape(rows []string) (Shape, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("shape must have at least one row")
	}
	width := len(rows[0])
	shape := make(Shape, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("shape row %d must have %d characters, got %d", i+1, width, len(row))
		}
		shape[i] = make([]bool, width)
		for j, char := range row {
			switch char {
			case '#':
				shape[i][j] = true
			case '.':
			default:
				return nil, fmt.Errorf("invalid character '%c' at row %d, col %d", char, i+1, j+1)
			}
		}
	}
	return shape, nil
}

// MustParseShape is like ParseShape but panics on malformed input.
// It is meant for package-level shape constants.
func MustParseShape(rows ...string) Shape {
	shape, err := ParseShape(rows)
	if err != nil {
		panic(err)
	}
	return shape
}

// Rows returns the height of the bounding box
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the width of the bounding box
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// CellCount counts occupied cells
func (s Shape) CellCount() int {
	count := 0
	for _, row := range s {
		for _, cell := range row {
			if cell {
				count++
			}
		}
	}
	return count
}

// Cells returns the offsets of the occupied cells in row-major order
func (s Shape) Cells() []Position {
	cells := make([]Position, 0, PieceCells)
	for i, row := range s {
		for j, cell := range row {
			if cell {
				cells = append(cells, Position{Row: i, Col: j})
			}
		}
	}
	return cells
}

// Clone returns a deep copy
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	for i, row := range s {
		clone[i] = append([]bool(nil), row...)
	}
	return clone
}

// Equal reports whether both shapes have the same dimensions and cells
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the shape with '#' and '.', one line per row
func (s Shape) String() string {
	var b strings.Builder
	for i, row := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			if cell {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
