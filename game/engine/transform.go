package engine

// RotateClockwise90 turns an R x C shape into a C x R shape with
// rotated[j][R-1-i] = shape[i][j]. The shape must have at least one row.
func RotateClockwise90(shape Shape) Shape {
	rows := len(shape)
	cols := len(shape[0])

	rotated := make(Shape, cols)
	for j := range rotated {
		rotated[j] = make([]bool, rows)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rotated[j][rows-1-i] = shape[i][j]
		}
	}
	return rotated
}

// RotateTimes applies RotateClockwise90 n times (mod 4) starting from shape
func RotateTimes(shape Shape, n int) Shape {
	n = ((n % RotationStates) + RotationStates) % RotationStates
	result := shape.Clone()
	for i := 0; i < n; i++ {
		result = RotateClockwise90(result)
	}
	return result
}

// FlipHorizontal mirrors the shape left-right
func FlipHorizontal(shape Shape) Shape {
	flipped := make(Shape, len(shape))
	for i, row := range shape {
		n := len(row)
		flipped[i] = make([]bool, n)
		for j, cell := range row {
			flipped[i][n-1-j] = cell
		}
	}
	return flipped
}

// FlipVertical mirrors the shape top-bottom
func FlipVertical(shape Shape) Shape {
	n := len(shape)
	flipped := make(Shape, n)
	for i, row := range shape {
		flipped[n-1-i] = append([]bool(nil), row...)
	}
	return flipped
}

// Orientations returns every distinct shape reachable from shape through
// rotations and flips, starting with shape itself.
func Orientations(shape Shape) []Shape {
	var result []Shape
	add := func(candidate Shape) {
		for _, existing := range result {
			if existing.Equal(candidate) {
				return
			}
		}
		result = append(result, candidate)
	}

	for _, base := range []Shape{shape, FlipHorizontal(shape)} {
		current := base.Clone()
		for i := 0; i < RotationStates; i++ {
			add(current)
			current = RotateClockwise90(current)
		}
	}
	return result
}
