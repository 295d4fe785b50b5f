package parser

// Matrix is a dense, row-major grid of cell text for a single sheet.
// Coordinates are zero-based; cells absent from the sheet hold "".
type Matrix [][]string

// newMatrix allocates a rows x cols matrix of empty strings.
func newMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for r := range m {
		m[r] = make([]string, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// At returns the text at (row, col), or "" when out of range.
func (m Matrix) At(row, col int) string {
	if row < 0 || row >= len(m) {
		return ""
	}
	if col < 0 || col >= len(m[row]) {
		return ""
	}
	return m[row][col]
}
