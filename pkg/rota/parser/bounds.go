package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Bounds is the zero-based bounding box of the non-empty cells of a matrix.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	NonEmpty       int
}

// DataBounds finds the bounding box of non-empty cells. ok is false when
// every cell is empty.
func DataBounds(m Matrix) (b Bounds, ok bool) {
	b = Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range m {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			b.NonEmpty++
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	return b, b.NonEmpty > 0
}

// UsedRange returns the range (e.g. "A1:I40") enclosing every non-empty cell.
func UsedRange(m Matrix) (string, bool) {
	b, ok := DataBounds(m)
	if !ok {
		return "", false
	}

	startCell, err := excelize.CoordinatesToCellName(b.MinCol+1, b.MinRow+1)
	if err != nil {
		return "", false
	}
	endCell, err := excelize.CoordinatesToCellName(b.MaxCol+1, b.MaxRow+1)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), true
}
