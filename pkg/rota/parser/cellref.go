// Package parser decodes xlsx workbooks into dense cell-text matrices.
package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// maxColumnLetters is the length of the widest column name, "XFD".
const maxColumnLetters = 3

// ColumnIndex converts Excel column letters (e.g. "A", "E", "AA") to a
// zero-based column index. Letters must be upper-case A-Z and name a
// column within the worksheet limit (A..XFD).
func ColumnIndex(letters string) (int, bool) {
	if letters == "" || len(letters) > maxColumnLetters {
		return 0, false
	}
	n := 0
	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		if ch < 'A' || ch > 'Z' {
			return 0, false
		}
		n = n*26 + int(ch-'A'+1)
	}
	if n > excelize.MaxColumns {
		return 0, false
	}
	return n - 1, true
}

// MustColumnIndex is like ColumnIndex but panics on invalid letters.
// It is meant for validated configuration values.
func MustColumnIndex(letters string) int {
	idx, ok := ColumnIndex(letters)
	if !ok {
		panic("parser: invalid column letters " + strconv.Quote(letters))
	}
	return idx
}

// ParseCellRef returns the zero-based (row, col) for a cell reference like
// "E12". References must be column letters followed by a positive row number,
// both within the worksheet limits.
func ParseCellRef(ref string) (row, col int, ok bool) {
	split := 0
	for split < len(ref) && ref[split] >= 'A' && ref[split] <= 'Z' {
		split++
	}
	if split == 0 || split == len(ref) {
		return 0, 0, false
	}

	digits := ref[split:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, 0, false
		}
	}
	rowNum, err := strconv.Atoi(digits)
	if err != nil || rowNum < 1 || rowNum > excelize.TotalRows {
		return 0, 0, false
	}

	col, ok = ColumnIndex(ref[:split])
	if !ok {
		return 0, 0, false
	}
	return rowNum - 1, col, true
}
