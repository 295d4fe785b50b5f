// Package rotatest builds rota workbooks in memory for tests.
package rotatest

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet the sample rota is written to.
const SheetName = "SHO Rota"

// SampleCells is a small SHO rota: four team sections, two non-person rows,
// a locum placeholder and availability tokens spread across the week.
func SampleCells() map[string]any {
	return map[string]any{
		"A1": "SHO Rota", "E1": "Mon", "F1": "Tue", "G1": "Wed", "H1": "Thu", "I1": "Fri",
		"A2": "Team A", "B2": "George Hudson", "F2": "NIGHT",
		"B3": "John Doe", "I3": "Annual Leave",
		"B4": "FY1 Jones",
		"A5": "Team B", "B5": "Suraj Sennik",
		"B6": "Sanchita Bhatia", "I6": "AL",
		"B7": "Peter Quinn", "E7": "0800-1700",
		"A8": "Team C", "B8": "Mary Jones", "G8": "Zero",
		"A9": "Team D", "B9": "Feras Fayez",
		"B10": "Tom Brown", "H10": "Night",
		"B11": "LOCUM COVER",
		"A12": "Key", "B12": "AL = annual leave",
	}
}

// Workbook returns the bytes of an xlsx file whose first sheet is named
// sheetName and holds cells (cell reference -> value).
func Workbook(t testing.TB, sheetName string, cells map[string]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for ref, value := range cells {
		if err := f.SetCellValue(sheetName, ref, value); err != nil {
			t.Fatalf("set %s: %v", ref, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// SampleWorkbook returns the sample rota as xlsx bytes.
func SampleWorkbook(t testing.TB) []byte {
	t.Helper()
	return Workbook(t, SheetName, SampleCells())
}
