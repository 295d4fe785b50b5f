package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetInfo describes one sheet of a workbook.
type SheetInfo struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Rows    int    `json:"rows"`
}

// ListSheets lists the sheets of an xlsx workbook in tab order. It is a
// read-only helper for picking the rota sheet name.
func ListSheets(r io.Reader) ([]SheetInfo, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchive, err)
	}
	defer f.Close()

	var sheets []SheetInfo
	for _, name := range f.GetSheetList() {
		info := SheetInfo{Name: name, Visible: true}

		if visible, err := f.GetSheetVisible(name); err == nil {
			info.Visible = visible
		}

		// Chart sheets have no rows
		if rows, err := f.GetRows(name); err == nil {
			info.Rows = len(rows)
		}

		sheets = append(sheets, info)
	}
	return sheets, nil
}
