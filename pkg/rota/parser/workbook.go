package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// Part names inside an xlsx package.
const (
	partWorkbook      = "xl/workbook.xml"
	partWorkbookRels  = "xl/_rels/workbook.xml.rels"
	partSharedStrings = "xl/sharedStrings.xml"
)

// placedCell is a decoded cell waiting to be written into the matrix.
type placedCell struct {
	row  int
	col  int
	text string
}

// LoadMatrix decodes the sheet named sheetName from an in-memory xlsx
// container into a dense text matrix.
//
// The sheet is located through xl/workbook.xml and xl/_rels/workbook.xml.rels,
// shared strings are resolved from xl/sharedStrings.xml when present, and
// every cell value is whitespace-trimmed. Cells whose reference is missing or
// malformed are skipped. Any other problem aborts the load with an error that
// wraps ErrArchive, ErrSheetNotFound or ErrPartResolution.
func LoadMatrix(data []byte, sheetName string) (Matrix, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, newLoadError(sheetName, "container", fmt.Errorf("%w: %v", ErrArchive, err))
	}

	pool, err := loadSharedStrings(zr)
	if err != nil {
		return nil, newLoadError(sheetName, "shared_strings", err)
	}

	rID, err := findSheetRelID(zr, sheetName)
	if err != nil {
		return nil, newLoadError(sheetName, "workbook", err)
	}

	sheetPath, err := resolveSheetPart(zr, rID)
	if err != nil {
		return nil, newLoadError(sheetName, "relationships", err)
	}

	m, err := readWorksheet(zr, sheetPath, pool)
	if err != nil {
		return nil, newLoadError(sheetName, "worksheet", err)
	}
	return m, nil
}

// loadSharedStrings returns the shared-string pool, or nil when the package
// has none. Each entry concatenates all nested <t> runs of its <si>.
func loadSharedStrings(r *zip.Reader) ([]string, error) {
	data, err := readZipFile(r, partSharedStrings)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var pool []string
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, markupError(partSharedStrings, err)
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			text, err := collectText(decoder)
			if err != nil {
				return nil, markupError(partSharedStrings, err)
			}
			pool = append(pool, text)
		}
	}
	return pool, nil
}

// findSheetRelID returns the relationship id of the first <sheet> whose name
// equals sheetName.
func findSheetRelID(r *zip.Reader, sheetName string) (string, error) {
	data, err := readZipFile(r, partWorkbook)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s missing: %w", partWorkbook, ErrArchive)
	}
	if err != nil {
		return "", err
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", markupError(partWorkbook, err)
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var name, rID string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "name":
				name = attr.Value
			case "id":
				rID = attr.Value
			}
		}
		if name != sheetName {
			continue
		}
		if rID == "" {
			return "", fmt.Errorf("sheet %q has no relationship id: %w", sheetName, ErrPartResolution)
		}
		return rID, nil
	}

	return "", fmt.Errorf("sheet %q: %w", sheetName, ErrSheetNotFound)
}

// resolveSheetPart maps a workbook relationship id to the worksheet part path
// and checks that the part exists.
func resolveSheetPart(r *zip.Reader, rID string) (string, error) {
	data, err := readZipFile(r, partWorkbookRels)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s missing: %w", partWorkbookRels, ErrPartResolution)
	}
	if err != nil {
		return "", err
	}

	var target string
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for target == "" {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", markupError(partWorkbookRels, err)
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var id, tgt string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Id":
				id = attr.Value
			case "Target":
				tgt = attr.Value
			}
		}
		if id == rID {
			if tgt == "" {
				return "", fmt.Errorf("relationship %s has no target: %w", rID, ErrPartResolution)
			}
			target = tgt
		}
	}
	if target == "" {
		return "", fmt.Errorf("relationship %s not found: %w", rID, ErrPartResolution)
	}

	partPath := resolvePartPath(target)
	if !hasZipFile(r, partPath) {
		return "", fmt.Errorf("part %s: %w", partPath, ErrPartResolution)
	}
	return partPath, nil
}

// readWorksheet decodes every <c> element of the worksheet part.
func readWorksheet(r *zip.Reader, sheetPath string, pool []string) (Matrix, error) {
	data, err := readZipFile(r, sheetPath)
	if err != nil {
		return nil, err
	}

	var cells []placedCell
	maxRow, maxCol := 0, 0

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, markupError(sheetPath, err)
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "c" {
			continue
		}

		raw, err := parseCell(decoder, se)
		if err != nil {
			return nil, markupError(sheetPath, err)
		}
		row, col, ok := ParseCellRef(raw.ref)
		if !ok {
			continue
		}

		value, err := decodeCellValue(raw)
		if err != nil {
			return nil, err
		}
		text, err := cellText(value, pool)
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", raw.ref, err)
		}

		cells = append(cells, placedCell{row: row, col: col, text: strings.TrimSpace(text)})
		if row > maxRow {
			maxRow = row
		}
		if col > maxCol {
			maxCol = col
		}
	}

	m := newMatrix(maxRow+1, maxCol+1)
	for _, c := range cells {
		m[c.row][c.col] = c.text
	}
	return m, nil
}

// parseCell reads a <c> element whose start tag has just been consumed.
func parseCell(decoder *xml.Decoder, start xml.StartElement) (rawCell, error) {
	var c rawCell
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "r":
			c.ref = attr.Value
		case "t":
			c.kind = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return c, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "v":
				text, err := readElementText(decoder)
				if err != nil {
					return c, err
				}
				c.value, c.hasV = text, true
			case "is":
				text, err := collectText(decoder)
				if err != nil {
					return c, err
				}
				c.inline = text
			default:
				if err := decoder.Skip(); err != nil {
					return c, err
				}
			}
		case xml.EndElement:
			return c, nil
		}
	}
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s: %w: %w", name, ErrArchive, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w: %w", name, ErrArchive, err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}

func hasZipFile(r *zip.Reader, name string) bool {
	for _, f := range r.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

// readElementText returns all character data up to the end of the current
// element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// collectText consumes the current element and concatenates the character
// data of every nested <t> element, which covers plain and rich-text runs.
func collectText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth, inText := 1, 0
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				inText++
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "t" && inText > 0 {
				inText--
			}
		case xml.CharData:
			if inText > 0 {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}

// resolvePartPath turns a workbook relationship target into a package path.
// Targets are relative to xl/ unless they start with "/".
func resolvePartPath(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join("xl", target)
}

func markupError(part string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%s: %w: %w", part, ErrArchive, err)
}
