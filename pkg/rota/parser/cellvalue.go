package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell type markers as they appear in the t attribute of a <c> element.
const (
	cellTypeSharedString = "s"
	cellTypeInlineString = "inlineStr"
)

// CellValue is the decoded content of a single worksheet cell. It is one of
// SharedStringRef, InlineString or LiteralText.
type CellValue interface {
	isCellValue()
}

// SharedStringRef points into the workbook shared-string pool.
type SharedStringRef struct {
	Index int
}

// InlineString holds text stored directly in the cell (<is> element).
type InlineString struct {
	Text string
}

// LiteralText holds the raw <v> text of numbers, booleans, dates and cached
// formula results.
type LiteralText struct {
	Text string
}

func (SharedStringRef) isCellValue() {}
func (InlineString) isCellValue()    {}
func (LiteralText) isCellValue()     {}

// rawCell is a <c> element as read from the worksheet markup.
type rawCell struct {
	ref    string
	kind   string
	value  string
	hasV   bool
	inline string
}

// decodeCellValue maps the cell's type marker onto a CellValue.
func decodeCellValue(c rawCell) (CellValue, error) {
	switch c.kind {
	case cellTypeSharedString:
		if !c.hasV {
			return LiteralText{}, nil
		}
		idx, err := strconv.Atoi(strings.TrimSpace(c.value))
		if err != nil {
			return nil, fmt.Errorf("cell %s: shared string index %q: %w", c.ref, c.value, ErrArchive)
		}
		return SharedStringRef{Index: idx}, nil
	case cellTypeInlineString:
		return InlineString{Text: c.inline}, nil
	default:
		return LiteralText{Text: c.value}, nil
	}
}

// cellText resolves a CellValue against the shared-string pool.
func cellText(v CellValue, pool []string) (string, error) {
	switch v := v.(type) {
	case SharedStringRef:
		if v.Index < 0 || v.Index >= len(pool) {
			return "", fmt.Errorf("shared string index %d out of range (pool size %d): %w", v.Index, len(pool), ErrArchive)
		}
		return pool[v.Index], nil
	case InlineString:
		return v.Text, nil
	case LiteralText:
		return v.Text, nil
	default:
		return "", fmt.Errorf("unsupported cell value %T", v)
	}
}
