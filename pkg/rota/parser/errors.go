package parser

import (
	"errors"
	"fmt"
)

// ErrArchive indicates the input is not a readable xlsx container or one of
// its parts holds malformed markup.
var ErrArchive = errors.New("invalid xlsx container")

// ErrSheetNotFound indicates no sheet in the workbook manifest carries the
// requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrPartResolution indicates the sheet was declared in the manifest but its
// relationship or worksheet part could not be located.
var ErrPartResolution = errors.New("sheet part not resolved")

// LoadError represents a fatal error while loading a sheet matrix.
type LoadError struct {
	SheetName string
	Stage     string // "container", "shared_strings", "workbook", "relationships", "worksheet"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(sheetName, stage string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
