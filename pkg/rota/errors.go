package rota

import (
	"errors"

	"github.com/ukaji3/rota-go/pkg/rota/parser"
)

// ErrMissingPayload indicates no workbook bytes were supplied.
var ErrMissingPayload = errors.New("no Excel bytes received")

// ErrInvalidConfig indicates a Config failed validation.
var ErrInvalidConfig = errors.New("invalid rota config")

// Load failures, re-exported from the parser.
var (
	ErrArchive        = parser.ErrArchive
	ErrSheetNotFound  = parser.ErrSheetNotFound
	ErrPartResolution = parser.ErrPartResolution
)
