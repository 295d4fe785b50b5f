// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/ukaji3/rota-go/pkg/rota/models"
	"go.uber.org/zap"
)

// Processor turns workbook bytes into a weekly report.
type Processor interface {
	Process(data []byte) (models.Report, error)
}

// Handler serves the rota endpoints.
type Handler struct {
	log       *zap.SugaredLogger
	processor Processor
	formField string
}

// NewHandler constructs the rota handler. formField names the multipart
// field that carries the workbook.
func NewHandler(log *zap.SugaredLogger, processor Processor, formField string) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if formField == "" {
		formField = "file"
	}
	return &Handler{
		log:       log,
		processor: processor,
		formField: formField,
	}
}
