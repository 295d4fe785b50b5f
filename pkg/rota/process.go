package rota

import (
	"fmt"
	"os"

	"github.com/ukaji3/rota-go/pkg/rota/allocator"
	"github.com/ukaji3/rota-go/pkg/rota/models"
	"github.com/ukaji3/rota-go/pkg/rota/parser"
	"github.com/ukaji3/rota-go/pkg/rota/roster"
	"go.uber.org/zap"
)

// Processor computes weekly reports for a fixed configuration. It holds no
// per-request state and is safe for concurrent use.
type Processor struct {
	cfg Config
	log *zap.SugaredLogger
}

// NewProcessor validates cfg and returns a Processor. A nil logger discards
// all output.
func NewProcessor(cfg Config, log *zap.SugaredLogger) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Processor{cfg: cfg, log: log}, nil
}

// Config returns the processor's configuration.
func (p *Processor) Config() Config {
	return p.cfg
}

// Process decodes the rota sheet from an xlsx payload and assigns teams for
// every configured weekday.
func (p *Processor) Process(data []byte) (models.Report, error) {
	if len(data) == 0 {
		return nil, ErrMissingPayload
	}

	m, err := parser.LoadMatrix(data, p.cfg.SheetName)
	if err != nil {
		return nil, err
	}
	usedRange, _ := parser.UsedRange(m)
	p.log.Debugw("rota sheet loaded",
		"sheet", p.cfg.SheetName,
		"rows", m.Rows(),
		"cols", m.Cols(),
		"used_range", usedRange,
	)

	parents := roster.ExtractParentTeams(m, p.cfg.Layout, p.cfg.Names)
	rows := roster.BuildWorkTable(m, p.cfg.Layout, p.cfg.Names)
	p.log.Debugw("rota table built", "people", len(rows), "home_teams", len(parents))

	report := make(models.Report, len(p.cfg.Weekdays))
	for i, day := range p.cfg.Weekdays {
		pool := roster.AvailableOn(rows, i, p.cfg.UnavailableTokens)
		assignment := allocator.AssignDay(pool, parents, p.cfg.Rules)
		report[day] = assignment

		p.log.Debugw("day assigned",
			"day", day,
			"available", len(pool),
			"seated", assignment.Headcount(),
			"locum_required", assignment.LocumRequired,
		)
	}

	return report, nil
}

// Process runs a one-off Processor over data.
func Process(data []byte, cfg Config) (models.Report, error) {
	p, err := NewProcessor(cfg, nil)
	if err != nil {
		return nil, err
	}
	return p.Process(data)
}

// ProcessFile reads an xlsx file from disk and processes it.
func ProcessFile(path string, cfg Config) (models.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return Process(data, cfg)
}
