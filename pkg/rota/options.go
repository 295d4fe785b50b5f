// Package rota turns a weekly duty-roster workbook into daily team
// assignments.
package rota

import (
	"errors"
	"fmt"

	"github.com/ukaji3/rota-go/pkg/rota/allocator"
	"github.com/ukaji3/rota-go/pkg/rota/models"
	"github.com/ukaji3/rota-go/pkg/rota/roster"
)

// Config configures rota processing. A validated Config is read-only and
// may be shared by concurrent callers.
type Config struct {
	// SheetName is the exact name of the rota sheet.
	SheetName string `mapstructure:"sheet_name" yaml:"sheet_name"`
	// Weekdays labels the five day columns, in order.
	Weekdays []string `mapstructure:"weekdays" yaml:"weekdays"`
	// UnavailableTokens mark a day cell as unavailable (case-insensitive).
	UnavailableTokens []string `mapstructure:"unavailable_tokens" yaml:"unavailable_tokens"`
	// Layout locates team headers, names and day columns.
	Layout roster.Layout `mapstructure:"layout" yaml:"layout"`
	// Names filters out non-person rows.
	Names roster.NameFilter `mapstructure:"names" yaml:"names"`
	// Rules drives team allocation.
	Rules allocator.Rules `mapstructure:"rules" yaml:"rules"`
}

// DefaultConfig returns the configuration for the SHO rota template.
func DefaultConfig() Config {
	return Config{
		SheetName:         "SHO Rota",
		Weekdays:          []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		UnavailableTokens: []string{"NIGHT", "ZERO", "AL"},
		Layout:            roster.DefaultLayout(),
		Names:             roster.DefaultNameFilter(),
		Rules:             allocator.DefaultRules(),
	}
}

// Validate reports the first configuration problem found, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.SheetName == "" {
		return invalidConfig(errors.New("sheet_name is required"))
	}
	if len(c.Weekdays) != models.DaysPerWeek {
		return invalidConfig(fmt.Errorf("weekdays must list %d labels, got %d", models.DaysPerWeek, len(c.Weekdays)))
	}
	seen := make(map[string]bool, len(c.Weekdays))
	for _, d := range c.Weekdays {
		if d == "" || seen[d] {
			return invalidConfig(fmt.Errorf("weekday label %q is empty or repeated", d))
		}
		seen[d] = true
	}
	if err := c.Layout.Validate(); err != nil {
		return invalidConfig(fmt.Errorf("layout: %w", err))
	}
	if err := c.Rules.Validate(); err != nil {
		return invalidConfig(fmt.Errorf("rules: %w", err))
	}
	return nil
}

func invalidConfig(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}
