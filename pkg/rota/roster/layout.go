// Package roster reads people, home teams and daily availability out of a
// rota sheet matrix.
package roster

import (
	"fmt"

	"github.com/ukaji3/rota-go/pkg/rota/models"
	"github.com/ukaji3/rota-go/pkg/rota/parser"
)

// Layout names the sheet columns (by letter) the rota is read from.
type Layout struct {
	// TeamColumn holds "Team X" section headers.
	TeamColumn string `mapstructure:"team_column" yaml:"team_column"`
	// NameColumn holds person names.
	NameColumn string `mapstructure:"name_column" yaml:"name_column"`
	// DayColumns holds the Mon..Fri availability columns.
	DayColumns []string `mapstructure:"day_columns" yaml:"day_columns"`
}

// DefaultLayout returns the column layout of the SHO rota template.
func DefaultLayout() Layout {
	return Layout{
		TeamColumn: "A",
		NameColumn: "B",
		DayColumns: []string{"E", "F", "G", "H", "I"},
	}
}

// Validate checks that every column is a valid letter reference and that
// exactly one column is given per weekday.
func (l Layout) Validate() error {
	if _, ok := parser.ColumnIndex(l.TeamColumn); !ok {
		return fmt.Errorf("team_column %q is not a column letter", l.TeamColumn)
	}
	if _, ok := parser.ColumnIndex(l.NameColumn); !ok {
		return fmt.Errorf("name_column %q is not a column letter", l.NameColumn)
	}
	if len(l.DayColumns) != models.DaysPerWeek {
		return fmt.Errorf("day_columns must list %d columns, got %d", models.DaysPerWeek, len(l.DayColumns))
	}
	for _, c := range l.DayColumns {
		if _, ok := parser.ColumnIndex(c); !ok {
			return fmt.Errorf("day column %q is not a column letter", c)
		}
	}
	return nil
}
