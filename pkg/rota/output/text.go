package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/rota-go/pkg/rota/models"
)

// WriteText renders a report for humans, one block per weekday:
//
//	Mon
//	  Team A: George Hudson, John Doe
//	  Team B: None
//	  Locum Required: Team B (3)
//
// weekdays and teams fix the print order; days missing from the report are
// skipped.
func WriteText(w io.Writer, report models.Report, weekdays, teams []string) error {
	first := true
	for _, day := range weekdays {
		info, ok := report[day]
		if !ok {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false

		if _, err := fmt.Fprintln(w, day); err != nil {
			return err
		}
		for _, team := range teams {
			members := "None"
			if m := info.Teams[team]; len(m) > 0 {
				members = strings.Join(m, ", ")
			}
			if _, err := fmt.Fprintf(w, "  %s: %s\n", team, members); err != nil {
				return err
			}
		}

		var locums []string
		for _, team := range teams {
			if n, ok := info.LocumRequired[team]; ok {
				locums = append(locums, fmt.Sprintf("%s (%d)", team, n))
			}
		}
		if len(locums) > 0 {
			if _, err := fmt.Fprintf(w, "  Locum Required: %s\n", strings.Join(locums, ", ")); err != nil {
				return err
			}
		}
	}
	return nil
}
