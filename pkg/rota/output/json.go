// Package output serializes rota reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/rota-go/pkg/rota/models"
)

// ToJSON serializes a report. Weekday keys are emitted in sorted order.
func ToJSON(report models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// DayToJSON serializes a single day's assignment.
func DayToJSON(day models.DayAssignment, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(day, "", "  ")
	}
	return json.Marshal(day)
}
