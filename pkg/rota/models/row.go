package models

// DaysPerWeek is the number of weekday columns read from the rota.
const DaysPerWeek = 5

// WorkingRow is a person row from the rota sheet with the raw cell text of
// each weekday column.
type WorkingRow struct {
	// Name is the trimmed person name.
	Name string `json:"name"`
	// Days holds the raw text for Mon..Fri (empty when the cell is blank).
	Days [DaysPerWeek]string `json:"days"`
}
