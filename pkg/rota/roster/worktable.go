package roster

import (
	"strings"

	"github.com/ukaji3/rota-go/pkg/rota/models"
	"github.com/ukaji3/rota-go/pkg/rota/parser"
)

// BuildWorkTable returns one WorkingRow per matrix row whose name cell
// passes the filter, in sheet order.
func BuildWorkTable(m parser.Matrix, layout Layout, filter NameFilter) []models.WorkingRow {
	nameCol := parser.MustColumnIndex(layout.NameColumn)
	dayCols := make([]int, len(layout.DayColumns))
	for i, c := range layout.DayColumns {
		dayCols[i] = parser.MustColumnIndex(c)
	}

	var rows []models.WorkingRow
	for r := 0; r < m.Rows(); r++ {
		name := strings.TrimSpace(m.At(r, nameCol))
		if !filter.Match(name) {
			continue
		}
		row := models.WorkingRow{Name: name}
		for i := 0; i < len(dayCols) && i < models.DaysPerWeek; i++ {
			row.Days[i] = strings.TrimSpace(m.At(r, dayCols[i]))
		}
		rows = append(rows, row)
	}
	return rows
}

// Available reports whether a day cell leaves the person free to work.
// Blank cells are available; otherwise any token found as a
// case-insensitive substring marks the person unavailable.
func Available(cell string, tokens []string) bool {
	if cell == "" {
		return true
	}
	u := strings.ToUpper(cell)
	for _, tok := range tokens {
		if tok != "" && strings.Contains(u, strings.ToUpper(tok)) {
			return false
		}
	}
	return true
}

// AvailableOn returns, in table order, the names available on weekday index
// day (0 = Monday).
func AvailableOn(rows []models.WorkingRow, day int, tokens []string) []string {
	if day < 0 || day >= models.DaysPerWeek {
		return nil
	}
	pool := make([]string, 0, len(rows))
	for _, row := range rows {
		if Available(row.Days[day], tokens) {
			pool = append(pool, row.Name)
		}
	}
	return pool
}
