package roster

import (
	"strings"

	"github.com/ukaji3/rota-go/pkg/rota/parser"
)

// TeamHeaderPrefix starts every team section header in the team column.
const TeamHeaderPrefix = "Team "

// ExtractParentTeams walks the matrix top to bottom and maps every person to
// the team section they are listed under. A later row for the same name
// overwrites an earlier one.
func ExtractParentTeams(m parser.Matrix, layout Layout, filter NameFilter) map[string]string {
	teamCol := parser.MustColumnIndex(layout.TeamColumn)
	nameCol := parser.MustColumnIndex(layout.NameColumn)

	parents := make(map[string]string)
	currentTeam := ""
	for r := 0; r < m.Rows(); r++ {
		header := strings.TrimSpace(m.At(r, teamCol))
		name := strings.TrimSpace(m.At(r, nameCol))

		if strings.HasPrefix(header, TeamHeaderPrefix) {
			currentTeam = header
		}
		if currentTeam != "" && filter.Match(name) {
			parents[name] = currentTeam
		}
	}
	return parents
}
