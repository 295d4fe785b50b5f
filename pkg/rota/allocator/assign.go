package allocator

import (
	"strings"

	"github.com/ukaji3/rota-go/pkg/rota/models"
)

// AssignDay seats the day's available people on teams.
//
// The steps run in a fixed order:
//  1. drop locum placeholders; the remaining count is the headcount
//  2. seat overrides in rule order, regardless of team size
//  3. seat people on their home team while it is below its minimum
//  4. fill each team up to its minimum from the front of the queue
//  5. hand leftovers one by one to the smallest team
//  6. if headcount < LocumThreshold, report each team's shortfall
//
// AssignDay never fails and does not modify its inputs.
func AssignDay(pool []string, homeTeams map[string]string, rules Rules) models.DayAssignment {
	marker := strings.ToUpper(rules.LocumMarker)
	names := make([]string, 0, len(pool))
	for _, n := range pool {
		if marker != "" && strings.Contains(strings.ToUpper(n), marker) {
			continue
		}
		names = append(names, n)
	}
	headcount := len(names)

	teamIndex := make(map[string]int, len(rules.Teams))
	for i, t := range rules.Teams {
		teamIndex[t.Name] = i
	}
	rosters := make([][]string, len(rules.Teams))
	for i := range rosters {
		rosters[i] = []string{}
	}

	unassigned := append([]string(nil), names...)

	for _, o := range rules.Overrides {
		idx := indexOf(unassigned, o.Name)
		if idx < 0 {
			continue
		}
		t, ok := teamIndex[o.Team]
		if !ok {
			continue
		}
		rosters[t] = append(rosters[t], o.Name)
		unassigned = removeAt(unassigned, idx)
	}

	remaining := make([]string, 0, len(unassigned))
	for _, n := range unassigned {
		if t, ok := teamIndex[homeTeams[n]]; ok && len(rosters[t]) < rules.Teams[t].Minimum {
			rosters[t] = append(rosters[t], n)
			continue
		}
		remaining = append(remaining, n)
	}
	unassigned = remaining

	for t, quota := range rules.Teams {
		for len(rosters[t]) < quota.Minimum && len(unassigned) > 0 {
			rosters[t] = append(rosters[t], unassigned[0])
			unassigned = unassigned[1:]
		}
	}

	for len(unassigned) > 0 && len(rosters) > 0 {
		smallest := 0
		for t := 1; t < len(rosters); t++ {
			if len(rosters[t]) < len(rosters[smallest]) {
				smallest = t
			}
		}
		rosters[smallest] = append(rosters[smallest], unassigned[0])
		unassigned = unassigned[1:]
	}

	result := models.DayAssignment{
		Teams:         make(map[string][]string, len(rules.Teams)),
		LocumRequired: make(map[string]int),
	}
	for t, quota := range rules.Teams {
		result.Teams[quota.Name] = rosters[t]
		if headcount < rules.LocumThreshold && len(rosters[t]) < quota.Minimum {
			result.LocumRequired[quota.Name] = quota.Minimum - len(rosters[t])
		}
	}
	return result
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func removeAt(names []string, i int) []string {
	out := make([]string, 0, len(names)-1)
	out = append(out, names[:i]...)
	return append(out, names[i+1:]...)
}
