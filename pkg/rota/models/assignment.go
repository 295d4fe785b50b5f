// Package models defines data structures for rota processing.
package models

// DayAssignment is the team allocation computed for a single weekday.
type DayAssignment struct {
	// Teams maps team name to its members in assignment order. Every
	// configured team is present, with an empty list when nobody was seated.
	Teams map[string][]string `json:"Teams"`
	// LocumRequired maps team name to the number of people still missing.
	// Only under-filled teams appear, and only when the day's headcount is
	// below the locum threshold.
	LocumRequired map[string]int `json:"Locum Required"`
}

// Headcount returns the number of people seated across all teams.
func (d DayAssignment) Headcount() int {
	n := 0
	for _, members := range d.Teams {
		n += len(members)
	}
	return n
}

// TeamOf returns the team a person was seated on.
func (d DayAssignment) TeamOf(name string) (string, bool) {
	for team, members := range d.Teams {
		for _, m := range members {
			if m == name {
				return team, true
			}
		}
	}
	return "", false
}
