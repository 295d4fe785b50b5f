// Package allocator distributes a day's available people into quota teams.
package allocator

import (
	"errors"
	"fmt"
)

// TeamQuota is a team and the smallest acceptable headcount for it.
type TeamQuota struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Minimum int    `mapstructure:"minimum" yaml:"minimum"`
}

// Override seats a named person on a fixed team whenever they are available.
type Override struct {
	Name string `mapstructure:"name" yaml:"name"`
	Team string `mapstructure:"team" yaml:"team"`
}

// Rules configures AssignDay. Teams and Overrides are ordered: team order
// breaks ties, override order decides seating.
type Rules struct {
	Teams     []TeamQuota `mapstructure:"teams" yaml:"teams"`
	Overrides []Override  `mapstructure:"overrides" yaml:"overrides"`
	// LocumThreshold is the headcount below which shortfalls are reported.
	LocumThreshold int `mapstructure:"locum_threshold" yaml:"locum_threshold"`
	// LocumMarker identifies placeholder entries that are never seated.
	LocumMarker string `mapstructure:"locum_marker" yaml:"locum_marker"`
}

// DefaultRules returns the SHO rota quotas and fixed seats.
func DefaultRules() Rules {
	return Rules{
		Teams: []TeamQuota{
			{Name: "Team A", Minimum: 2},
			{Name: "Team B", Minimum: 3},
			{Name: "Team C", Minimum: 1},
			{Name: "Team D", Minimum: 1},
		},
		Overrides: []Override{
			{Name: "George Hudson", Team: "Team A"},
			{Name: "Suraj Sennik", Team: "Team B"},
			{Name: "Sanchita Bhatia", Team: "Team B"},
			{Name: "Feras Fayez", Team: "Team D"},
		},
		LocumThreshold: 7,
		LocumMarker:    "LOCUM COVER",
	}
}

// Validate checks team names are unique, minimums are non-negative and
// every override targets a configured team.
func (r Rules) Validate() error {
	if len(r.Teams) == 0 {
		return errors.New("at least one team is required")
	}
	seen := make(map[string]bool, len(r.Teams))
	for _, t := range r.Teams {
		if t.Name == "" {
			return errors.New("team name is required")
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate team %q", t.Name)
		}
		if t.Minimum < 0 {
			return fmt.Errorf("team %q: minimum must not be negative", t.Name)
		}
		seen[t.Name] = true
	}
	for _, o := range r.Overrides {
		if o.Name == "" {
			return errors.New("override name is required")
		}
		if !seen[o.Team] {
			return fmt.Errorf("override %q: unknown team %q", o.Name, o.Team)
		}
	}
	if r.LocumThreshold < 0 {
		return errors.New("locum_threshold must not be negative")
	}
	return nil
}

// TotalMinimum returns the sum of every team's minimum.
func (r Rules) TotalMinimum() int {
	total := 0
	for _, t := range r.Teams {
		total += t.Minimum
	}
	return total
}
