package roster

import "strings"

// NameFilter decides whether a name-column cell holds a real person rather
// than a legend, shift label or availability token.
type NameFilter struct {
	// Banned lists markers that disqualify a cell, matched as upper-case
	// substrings.
	Banned []string `mapstructure:"banned" yaml:"banned"`
	// JuniorMarker disqualifies junior-grade rows (e.g. "FY1").
	JuniorMarker string `mapstructure:"junior_marker" yaml:"junior_marker"`
}

// DefaultNameFilter returns the markers used by the SHO rota template.
func DefaultNameFilter() NameFilter {
	return NameFilter{
		Banned:       []string{"TEAM", "BLEEP", "0800", "0700", "→", "ZERO", "NIGHT", "AL", "SECOND", "LD"},
		JuniorMarker: "FY1",
	}
}

// Match reports whether s looks like a person's name.
func (f NameFilter) Match(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	u := strings.ToUpper(s)
	if f.JuniorMarker != "" && strings.Contains(u, strings.ToUpper(f.JuniorMarker)) {
		return false
	}
	for _, b := range f.Banned {
		if b != "" && strings.Contains(u, strings.ToUpper(b)) {
			return false
		}
	}
	return true
}
