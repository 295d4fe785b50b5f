package allocator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rota-go/pkg/rota/models"
)

func TestAssignDayOverridesAndHomeTeam(t *testing.T) {
	pool := []string{"George Hudson", "Suraj Sennik", "Sanchita Bhatia", "Feras Fayez", "Alice Smith"}
	home := map[string]string{"Alice Smith": "Team C"}

	got := AssignDay(pool, home, DefaultRules())

	require.Equal(t, models.DayAssignment{
		Teams: map[string][]string{
			"Team A": {"George Hudson"},
			"Team B": {"Suraj Sennik", "Sanchita Bhatia"},
			"Team C": {"Alice Smith"},
			"Team D": {"Feras Fayez"},
		},
		LocumRequired: map[string]int{"Team A": 1, "Team B": 1},
	}, got)
}

func TestAssignDayEmptyPool(t *testing.T) {
	got := AssignDay(nil, nil, DefaultRules())

	require.Equal(t, models.DayAssignment{
		Teams: map[string][]string{
			"Team A": {},
			"Team B": {},
			"Team C": {},
			"Team D": {},
		},
		LocumRequired: map[string]int{"Team A": 2, "Team B": 3, "Team C": 1, "Team D": 1},
	}, got)
}

func TestAssignDayEmptyPoolZeroThreshold(t *testing.T) {
	rules := DefaultRules()
	rules.LocumThreshold = 0

	got := AssignDay([]string{}, map[string]string{}, rules)

	require.Empty(t, got.LocumRequired)
	require.NotNil(t, got.LocumRequired)
	for _, members := range got.Teams {
		require.Empty(t, members)
	}
}

func TestAssignDayNoShortfallAtThreshold(t *testing.T) {
	rules := DefaultRules()
	rules.LocumThreshold = 3

	got := AssignDay([]string{"P1", "P2", "P3"}, nil, rules)

	require.Equal(t, []string{"P1", "P2"}, got.Teams["Team A"])
	require.Equal(t, []string{"P3"}, got.Teams["Team B"])
	require.Empty(t, got.LocumRequired)
}

func TestAssignDayFillsMinimumsThenSpreadsOverflow(t *testing.T) {
	pool := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		pool = append(pool, fmt.Sprintf("P%d", i))
	}

	got := AssignDay(pool, nil, DefaultRules())

	require.Equal(t, map[string][]string{
		"Team A": {"P1", "P2", "P10"},
		"Team B": {"P3", "P4", "P5"},
		"Team C": {"P6", "P8"},
		"Team D": {"P7", "P9"},
	}, got.Teams)
	require.Empty(t, got.LocumRequired)
}

func TestAssignDayHomeTeamPreference(t *testing.T) {
	pool := []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"}
	home := map[string]string{
		"P1": "Team D",
		"P2": "Team D",
		"P3": "Team C",
		"P7": "Team A",
	}

	got := AssignDay(pool, home, DefaultRules())

	require.Equal(t, map[string][]string{
		"Team A": {"P7", "P2"},
		"Team B": {"P4", "P5", "P6"},
		"Team C": {"P3"},
		"Team D": {"P1"},
	}, got.Teams)
	require.Empty(t, got.LocumRequired)
}

func TestAssignDayUnknownHomeTeamIgnored(t *testing.T) {
	got := AssignDay([]string{"P1", "P2"}, map[string]string{"P2": "Team Z"}, DefaultRules())

	require.Equal(t, []string{"P1", "P2"}, got.Teams["Team A"])
	require.Equal(t, map[string]int{"Team B": 3, "Team C": 1, "Team D": 1}, got.LocumRequired)
}

func TestAssignDayOverrideWinsOverHomeTeam(t *testing.T) {
	pool := []string{"P1", "George Hudson", "P2"}
	home := map[string]string{"George Hudson": "Team C", "P1": "Team C"}

	got := AssignDay(pool, home, DefaultRules())

	require.Equal(t, []string{"George Hudson", "P2"}, got.Teams["Team A"])
	require.Equal(t, []string{"P1"}, got.Teams["Team C"])

	team, ok := got.TeamOf("George Hudson")
	require.True(t, ok)
	require.Equal(t, "Team A", team)

	_, ok = got.TeamOf("Nobody")
	require.False(t, ok)
}

func TestAssignDayOverridesIgnoreMinimumCap(t *testing.T) {
	rules := DefaultRules()
	rules.Overrides = []Override{
		{Name: "O1", Team: "Team D"},
		{Name: "O2", Team: "Team D"},
	}
	pool := []string{"H1", "O2", "O1"}
	home := map[string]string{"H1": "Team D"}

	got := AssignDay(pool, home, rules)

	require.Equal(t, []string{"O1", "O2"}, got.Teams["Team D"])
	require.Equal(t, []string{"H1"}, got.Teams["Team A"])
}

func TestAssignDayDropsLocumCover(t *testing.T) {
	pool := []string{"LOCUM COVER", "P1", "Locum Cover (agency)", "P2", "P3", "P4", "P5", "P6", "P7"}

	got := AssignDay(pool, nil, DefaultRules())

	for team, members := range got.Teams {
		for _, m := range members {
			require.NotContains(t, m, "LOCUM", "team %s", team)
			require.NotContains(t, m, "Locum", "team %s", team)
		}
	}
	require.Equal(t, 7, got.Headcount())
	require.Empty(t, got.LocumRequired)

	// Placeholders do not count towards the headcount.
	got = AssignDay([]string{"LOCUM COVER", "P1", "P2", "P3", "P4", "P5", "P6"}, nil, DefaultRules())
	require.Equal(t, map[string]int{"Team D": 1}, got.LocumRequired)
}

func TestAssignDayDeterministic(t *testing.T) {
	pool := []string{"P3", "Feras Fayez", "P1", "George Hudson", "P2", "P4", "P5", "P6", "P7", "P8"}
	home := map[string]string{"P1": "Team B", "P2": "Team B", "P5": "Team D"}
	poolCopy := append([]string(nil), pool...)

	first := AssignDay(pool, home, DefaultRules())
	for i := 0; i < 20; i++ {
		require.Equal(t, first, AssignDay(pool, home, DefaultRules()))
	}
	require.Equal(t, poolCopy, pool, "input pool must not be modified")
}

func TestAssignDayLargePoolMeetsMinimums(t *testing.T) {
	rules := DefaultRules()

	for size := rules.TotalMinimum(); size <= 25; size++ {
		pool := make([]string, 0, size)
		home := make(map[string]string)
		for i := 0; i < size; i++ {
			name := fmt.Sprintf("Person %02d", i)
			pool = append(pool, name)
			home[name] = rules.Teams[i%len(rules.Teams)].Name
		}
		pool = append(pool, "Suraj Sennik")

		got := AssignDay(pool, home, rules)

		seen := make(map[string]string)
		for _, quota := range rules.Teams {
			members := got.Teams[quota.Name]
			require.GreaterOrEqual(t, len(members), quota.Minimum, "size %d team %s", size, quota.Name)
			for _, m := range members {
				prev, dup := seen[m]
				require.False(t, dup, "size %d: %s seated on %s and %s", size, m, prev, quota.Name)
				seen[m] = quota.Name
			}
		}
		require.Len(t, seen, len(pool))
		team, ok := got.TeamOf("Suraj Sennik")
		require.True(t, ok)
		require.Equal(t, "Team B", team)
		require.Empty(t, got.LocumRequired)
	}
}

func TestAssignDayOverflowIsEven(t *testing.T) {
	rules := Rules{
		Teams: []TeamQuota{
			{Name: "North", Minimum: 0},
			{Name: "South", Minimum: 0},
			{Name: "East", Minimum: 0},
		},
	}
	pool := []string{"a", "b", "c", "d", "e", "f", "g"}

	got := AssignDay(pool, nil, rules)

	require.Equal(t, map[string][]string{
		"North": {"a", "d", "g"},
		"South": {"b", "e"},
		"East":  {"c", "f"},
	}, got.Teams)
}

func TestRulesValidate(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())
	require.Equal(t, 7, DefaultRules().TotalMinimum())

	tests := []struct {
		name   string
		mutate func(r *Rules)
	}{
		{"no teams", func(r *Rules) { r.Teams = nil }},
		{"blank team", func(r *Rules) { r.Teams[0].Name = "" }},
		{"duplicate team", func(r *Rules) { r.Teams[1].Name = "Team A" }},
		{"negative minimum", func(r *Rules) { r.Teams[2].Minimum = -1 }},
		{"override unknown team", func(r *Rules) { r.Overrides[0].Team = "Team Z" }},
		{"override blank name", func(r *Rules) { r.Overrides[0].Name = "" }},
		{"negative threshold", func(r *Rules) { r.LocumThreshold = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.mutate(&r)
			require.Error(t, r.Validate())
		})
	}
}
