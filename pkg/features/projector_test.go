package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// day parses a calendar date for test fixtures
func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// match builds a MatchRecord with the result derived from the score
func match(t *testing.T, date, home, away string, homeGoals, awayGoals int) models.MatchRecord {
	t.Helper()
	return models.MatchRecord{
		Date:      day(t, date),
		HomeTeam:  home,
		AwayTeam:  away,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
		Result:    resultFromGoals(homeGoals, awayGoals),
	}
}

// TestProject_TwoEventsPerMatch tests that each match produces exactly two one-sided events
func TestProject_TwoEventsPerMatch(t *testing.T) {
	matches := []models.MatchRecord{
		match(t, "2023-08-12", "Arsenal", "Chelsea", 2, 1),
		match(t, "2023-08-13", "Liverpool", "Everton", 0, 0),
	}

	events, err := Project(matches)

	require.NoError(t, err)
	require.Len(t, events, 4)

	home := events[0]
	assert.Equal(t, 0, home.Row)
	assert.Equal(t, models.SideHome, home.Side)
	assert.Equal(t, "Arsenal", home.Team)
	assert.Equal(t, "Chelsea", home.Opponent)
	assert.Equal(t, 2, home.GoalsFor)
	assert.Equal(t, 1, home.GoalsAgainst)
	assert.Equal(t, 3, home.Points)

	away := events[1]
	assert.Equal(t, 0, away.Row)
	assert.Equal(t, models.SideAway, away.Side)
	assert.Equal(t, "Chelsea", away.Team)
	assert.Equal(t, "Arsenal", away.Opponent)
	assert.Equal(t, 1, away.GoalsFor)
	assert.Equal(t, 2, away.GoalsAgainst)
	assert.Equal(t, 0, away.Points)
}

// TestProject_PointsRule tests the 3/1/0 scoring per result and side
func TestProject_PointsRule(t *testing.T) {
	tests := []struct {
		name       string
		homeGoals  int
		awayGoals  int
		homePoints int
		awayPoints int
	}{
		{"Home win", 3, 1, 3, 0},
		{"Draw", 1, 1, 1, 1},
		{"Away win", 0, 2, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := []models.MatchRecord{
				match(t, "2023-08-12", "Arsenal", "Chelsea", tt.homeGoals, tt.awayGoals),
			}

			events, err := Project(matches)

			require.NoError(t, err)
			require.Len(t, events, 2)
			assert.Equal(t, tt.homePoints, events[0].Points)
			assert.Equal(t, tt.awayPoints, events[1].Points)
		})
	}
}

// TestProject_UnknownResult tests that an unrecognized result code is rejected
func TestProject_UnknownResult(t *testing.T) {
	matches := []models.MatchRecord{
		{
			Date:     day(t, "2023-08-12"),
			HomeTeam: "Arsenal",
			AwayTeam: "Chelsea",
			Result:   models.Result("X"),
		},
	}

	events, err := Project(matches)

	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "unrecognized result code")
}

// TestProject_Empty tests projecting an empty table
func TestProject_Empty(t *testing.T) {
	events, err := Project(nil)

	assert.NoError(t, err)
	assert.Empty(t, events)
}

// TestValidateMatches tests the data-quality checks
func TestValidateMatches(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.MatchRecord)
		wantErr string
	}{
		{"Valid", func(m *models.MatchRecord) {}, ""},
		{"Zero date", func(m *models.MatchRecord) { m.Date = time.Time{} }, "missing date"},
		{"Empty home team", func(m *models.MatchRecord) { m.HomeTeam = "" }, "missing team identifier"},
		{"Negative goals", func(m *models.MatchRecord) { m.HomeGoals = -1 }, "negative goal count"},
		{"Bad result code", func(m *models.MatchRecord) { m.Result = "Z" }, "unrecognized result code"},
		{"Inconsistent result", func(m *models.MatchRecord) { m.Result = models.ResultAwayWin }, "inconsistent with score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := match(t, "2023-08-12", "Arsenal", "Chelsea", 2, 1)
			tt.mutate(&m)

			err := ValidateMatches([]models.MatchRecord{m})

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Contains(t, err.Error(), "row 0")
			}
		})
	}
}
