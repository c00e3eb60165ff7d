package features

import (
	"fmt"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// ValidateMatches checks the cleaned match table for data-quality problems
// before any feature computation runs. The cleaning service normalizes team
// names and dates upstream, so only basic integrity is checked here: since a
// leakage-sensitive pipeline must never coerce bad data silently, the whole
// call fails on the first offending row.
func ValidateMatches(matches []models.MatchRecord) error {
	for i, m := range matches {
		if m.Date.IsZero() {
			return fmt.Errorf("row %d: missing date", i)
		}
		if m.HomeTeam == "" || m.AwayTeam == "" {
			return fmt.Errorf("row %d: missing team identifier", i)
		}
		if m.HomeGoals < 0 || m.AwayGoals < 0 {
			return fmt.Errorf("row %d: negative goal count (%d-%d)", i, m.HomeGoals, m.AwayGoals)
		}
		if !m.Result.Valid() {
			return fmt.Errorf("row %d: unrecognized result code %q", i, string(m.Result))
		}
		if resultFromGoals(m.HomeGoals, m.AwayGoals) != m.Result {
			return fmt.Errorf("row %d: result %q inconsistent with score %d-%d",
				i, string(m.Result), m.HomeGoals, m.AwayGoals)
		}
	}
	return nil
}

func resultFromGoals(homeGoals, awayGoals int) models.Result {
	switch {
	case homeGoals > awayGoals:
		return models.ResultHomeWin
	case homeGoals < awayGoals:
		return models.ResultAwayWin
	}
	return models.ResultDraw
}

// Project expands each match into two one-sided team events, one per
// perspective, preserving the source date and row index. It is pure and
// order-preserving: events appear in source order, home side before away.
func Project(matches []models.MatchRecord) ([]models.TeamMatchEvent, error) {
	events := make([]models.TeamMatchEvent, 0, 2*len(matches))

	for i, m := range matches {
		homePts, err := m.Result.PointsFor(models.SideHome)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		awayPts, err := m.Result.PointsFor(models.SideAway)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		events = append(events,
			models.TeamMatchEvent{
				Row:          i,
				Side:         models.SideHome,
				Date:         m.Date,
				Team:         m.HomeTeam,
				Opponent:     m.AwayTeam,
				GoalsFor:     m.HomeGoals,
				GoalsAgainst: m.AwayGoals,
				Points:       homePts,
			},
			models.TeamMatchEvent{
				Row:          i,
				Side:         models.SideAway,
				Date:         m.Date,
				Team:         m.AwayTeam,
				Opponent:     m.HomeTeam,
				GoalsFor:     m.AwayGoals,
				GoalsAgainst: m.HomeGoals,
				Points:       awayPts,
			},
		)
	}

	return events, nil
}
