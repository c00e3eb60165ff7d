package features

import (
	"fmt"
	"math"
	"sort"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// RatingRow holds the pre-match Elo features for one source match row.
type RatingRow struct {
	Row     int
	HomeElo float64
	AwayElo float64
	EloDiff float64
	HomeExp float64
	AwayExp float64
}

// ComputeRatingFeatures folds over the matches in chronological order (stable
// on date, ties keeping source row order) maintaining one rating per team.
//
// For each match both teams' current ratings are read first and the expected
// scores derived from them are emitted as features; only then are the ratings
// updated from the actual result, so a match never sees its own outcome. A
// rating update is a joint function of both sides, which is why this is a
// single sequential pass over the original match stream rather than a
// per-team computation.
//
// Returns one row per input match, in input order, plus the final rating per
// team for diagnostics or continuation runs.
func ComputeRatingFeatures(matches []models.MatchRecord, kFactor, baseRating float64) ([]RatingRow, map[string]float64, error) {
	if err := ValidateMatches(matches); err != nil {
		return nil, nil, err
	}

	order := make([]int, len(matches))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return matches[order[a]].Date.Before(matches[order[b]].Date)
	})

	ratings := make(map[string]float64)
	rows := make([]RatingRow, len(matches))

	for _, idx := range order {
		m := matches[idx]

		homeElo, ok := ratings[m.HomeTeam]
		if !ok {
			homeElo = baseRating
		}
		awayElo, ok := ratings[m.AwayTeam]
		if !ok {
			awayElo = baseRating
		}

		homeExp := expectedScore(homeElo, awayElo)
		awayExp := 1.0 - homeExp

		rows[idx] = RatingRow{
			Row:     idx,
			HomeElo: homeElo,
			AwayElo: awayElo,
			EloDiff: homeElo - awayElo,
			HomeExp: homeExp,
			AwayExp: awayExp,
		}

		var actualHome, actualAway float64
		switch m.Result {
		case models.ResultHomeWin:
			actualHome, actualAway = 1.0, 0.0
		case models.ResultAwayWin:
			actualHome, actualAway = 0.0, 1.0
		case models.ResultDraw:
			actualHome, actualAway = 0.5, 0.5
		default:
			return nil, nil, fmt.Errorf("row %d: unrecognized result code %q", idx, string(m.Result))
		}

		ratings[m.HomeTeam] = homeElo + kFactor*(actualHome-homeExp)
		ratings[m.AwayTeam] = awayElo + kFactor*(actualAway-awayExp)
	}

	return rows, ratings, nil
}

// expectedScore is the logistic win expectation for the first rating against
// the second, on the standard 400-point Elo scale.
func expectedScore(rating, opponent float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (opponent-rating)/400.0))
}
