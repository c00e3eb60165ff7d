package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Result is the full-time result code of a match, as produced by the
// data-cleaning service (football-data convention).
type Result string

const (
	ResultHomeWin Result = "H"
	ResultDraw    Result = "D"
	ResultAwayWin Result = "A"
)

// Valid reports whether the result code is one of the recognized values.
func (r Result) Valid() bool {
	return r == ResultHomeWin || r == ResultDraw || r == ResultAwayWin
}

// Side identifies which side of a match a derived event belongs to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// PointsFor returns the league points the given side earned from this result
// (3 for a win, 1 for a draw, 0 for a loss).
func (r Result) PointsFor(side Side) (int, error) {
	switch r {
	case ResultDraw:
		return 1, nil
	case ResultHomeWin:
		if side == SideHome {
			return 3, nil
		}
		return 0, nil
	case ResultAwayWin:
		if side == SideAway {
			return 3, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("unrecognized result code %q", string(r))
}

// MatchRecord represents one cleaned match (from data-cleaner-service).
// Records are read-only to this service and are never mutated.
type MatchRecord struct {
	Date      time.Time `json:"date"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeGoals int       `json:"home_goals"`
	AwayGoals int       `json:"away_goals"`
	Result    Result    `json:"result"`
}

// TeamMatchEvent is a one-sided view of a match from one team's perspective.
// Row is the index of the source match in the input table; together with Side
// it uniquely identifies the event even when a team plays twice on one date.
type TeamMatchEvent struct {
	Row          int       `json:"row"`
	Side         Side      `json:"side"`
	Date         time.Time `json:"date"`
	Team         string    `json:"team"`
	Opponent     string    `json:"opponent"`
	GoalsFor     int       `json:"goals_for"`
	GoalsAgainst int       `json:"goals_against"`
	Points       int       `json:"points"`
}

// FormAggregate holds the rolling averages for one (team, window) pair.
// A NullDecimal with Valid=false means "not enough history yet", which is
// distinct from an average of zero.
type FormAggregate struct {
	GoalsForAvg     decimal.NullDecimal `json:"gf_avg"`
	GoalsAgainstAvg decimal.NullDecimal `json:"ga_avg"`
	PointsAvg       decimal.NullDecimal `json:"pts_avg"`
}

// WindowForm carries both sides' rolling aggregates for one window size.
type WindowForm struct {
	Window              int                 `json:"window"`
	HomeGoalsForAvg     decimal.NullDecimal `json:"home_gf_avg"`
	HomeGoalsAgainstAvg decimal.NullDecimal `json:"home_ga_avg"`
	HomePointsAvg       decimal.NullDecimal `json:"home_pts_avg"`
	AwayGoalsForAvg     decimal.NullDecimal `json:"away_gf_avg"`
	AwayGoalsAgainstAvg decimal.NullDecimal `json:"away_ga_avg"`
	AwayPointsAvg       decimal.NullDecimal `json:"away_pts_avg"`
}

// RatingFeatures holds the pre-match Elo features for one match. These are
// always defined: unseen teams start at the configured base rating.
type RatingFeatures struct {
	HomeElo float64 `json:"home_elo"`
	AwayElo float64 `json:"away_elo"`
	EloDiff float64 `json:"elo_diff"`
	HomeExp float64 `json:"home_exp"`
	AwayExp float64 `json:"away_exp"`
}

// FeatureRow is the output unit: one input match plus all feature columns.
type FeatureRow struct {
	Match  MatchRecord    `json:"match"`
	Form   []WindowForm   `json:"form"`
	Rating RatingFeatures `json:"rating"`
}

// FeatureParams holds the parameters for feature computation.
type FeatureParams struct {
	Windows    []int   // rolling window sizes, e.g. {3, 5, 10}
	KFactor    float64 // maximum per-match Elo adjustment
	BaseRating float64 // initial rating for unseen teams
}

// KafkaCleanedMatchesMessage is the message published by data-cleaner-service
// on the cleaned_matches topic.
type KafkaCleanedMatchesMessage struct {
	Matches   []MatchRecord `json:"matches"`
	Timestamp time.Time     `json:"timestamp"`
	BatchID   string        `json:"batch_id"`
}
