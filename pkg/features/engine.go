package features

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// Engine computes predictive features over a cleaned match table. Each call
// to Build is an independent deterministic transform: no state survives
// between calls, so an Engine is safe for concurrent use.
type Engine struct {
	params models.FeatureParams
	logger zerolog.Logger
}

// NewEngine creates a feature engine.
func NewEngine(params models.FeatureParams, logger zerolog.Logger) *Engine {
	return &Engine{
		params: params,
		logger: logger.With().Str("component", "feature_engine").Logger(),
	}
}

// Build validates the match table, computes rolling form and rating features,
// and joins them back onto the input: exactly one output row per input match,
// in input order. The whole table is processed or the call fails; no partial
// output is ever returned.
func (e *Engine) Build(matches []models.MatchRecord) ([]models.FeatureRow, error) {
	if err := ValidateMatches(matches); err != nil {
		return nil, fmt.Errorf("invalid match table: %w", err)
	}

	rollingRows, err := ComputeRollingFeatures(matches, e.params.Windows)
	if err != nil {
		return nil, fmt.Errorf("rolling features: %w", err)
	}

	ratingRows, finalRatings, err := ComputeRatingFeatures(matches, e.params.KFactor, e.params.BaseRating)
	if err != nil {
		return nil, fmt.Errorf("rating features: %w", err)
	}

	rows, err := assemble(matches, rollingRows, ratingRows, e.params.Windows)
	if err != nil {
		return nil, err
	}

	e.logger.Info().
		Int("matches", len(matches)).
		Int("teams", len(finalRatings)).
		Ints("windows", e.params.Windows).
		Msg("built feature table")

	return rows, nil
}

// assemble joins the two engines' outputs back onto the match table. Rolling
// rows are matched by exact event identity (source row plus side), which
// coincides with a (date, team) join whenever that key is unique and stays
// well-defined when a team appears twice on one date.
func assemble(matches []models.MatchRecord, rollingRows []RollingRow, ratingRows []RatingRow, windows []int) ([]models.FeatureRow, error) {
	type eventKey struct {
		row  int
		side models.Side
	}

	form := make(map[eventKey]map[int]models.FormAggregate, len(rollingRows))
	for _, r := range rollingRows {
		form[eventKey{r.Row, r.Side}] = r.Form
	}

	if len(ratingRows) != len(matches) {
		return nil, fmt.Errorf("rating output has %d rows for %d matches", len(ratingRows), len(matches))
	}

	rows := make([]models.FeatureRow, len(matches))
	for i, m := range matches {
		homeForm, ok := form[eventKey{i, models.SideHome}]
		if !ok {
			return nil, fmt.Errorf("row %d: no rolling features for home side", i)
		}
		awayForm, ok := form[eventKey{i, models.SideAway}]
		if !ok {
			return nil, fmt.Errorf("row %d: no rolling features for away side", i)
		}

		windowForms := make([]models.WindowForm, len(windows))
		for wi, w := range windows {
			h, a := homeForm[w], awayForm[w]
			windowForms[wi] = models.WindowForm{
				Window:              w,
				HomeGoalsForAvg:     h.GoalsForAvg,
				HomeGoalsAgainstAvg: h.GoalsAgainstAvg,
				HomePointsAvg:       h.PointsAvg,
				AwayGoalsForAvg:     a.GoalsForAvg,
				AwayGoalsAgainstAvg: a.GoalsAgainstAvg,
				AwayPointsAvg:       a.PointsAvg,
			}
		}

		r := ratingRows[i]
		rows[i] = models.FeatureRow{
			Match: m,
			Form:  windowForms,
			Rating: models.RatingFeatures{
				HomeElo: r.HomeElo,
				AwayElo: r.AwayElo,
				EloDiff: r.EloDiff,
				HomeExp: r.HomeExp,
				AwayExp: r.AwayExp,
			},
		}
	}

	return rows, nil
}
