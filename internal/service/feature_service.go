package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// FeatureService orchestrates feature computation with caching
type FeatureService struct {
	builder FeatureBuilder
	cache   Cache
	logger  zerolog.Logger
}

// NewFeatureService creates a new feature service
func NewFeatureService(
	builder FeatureBuilder,
	cache Cache,
	logger zerolog.Logger,
) *FeatureService {
	return &FeatureService{
		builder: builder,
		cache:   cache,
		logger:  logger.With().Str("component", "feature_service").Logger(),
	}
}

// ComputeFeatures computes features for a cleaned match table and caches the rows
func (s *FeatureService) ComputeFeatures(ctx context.Context, matches []models.MatchRecord) ([]models.FeatureRow, error) {
	rows, err := s.builder.Build(matches)
	if err != nil {
		return nil, fmt.Errorf("feature computation failed: %w", err)
	}

	// Cache the feature rows
	if err := s.cache.SetBatch(ctx, rows); err != nil {
		s.logger.Warn().
			Err(err).
			Int("count", len(rows)).
			Msg("failed to cache feature rows")
		// Don't fail the request on cache errors
	}

	s.logger.Info().
		Int("input_count", len(matches)).
		Int("output_count", len(rows)).
		Msg("computed and cached feature rows")

	return rows, nil
}

// GetFeatures retrieves one cached feature row by match identity
func (s *FeatureService) GetFeatures(ctx context.Context, date time.Time, homeTeam, awayTeam string) (*models.FeatureRow, error) {
	row, err := s.cache.Get(ctx, date, homeTeam, awayTeam)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Str("date", date.Format("2006-01-02")).
			Str("home_team", homeTeam).
			Str("away_team", awayTeam).
			Msg("cache miss for feature row")
		return nil, fmt.Errorf("features not found in cache for date=%s home=%s away=%s",
			date.Format("2006-01-02"), homeTeam, awayTeam)
	}

	return row, nil
}

// GetFeaturesByDate retrieves all cached feature rows for a date
func (s *FeatureService) GetFeaturesByDate(ctx context.Context, date time.Time) ([]*models.FeatureRow, error) {
	rows, err := s.cache.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feature rows for date: %w", err)
	}

	s.logger.Debug().
		Str("date", date.Format("2006-01-02")).
		Int("count", len(rows)).
		Msg("retrieved feature rows by date")

	return rows, nil
}
