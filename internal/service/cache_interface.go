package service

import (
	"context"
	"time"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// Cache is an interface that abstracts cache operations
// This allows for easier testing and mocking
type Cache interface {
	Set(ctx context.Context, row *models.FeatureRow) error
	Get(ctx context.Context, date time.Time, homeTeam, awayTeam string) (*models.FeatureRow, error)
	SetBatch(ctx context.Context, rows []models.FeatureRow) error
	GetByDate(ctx context.Context, date time.Time) ([]*models.FeatureRow, error)
	Ping(ctx context.Context) error
	Close() error
}
