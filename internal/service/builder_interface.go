package service

import (
	"github.com/cypherlabdev/match-features-service/internal/models"
)

// FeatureBuilder is an interface that abstracts feature computation
// This allows for easier testing and mocking
type FeatureBuilder interface {
	Build(matches []models.MatchRecord) ([]models.FeatureRow, error)
}
