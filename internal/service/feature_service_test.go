package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/match-features-service/internal/mocks"
	"github.com/cypherlabdev/match-features-service/internal/models"
)

// testFeatureServiceSetup is a helper struct to hold test dependencies
type testFeatureServiceSetup struct {
	service     *FeatureService
	mockBuilder *mocks.MockFeatureBuilder
	mockCache   *mocks.MockCache
	ctrl        *gomock.Controller
	ctx         context.Context
}

// setupTestFeatureService creates a service with mocked dependencies
func setupTestFeatureService(t *testing.T) *testFeatureServiceSetup {
	ctrl := gomock.NewController(t)

	mockBuilder := mocks.NewMockFeatureBuilder(ctrl)
	mockCache := mocks.NewMockCache(ctrl)
	service := NewFeatureService(mockBuilder, mockCache, zerolog.Nop())

	return &testFeatureServiceSetup{
		service:     service,
		mockBuilder: mockBuilder,
		mockCache:   mockCache,
		ctrl:        ctrl,
		ctx:         context.Background(),
	}
}

// cleanup cleans up test resources
func (s *testFeatureServiceSetup) cleanup() {
	s.ctrl.Finish()
}

// svcDate parses a calendar date for fixtures
func svcDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// svcMatches builds a minimal cleaned match table
func svcMatches(t *testing.T) []models.MatchRecord {
	t.Helper()
	return []models.MatchRecord{
		{
			Date:      svcDate(t, "2023-08-12"),
			HomeTeam:  "Arsenal",
			AwayTeam:  "Chelsea",
			HomeGoals: 2,
			AwayGoals: 1,
			Result:    models.ResultHomeWin,
		},
	}
}

// TestComputeFeatures_Success tests computation with successful caching
func TestComputeFeatures_Success(t *testing.T) {
	setup := setupTestFeatureService(t)
	defer setup.cleanup()

	matches := svcMatches(t)
	rows := []models.FeatureRow{{Match: matches[0]}}

	setup.mockBuilder.EXPECT().Build(matches).Return(rows, nil)
	setup.mockCache.EXPECT().SetBatch(setup.ctx, rows).Return(nil)

	got, err := setup.service.ComputeFeatures(setup.ctx, matches)

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

// TestComputeFeatures_BuildError tests that computation errors propagate
func TestComputeFeatures_BuildError(t *testing.T) {
	setup := setupTestFeatureService(t)
	defer setup.cleanup()

	matches := svcMatches(t)
	setup.mockBuilder.EXPECT().Build(matches).Return(nil, errors.New("bad result code"))

	got, err := setup.service.ComputeFeatures(setup.ctx, matches)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "feature computation failed")
}

// TestComputeFeatures_CacheErrorIgnored tests that cache failures don't fail the call
func TestComputeFeatures_CacheErrorIgnored(t *testing.T) {
	setup := setupTestFeatureService(t)
	defer setup.cleanup()

	matches := svcMatches(t)
	rows := []models.FeatureRow{{Match: matches[0]}}

	setup.mockBuilder.EXPECT().Build(matches).Return(rows, nil)
	setup.mockCache.EXPECT().SetBatch(setup.ctx, rows).Return(errors.New("redis down"))

	got, err := setup.service.ComputeFeatures(setup.ctx, matches)

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

// TestGetFeatures_CacheHit tests retrieval of a cached row
func TestGetFeatures_CacheHit(t *testing.T) {
	setup := setupTestFeatureService(t)
	defer setup.cleanup()

	date := svcDate(t, "2023-08-12")
	row := &models.FeatureRow{}
	setup.mockCache.EXPECT().Get(setup.ctx, date, "Arsenal", "Chelsea").Return(row, nil)

	got, err := setup.service.GetFeatures(setup.ctx, date, "Arsenal", "Chelsea")

	assert.NoError(t, err)
	assert.Equal(t, row, got)
}

// TestGetFeatures_CacheMiss tests retrieval of a missing row
func TestGetFeatures_CacheMiss(t *testing.T) {
	setup := setupTestFeatureService(t)
	defer setup.cleanup()

	date := svcDate(t, "2023-08-12")
	setup.mockCache.EXPECT().Get(setup.ctx, date, "Arsenal", "Chelsea").Return(nil, errors.New("not found"))

	got, err := setup.service.GetFeatures(setup.ctx, date, "Arsenal", "Chelsea")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "not found in cache")
}

// TestGetFeaturesByDate_Success tests retrieval of all rows for a date
func TestGetFeaturesByDate_Success(t *testing.T) {
	setup := setupTestFeatureService(t)
	defer setup.cleanup()

	date := svcDate(t, "2023-08-12")
	rows := []*models.FeatureRow{{}, {}}
	setup.mockCache.EXPECT().GetByDate(setup.ctx, date).Return(rows, nil)

	got, err := setup.service.GetFeaturesByDate(setup.ctx, date)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

// TestGetFeaturesByDate_Error tests error propagation from the cache
func TestGetFeaturesByDate_Error(t *testing.T) {
	setup := setupTestFeatureService(t)
	defer setup.cleanup()

	date := svcDate(t, "2023-08-12")
	setup.mockCache.EXPECT().GetByDate(setup.ctx, date).Return(nil, errors.New("scan failed"))

	got, err := setup.service.GetFeaturesByDate(setup.ctx, date)

	assert.Error(t, err)
	assert.Nil(t, got)
}
