package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// dateFormat is the canonical calendar-date layout used in cache keys.
const dateFormat = "2006-01-02"

// RedisCache caches computed feature rows in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 24 * time.Hour
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// featureKey builds the Redis key for one match's feature row
func featureKey(date time.Time, homeTeam, awayTeam string) string {
	return fmt.Sprintf("features:%s:%s:%s", date.Format(dateFormat), homeTeam, awayTeam)
}

// Set caches one feature row
func (c *RedisCache) Set(ctx context.Context, row *models.FeatureRow) error {
	key := featureKey(row.Match.Date, row.Match.HomeTeam, row.Match.AwayTeam)

	// Serialize to JSON
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal feature row: %w", err)
	}

	// Set in Redis with TTL
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Dur("ttl", c.ttl).
		Msg("cached feature row")

	return nil
}

// Get retrieves one cached feature row by its match identity
func (c *RedisCache) Get(ctx context.Context, date time.Time, homeTeam, awayTeam string) (*models.FeatureRow, error) {
	key := featureKey(date, homeTeam, awayTeam)

	// Get from Redis
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("feature row not found in cache")
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	// Deserialize
	var row models.FeatureRow
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feature row: %w", err)
	}

	return &row, nil
}

// SetBatch caches multiple feature rows
func (c *RedisCache) SetBatch(ctx context.Context, rows []models.FeatureRow) error {
	if len(rows) == 0 {
		return nil
	}

	// Use pipeline for batch operations
	pipe := c.client.Pipeline()

	for i := range rows {
		row := &rows[i]
		key := featureKey(row.Match.Date, row.Match.HomeTeam, row.Match.AwayTeam)
		data, err := json.Marshal(row)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to marshal feature row")
			continue
		}
		pipe.Set(ctx, key, data, c.ttl)
	}

	// Execute pipeline
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.logger.Info().
		Int("count", len(rows)).
		Msg("cached batch of feature rows")

	return nil
}

// GetByDate retrieves all cached feature rows for a calendar date
func (c *RedisCache) GetByDate(ctx context.Context, date time.Time) ([]*models.FeatureRow, error) {
	pattern := fmt.Sprintf("features:%s:*", date.Format(dateFormat))

	// Scan for keys matching pattern
	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	// Get all values
	result := make([]*models.FeatureRow, 0, len(keys))
	for _, key := range keys {
		data, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to get key")
			continue
		}

		var row models.FeatureRow
		if err := json.Unmarshal(data, &row); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal feature row")
			continue
		}

		result = append(result, &row)
	}

	return result, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
