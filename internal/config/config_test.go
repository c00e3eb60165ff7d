package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults tests loading configuration with default values
func TestLoadConfig_Defaults(t *testing.T) {
	// Load config without a file (should use defaults)
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify server defaults
	assert.Equal(t, 8082, config.Server.Port)
	assert.Equal(t, 30*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, config.Server.WriteTimeout)

	// Verify Kafka defaults
	assert.Equal(t, []string{"localhost:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "cleaned_matches", config.Kafka.Topic)
	assert.Equal(t, "match-features", config.Kafka.GroupID)

	// Verify Redis defaults
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, "", config.Redis.Password)
	assert.Equal(t, 0, config.Redis.DB)
	assert.Equal(t, 24*time.Hour, config.Redis.TTL)

	// Verify feature defaults
	assert.Equal(t, []int{3, 5, 10}, config.Features.Windows)
	assert.Equal(t, 20.0, config.Features.KFactor)
	assert.Equal(t, 1500.0, config.Features.BaseRating)

	// Verify logging defaults
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

// TestLoadConfig_WithFile tests loading configuration from file
func TestLoadConfig_WithFile(t *testing.T) {
	// Create temporary config file
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	configContent := `
server:
  port: 9090
  read_timeout: 45s
  write_timeout: 45s

kafka:
  brokers:
    - broker1:9092
    - broker2:9092
  topic: test_topic
  group_id: test_group

redis:
  addr: redis:6379
  password: test_password
  db: 1
  ttl: 30m

features:
  windows:
    - 2
    - 4
  k_factor: 32.0
  base_rating: 1000.0

logging:
  level: debug
  format: console
`

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	tmpFile.Close()

	// Load config from file
	config, err := LoadConfig(tmpFile.Name())

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify server config
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 45*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 45*time.Second, config.Server.WriteTimeout)

	// Verify Kafka config
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "test_topic", config.Kafka.Topic)
	assert.Equal(t, "test_group", config.Kafka.GroupID)

	// Verify Redis config
	assert.Equal(t, "redis:6379", config.Redis.Addr)
	assert.Equal(t, "test_password", config.Redis.Password)
	assert.Equal(t, 1, config.Redis.DB)
	assert.Equal(t, 30*time.Minute, config.Redis.TTL)

	// Verify feature config
	assert.Equal(t, []int{2, 4}, config.Features.Windows)
	assert.Equal(t, 32.0, config.Features.KFactor)
	assert.Equal(t, 1000.0, config.Features.BaseRating)

	// Verify logging config
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
}

// TestLoadConfig_InvalidFile tests loading with non-existent file
func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("/nonexistent/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfig_MalformedFile tests loading with malformed YAML
func TestLoadConfig_MalformedFile(t *testing.T) {
	// Create temporary config file with malformed YAML
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	malformedContent := `
server:
  port: invalid_port
  read_timeout: not_a_duration
`

	_, err = tmpFile.WriteString(malformedContent)
	require.NoError(t, err)
	tmpFile.Close()

	// Load config from file
	config, err := LoadConfig(tmpFile.Name())

	// Should error on unmarshal
	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfig_PartialFile tests loading with partial configuration
func TestLoadConfig_PartialFile(t *testing.T) {
	// Create temporary config file with partial config
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	partialContent := `
server:
  port: 9090

features:
  k_factor: 24.0

# Other configs will use defaults
`

	_, err = tmpFile.WriteString(partialContent)
	require.NoError(t, err)
	tmpFile.Close()

	// Load config from file
	config, err := LoadConfig(tmpFile.Name())

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify overridden values
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 24.0, config.Features.KFactor)

	// Verify defaults are still used for non-specified values
	assert.Equal(t, 30*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, "cleaned_matches", config.Kafka.Topic)
	assert.Equal(t, []int{3, 5, 10}, config.Features.Windows)
	assert.Equal(t, 1500.0, config.Features.BaseRating)
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
}

// TestLoadConfig_EnvironmentVariables tests environment variable overrides
func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	// Set environment variables
	os.Setenv("MATCH_FEATURES_SERVER_PORT", "7777")
	os.Setenv("MATCH_FEATURES_REDIS_ADDR", "env-redis:6379")
	os.Setenv("MATCH_FEATURES_KAFKA_TOPIC", "env_topic")
	defer func() {
		os.Unsetenv("MATCH_FEATURES_SERVER_PORT")
		os.Unsetenv("MATCH_FEATURES_REDIS_ADDR")
		os.Unsetenv("MATCH_FEATURES_KAFKA_TOPIC")
	}()

	// Load config (env vars should override defaults)
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify environment variables were used
	assert.Equal(t, 7777, config.Server.Port)
	assert.Equal(t, "env-redis:6379", config.Redis.Addr)
	assert.Equal(t, "env_topic", config.Kafka.Topic)
}

// TestToFeatureParams tests conversion to feature parameters
func TestToFeatureParams(t *testing.T) {
	featConfig := FeaturesConfig{
		Windows:    []int{2, 6, 12},
		KFactor:    32.0,
		BaseRating: 1200.0,
	}

	params := featConfig.ToFeatureParams()

	assert.Equal(t, []int{2, 6, 12}, params.Windows)
	assert.Equal(t, 32.0, params.KFactor)
	assert.Equal(t, 1200.0, params.BaseRating)
}

// TestFeaturesConfig tests feature configuration shapes
func TestFeaturesConfig(t *testing.T) {
	tests := []struct {
		name   string
		config FeaturesConfig
	}{
		{
			name: "Default windows",
			config: FeaturesConfig{
				Windows:    []int{3, 5, 10},
				KFactor:    20.0,
				BaseRating: 1500.0,
			},
		},
		{
			name: "Single window",
			config: FeaturesConfig{
				Windows:    []int{5},
				KFactor:    20.0,
				BaseRating: 1500.0,
			},
		},
		{
			name: "Volatile ratings",
			config: FeaturesConfig{
				Windows:    []int{3, 5, 10},
				KFactor:    40.0,
				BaseRating: 1500.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.config.Windows)
			for _, w := range tt.config.Windows {
				assert.Greater(t, w, 0)
			}
			assert.Greater(t, tt.config.KFactor, 0.0)
			assert.Greater(t, tt.config.BaseRating, 0.0)
		})
	}
}

// TestConfig_AllFields tests that all config fields are properly set
func TestConfig_AllFields(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, config)

	// Server
	assert.NotZero(t, config.Server.Port)
	assert.NotZero(t, config.Server.ReadTimeout)
	assert.NotZero(t, config.Server.WriteTimeout)

	// Kafka
	assert.NotEmpty(t, config.Kafka.Brokers)
	assert.NotEmpty(t, config.Kafka.Topic)
	assert.NotEmpty(t, config.Kafka.GroupID)

	// Redis
	assert.NotEmpty(t, config.Redis.Addr)
	assert.GreaterOrEqual(t, config.Redis.DB, 0)
	assert.NotZero(t, config.Redis.TTL)

	// Features
	assert.NotEmpty(t, config.Features.Windows)
	assert.NotZero(t, config.Features.KFactor)
	assert.NotZero(t, config.Features.BaseRating)

	// Logging
	assert.NotEmpty(t, config.Logging.Level)
	assert.NotEmpty(t, config.Logging.Format)
}
