package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/athlete-weather-advisory/internal/domain"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "raw-observations", cfg.KafkaSourceTopic)
	assert.Equal(t, "training-advisories", cfg.KafkaSinkTopic)
	assert.Equal(t, "athlete-weather-advisory", cfg.KafkaGroupID)
	assert.True(t, cfg.PipelineEnabled)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)
	assert.Equal(t, domain.Metric, cfg.DefaultUnits)
	assert.True(t, cfg.AlertsEnabled)
	assert.True(t, cfg.ExtremeWeatherAlerts)
	assert.Equal(t, domain.TierHigh, cfg.AlertMinTier)
	assert.Equal(t, domain.DefaultAlertPreferences().Parameters, cfg.AlertParameters)
	assert.Equal(t, 5, cfg.BreakerMaxFailures)
	assert.Equal(t, 30*time.Second, cfg.BreakerTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SOURCE_TOPIC", "custom-source")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")
	t.Setenv("PIPELINE_ENABLED", "false")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("BATCH_FLUSH_INTERVAL", "1s")
	t.Setenv("DEFAULT_UNITS", "Imperial")
	t.Setenv("ALERTS_ENABLED", "false")
	t.Setenv("ALERT_PARAMETERS", "humidity, precipitation")
	t.Setenv("ALERT_MIN_TIER", "moderate")
	t.Setenv("ALERT_EXTREME_WEATHER", "false")
	t.Setenv("BREAKER_MAX_FAILURES", "3")
	t.Setenv("BREAKER_TIMEOUT", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-source", cfg.KafkaSourceTopic)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
	assert.False(t, cfg.PipelineEnabled)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 1*time.Second, cfg.BatchFlushInterval)
	assert.Equal(t, domain.Imperial, cfg.DefaultUnits)
	assert.False(t, cfg.AlertsEnabled)
	assert.False(t, cfg.ExtremeWeatherAlerts)
	assert.Equal(t, domain.TierModerate, cfg.AlertMinTier)
	assert.Equal(t, map[domain.Parameter]bool{
		domain.ParamHumidity:      true,
		domain.ParamPrecipitation: true,
	}, cfg.AlertParameters)
	assert.Equal(t, 3, cfg.BreakerMaxFailures)
	assert.Equal(t, time.Minute, cfg.BreakerTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"SHUTDOWN_TIMEOUT", "-1s"},
		{"BATCH_SIZE", "0"},
		{"BATCH_SIZE", "9999"},
		{"BATCH_FLUSH_INTERVAL", "not-a-duration"},
		{"PIPELINE_ENABLED", "maybe"},
		{"ALERTS_ENABLED", "sometimes"},
		{"ALERT_EXTREME_WEATHER", "2"},
		{"DEFAULT_UNITS", "kelvin"},
		{"ALERT_PARAMETERS", "temperature,pollen"},
		{"ALERT_MIN_TIER", "extreme"},
		{"ALERT_MIN_TIER", "unknown"},
		{"BREAKER_MAX_FAILURES", "0"},
		{"BREAKER_MAX_FAILURES", "many"},
		{"BREAKER_TIMEOUT", "-5s"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_AlertParametersNone(t *testing.T) {
	t.Setenv("ALERT_PARAMETERS", "none")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.AlertParameters)
}

func TestLoad_TopicsOptionalWithoutPipeline(t *testing.T) {
	t.Setenv("KAFKA_SOURCE_TOPIC", "")
	t.Setenv("KAFKA_SINK_TOPIC", "")
	t.Setenv("PIPELINE_ENABLED", "false")

	_, err := Load()
	require.NoError(t, err)
}

func TestConfig_AlertPreferences(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	prefs := cfg.AlertPreferences()
	assert.Equal(t, domain.DefaultAlertPreferences(), prefs)

	prefs.Parameters[domain.ParamHumidity] = true
	assert.False(t, cfg.AlertParameters[domain.ParamHumidity])
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("KAFKA_GROUP_ID=from-dotenv\nHTTP_ADDR=:7070\n"), 0o600))

	t.Setenv("KAFKA_GROUP_ID", "")
	require.NoError(t, os.Unsetenv("KAFKA_GROUP_ID"))
	t.Setenv("HTTP_ADDR", ":9999")
	t.Cleanup(func() { _ = os.Unsetenv("KAFKA_GROUP_ID") })

	require.NoError(t, LoadDotEnv(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.KafkaGroupID)
	assert.Equal(t, ":9999", cfg.HTTPAddr, "existing variables win over the file")
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
