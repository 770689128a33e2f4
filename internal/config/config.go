package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"

	"github.com/couchcryptid/athlete-weather-advisory/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	PipelineEnabled  bool
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Advisory defaults.
	DefaultUnits         domain.UnitSystem
	AlertsEnabled        bool
	AlertParameters      map[domain.Parameter]bool
	AlertMinTier         domain.SeverityTier
	ExtremeWeatherAlerts bool

	// Sink circuit breaker.
	BreakerMaxFailures int
	BreakerTimeout     time.Duration
}

// LoadDotEnv reads KEY=VALUE files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	pipelineEnabled, err := parseBool("PIPELINE_ENABLED", true)
	if err != nil {
		return nil, err
	}
	alertsEnabled, err := parseBool("ALERTS_ENABLED", true)
	if err != nil {
		return nil, err
	}
	extremeWeather, err := parseBool("ALERT_EXTREME_WEATHER", true)
	if err != nil {
		return nil, err
	}

	units, err := parseUnits()
	if err != nil {
		return nil, err
	}

	alertParams, err := parseAlertParameters()
	if err != nil {
		return nil, err
	}

	minTier, ok := domain.ParseSeverityTier(strings.ToLower(sharedcfg.EnvOrDefault("ALERT_MIN_TIER", "high")))
	if !ok || minTier == domain.TierUnknown {
		return nil, errors.New("invalid ALERT_MIN_TIER: must be low, moderate, high, or severe")
	}

	maxFailures, err := strconv.Atoi(sharedcfg.EnvOrDefault("BREAKER_MAX_FAILURES", "5"))
	if err != nil || maxFailures <= 0 {
		return nil, errors.New("invalid BREAKER_MAX_FAILURES: must be a positive integer")
	}

	breakerTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("BREAKER_TIMEOUT", "30s"))
	if err != nil || breakerTimeout <= 0 {
		return nil, errors.New("invalid BREAKER_TIMEOUT: must be a positive duration")
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "raw-observations"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "training-advisories"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "athlete-weather-advisory"),
		PipelineEnabled:    pipelineEnabled,
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		DefaultUnits:         units,
		AlertsEnabled:        alertsEnabled,
		AlertParameters:      alertParams,
		AlertMinTier:         minTier,
		ExtremeWeatherAlerts: extremeWeather,

		BreakerMaxFailures: maxFailures,
		BreakerTimeout:     breakerTimeout,
	}

	if cfg.PipelineEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required")
		}
		if cfg.KafkaSourceTopic == "" {
			return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required")
		}
	}

	return cfg, nil
}

// AlertPreferences converts the alert settings into engine preferences.
func (c *Config) AlertPreferences() domain.AlertPreferences {
	params := make(map[domain.Parameter]bool, len(c.AlertParameters))
	for p, on := range c.AlertParameters {
		params[p] = on
	}
	return domain.AlertPreferences{
		Enabled:        c.AlertsEnabled,
		Parameters:     params,
		ExtremeWeather: c.ExtremeWeatherAlerts,
	}
}

func parseBool(key string, fallback bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseUnits() (domain.UnitSystem, error) {
	s := strings.ToLower(strings.TrimSpace(sharedcfg.EnvOrDefault("DEFAULT_UNITS", "metric")))
	switch domain.UnitSystem(s) {
	case domain.Metric, domain.Imperial:
		return domain.UnitSystem(s), nil
	default:
		return "", fmt.Errorf("invalid DEFAULT_UNITS %q: must be metric or imperial", s)
	}
}

// parseAlertParameters reads a comma-separated parameter list. Unset keeps the
// engine defaults; "none" disables every per-parameter toggle.
func parseAlertParameters() (map[domain.Parameter]bool, error) {
	s, ok := os.LookupEnv("ALERT_PARAMETERS")
	if !ok || strings.TrimSpace(s) == "" {
		return domain.DefaultAlertPreferences().Parameters, nil
	}

	out := make(map[domain.Parameter]bool)
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return out, nil
	}

	known := make(map[domain.Parameter]bool)
	for _, p := range domain.AllParameters() {
		known[p] = true
	}
	for _, part := range strings.Split(s, ",") {
		p := domain.Parameter(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		if !known[p] {
			return nil, fmt.Errorf("invalid ALERT_PARAMETERS: unknown parameter %q", p)
		}
		out[p] = true
	}
	return out, nil
}
