package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port      string `validate:"required,numeric"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=text json"`
	// DisplayTimezone names the zone match dates are rendered in. Empty means the process local zone.
	DisplayTimezone string `validate:"omitempty,timezone"`
	Upstream        UpstreamConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults,
// applies the optional endpoints file, and validates the result.
func Load() (Config, error) {
	upstream, err := loadUpstream()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Port:            envOrDefault(envPort, defaultPort),
		LogLevel:        envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:       envOrDefault(envLogFormat, defaultLogFormat),
		DisplayTimezone: envOrDefault(envDisplayTimezone, ""),
		Upstream:        upstream,
		Metrics:         loadMetrics(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints declared in struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}
