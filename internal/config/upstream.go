package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// UpstreamConfig controls how the stats API is reached.
type UpstreamConfig struct {
	BaseURL       string        `validate:"required,url"`
	LinkBaseURL   string        `validate:"required,url"`
	Timeout       time.Duration `validate:"gt=0"`
	TeamID        int           `validate:"gt=0"`
	EndpointsFile string
	Endpoints     Endpoints
}

// Endpoints overrides individual query templates. Empty fields keep the built-in template.
type Endpoints struct {
	Team              string `yaml:"team"`
	TeamDetail        string `yaml:"team_detail"`
	DaySchedule       string `yaml:"day_schedule"`
	CurrentSeason     string `yaml:"current_season"`
	Player            string `yaml:"player"`
	SingleSeasonStats string `yaml:"single_season_stats"`
	GameLog           string `yaml:"game_log"`
}

type endpointsFile struct {
	BaseURL     string    `yaml:"base_url"`
	LinkBaseURL string    `yaml:"link_base_url"`
	Endpoints   Endpoints `yaml:"endpoints"`
}

func loadUpstream() (UpstreamConfig, error) {
	cfg := UpstreamConfig{
		BaseURL:       envOrDefault(envBaseURL, defaultBaseURL),
		LinkBaseURL:   envOrDefault(envLinkBaseURL, defaultLinkBaseURL),
		Timeout:       durationEnvOrDefault(envTimeout, defaultTimeout),
		TeamID:        intEnvOrDefault(envTeamID, defaultTeamID),
		EndpointsFile: envOrDefault(envEndpointsFile, ""),
	}
	if cfg.EndpointsFile == "" {
		return cfg, nil
	}

	file, err := readEndpointsFile(cfg.EndpointsFile)
	if err != nil {
		return UpstreamConfig{}, err
	}
	// Environment wins over the file for base URLs.
	if os.Getenv(envBaseURL) == "" && file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if os.Getenv(envLinkBaseURL) == "" && file.LinkBaseURL != "" {
		cfg.LinkBaseURL = file.LinkBaseURL
	}
	cfg.Endpoints = file.Endpoints
	return cfg, nil
}

func readEndpointsFile(path string) (endpointsFile, error) {
	var file endpointsFile
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("failed to read endpoints file: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("failed to parse endpoints file: %w", err)
	}
	return file, nil
}
