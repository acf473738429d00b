package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.LogLevel != defaultLogLevel || cfg.LogFormat != defaultLogFormat {
		t.Fatalf("unexpected log defaults %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Upstream.BaseURL != defaultBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultBaseURL, cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.LinkBaseURL != defaultLinkBaseURL {
		t.Fatalf("expected default link base url %s, got %s", defaultLinkBaseURL, cfg.Upstream.LinkBaseURL)
	}
	if cfg.Upstream.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultTimeout, cfg.Upstream.Timeout)
	}
	if cfg.Upstream.TeamID != defaultTeamID {
		t.Fatalf("expected default team %d, got %d", defaultTeamID, cfg.Upstream.TeamID)
	}
	if cfg.Upstream.Endpoints != (Endpoints{}) {
		t.Fatalf("expected no endpoint overrides, got %+v", cfg.Upstream.Endpoints)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envDisplayTimezone, "America/Los_Angeles")
	t.Setenv(envBaseURL, "http://localhost:9000/api/v1")
	t.Setenv(envTimeout, "3s")
	t.Setenv(envTeamID, "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected log settings %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.DisplayTimezone != "America/Los_Angeles" {
		t.Fatalf("expected display timezone override, got %s", cfg.DisplayTimezone)
	}
	if cfg.Upstream.BaseURL != "http://localhost:9000/api/v1" {
		t.Fatalf("expected base url override, got %s", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", cfg.Upstream.Timeout)
	}
	if cfg.Upstream.TeamID != 10 {
		t.Fatalf("expected team 10, got %d", cfg.Upstream.TeamID)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envTimeout, "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Upstream.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.Upstream.Timeout)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		envLogFormat:       "xml",
		envLogLevel:        "verbose",
		envBaseURL:         "not a url",
		envPort:            "http",
		envDisplayTimezone: "Mars/Olympus_Mons",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), "config validation error") {
				t.Fatalf("expected validation error for %s=%s, got %v", key, val, err)
			}
		})
	}
}

func TestLoadEndpointsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	content := `
base_url: http://mirror.local/api/v1
endpoints:
  current_season: "{base}/seasons/20202021"
  game_log: "{playerUrl}/stats?stats=gameLog&season={seasonId}&gameType=R"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write endpoints file: %v", err)
	}
	t.Setenv(envEndpointsFile, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Upstream.BaseURL != "http://mirror.local/api/v1" {
		t.Fatalf("expected base url from file, got %s", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.LinkBaseURL != defaultLinkBaseURL {
		t.Fatalf("expected default link base url, got %s", cfg.Upstream.LinkBaseURL)
	}
	if cfg.Upstream.Endpoints.CurrentSeason != "{base}/seasons/20202021" {
		t.Fatalf("unexpected current season template %q", cfg.Upstream.Endpoints.CurrentSeason)
	}
	if !strings.HasSuffix(cfg.Upstream.Endpoints.GameLog, "&gameType=R") {
		t.Fatalf("unexpected game log template %q", cfg.Upstream.Endpoints.GameLog)
	}
	if cfg.Upstream.Endpoints.Team != "" {
		t.Fatalf("expected unset templates to stay empty, got %q", cfg.Upstream.Endpoints.Team)
	}
}

func TestLoadEndpointsFileEnvBaseURLWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	if err := os.WriteFile(path, []byte("base_url: http://mirror.local/api/v1\n"), 0o600); err != nil {
		t.Fatalf("write endpoints file: %v", err)
	}
	t.Setenv(envEndpointsFile, path)
	t.Setenv(envBaseURL, "http://env.local/api/v1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Upstream.BaseURL != "http://env.local/api/v1" {
		t.Fatalf("expected env base url, got %s", cfg.Upstream.BaseURL)
	}
}

func TestLoadEndpointsFileErrors(t *testing.T) {
	t.Setenv(envEndpointsFile, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "failed to read endpoints file") {
		t.Fatalf("expected read error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("endpoints: [not, a, map"), 0o600); err != nil {
		t.Fatalf("write endpoints file: %v", err)
	}
	t.Setenv(envEndpointsFile, path)
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "failed to parse endpoints file") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
