package config

import "time"

const (
	envPort            = "PORT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envDisplayTimezone = "DISPLAY_TIMEZONE"
	envBaseURL         = "UPSTREAM_BASE_URL"
	envLinkBaseURL     = "UPSTREAM_LINK_BASE_URL"
	envTimeout         = "UPSTREAM_TIMEOUT"
	envTeamID          = "DEFAULT_TEAM_ID"
	envEndpointsFile   = "UPSTREAM_ENDPOINTS_FILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultBaseURL     = "https://statsapi.web.nhl.com/api/v1"
	defaultLinkBaseURL = "https://statsapi.web.nhl.com"
	defaultTimeout     = 10 * time.Second
	// San Jose Sharks.
	defaultTeamID      = 28
	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-team-insights"
)
