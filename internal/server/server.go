package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-team-insights/internal/aggregator"
	"github.com/preston-bernstein/nhl-team-insights/internal/config"
	"github.com/preston-bernstein/nhl-team-insights/internal/dispatch"
	httpserver "github.com/preston-bernstein/nhl-team-insights/internal/http"
	"github.com/preston-bernstein/nhl-team-insights/internal/http/handlers"
	"github.com/preston-bernstein/nhl-team-insights/internal/logging"
	"github.com/preston-bernstein/nhl-team-insights/internal/metrics"
	"github.com/preston-bernstein/nhl-team-insights/internal/statsapi"
	"github.com/preston-bernstein/nhl-team-insights/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	aggregator    *aggregator.Aggregator
	dispatcher    *dispatch.Dispatcher
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server that reads from the stats API named in cfg.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithFetcher(cfg, logger, nil, nil)
}

// newServerWithFetcher wires every component. A nil fetcher means the real stats API client;
// a nil recorder means metrics are set up from cfg.
func newServerWithFetcher(cfg config.Config, logger *slog.Logger, fetcher aggregator.Fetcher, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if fetcher == nil {
		fetcher = buildClient(cfg.Upstream, logger, recorder)
	}
	agg := aggregator.New(aggregator.Config{
		Fetcher:         fetcher,
		Endpoints:       buildEndpoints(cfg.Upstream),
		Logger:          logger,
		Metrics:         recorder,
		DisplayLocation: timeutil.ResolveLocation(cfg.DisplayTimezone),
	})
	dispatcher := dispatch.New(logger)
	httpSrv := buildHTTPServer(cfg, agg, dispatcher, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		aggregator:    agg,
		dispatcher:    dispatcher,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, dispatcher *dispatch.Dispatcher, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		dispatcher: dispatcher,
		httpServer: httpSrv,
	}
}

func buildClient(cfg config.UpstreamConfig, logger *slog.Logger, recorder *metrics.Recorder) *statsapi.Client {
	return statsapi.NewClient(statsapi.Config{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Logger:     logger,
		Metrics:    recorder,
	})
}

func buildEndpoints(cfg config.UpstreamConfig) aggregator.Endpoints {
	return aggregator.Endpoints{
		BaseURL:           cfg.BaseURL,
		LinkBaseURL:       cfg.LinkBaseURL,
		Team:              cfg.Endpoints.Team,
		TeamDetail:        cfg.Endpoints.TeamDetail,
		DaySchedule:       cfg.Endpoints.DaySchedule,
		CurrentSeason:     cfg.Endpoints.CurrentSeason,
		Player:            cfg.Endpoints.Player,
		SingleSeasonStats: cfg.Endpoints.SingleSeasonStats,
		GameLog:           cfg.Endpoints.GameLog,
	}.WithDefaults()
}

func buildHTTPServer(cfg config.Config, agg *aggregator.Aggregator, dispatcher *dispatch.Dispatcher, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(agg, dispatcher, cfg.Upstream.TeamID, logger)
	router := httpserver.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

// gracefulShutdown stops the listener first so no new builds are submitted,
// then drains the dispatcher.
func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.dispatcher != nil {
		s.drainDispatcher(shutdownCtx)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func (s *Server) drainDispatcher(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.dispatcher.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		if s.logger != nil {
			s.logger.Warn("dispatcher did not drain before shutdown timeout", "error", ctx.Err())
		}
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
