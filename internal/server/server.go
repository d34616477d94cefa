package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/handlers"
	"school-fee-dashboard/internal/middleware"
	"school-fee-dashboard/internal/repositories"
	"school-fee-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const idleTimeout = 60 * time.Second

// Server is the dashboard HTTP API
type Server struct {
	echo     *echo.Echo
	config   *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	source   services.TransactionSource
}

// New wires the transaction source selected by cfg.Dashboard.ListingSource into the
// HTTP API. db is required for the database source and optional otherwise.
func New(cfg *config.Config, db *gorm.DB, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics := services.NewPrometheusMetrics(registry)
	queryLogger := services.NewQueryLogger(logger)

	source, upstream, err := NewSource(cfg, db, logger, metrics, queryLogger)
	if err != nil {
		return nil, err
	}

	s := &Server{
		echo:     echo.New(),
		config:   cfg,
		logger:   logger,
		registry: registry,
		source:   source,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Validator = handlers.NewValidator()
	s.echo.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger, registry)

	s.setupMiddleware()

	var pinger handlers.Pinger
	if upstream != nil {
		pinger = upstream
	}

	s.setupRoutes(
		handlers.NewTransactionHandler(
			services.NewTransactionQueryService(source, &cfg.Dashboard, queryLogger, metrics),
			logger,
		),
		handlers.NewDashboardHandler(
			services.NewDashboardService(source, source, source, &cfg.Dashboard, logger, metrics),
			source,
			logger,
		),
		handlers.NewHealthCheckHandler(db, pinger),
	)

	return s, nil
}

// NewSource returns the configured transaction backend, plus the upstream client
// when the payments API is the backend
func NewSource(
	cfg *config.Config,
	db *gorm.DB,
	logger *slog.Logger,
	metrics services.MetricsRecorderInterface,
	queryLogger services.QueryLoggerInterface,
) (services.TransactionSource, services.UpstreamClientInterface, error) {
	switch cfg.Dashboard.ListingSource {
	case config.ListingSourceUpstream:
		upstream := services.NewUpstreamClient(&cfg.Upstream, logger, metrics, queryLogger)
		return upstream, upstream, nil
	case config.ListingSourceDatabase, "":
		if db == nil {
			return nil, nil, errors.New("database listing source requires a database connection")
		}
		source := services.NewDatabaseSource(
			repositories.NewTransactionRepository(db),
			repositories.NewSchoolRepository(db),
		)
		return source, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown listing source %q", cfg.Dashboard.ListingSource)
	}
}

func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.PanicRecovery(s.logger))
	s.echo.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			s.logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("trace_id", middleware.GetTraceID(c)),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	}))
	s.echo.Use(middleware.SecurityHeaders(s.config.IsProduction()))
	s.echo.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  s.config.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
}

func (s *Server) setupRoutes(
	transactionHandler *handlers.TransactionHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthCheckHandler,
) {
	s.echo.GET("/health", healthHandler.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	api := s.echo.Group("/api/v1", middleware.RateLimiter(s.config.RateLimit))

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/status/:customOrderId", transactionHandler.GetTransactionStatus)

	api.GET("/dashboard", dashboardHandler.GetOverview)

	api.GET("/schools", dashboardHandler.ListSchools)
	api.GET("/schools/:schoolId/transactions", transactionHandler.ListSchoolTransactions)
}

// Echo exposes the router, mainly for tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Source returns the transaction backend the API reads from
func (s *Server) Source() services.TransactionSource {
	return s.source
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address(),
		Handler:      s.echo,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.logger.Info("HTTP server listening",
			"addr", srv.Addr,
			"environment", s.config.Server.Environment,
			"listing_source", s.config.Dashboard.ListingSource,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Server exited properly")
	return nil
}
