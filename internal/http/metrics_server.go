package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/fieldcrypt/internal/metrics"
)

// readinessTimeout bounds the database ping of the readiness probe.
const readinessTimeout = 2 * time.Second

// MetricsServer exposes /metrics, /health and /ready while a command runs.
type MetricsServer struct {
	server  *http.Server
	logger  *slog.Logger
	db      *sql.DB
	closing atomic.Bool
}

// NewMetricsServer creates a new MetricsServer. db may be nil, in which case readiness
// only reflects whether the server is shutting down.
func NewMetricsServer(
	host string,
	port int,
	namespace string,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	db *sql.DB,
) (*MetricsServer, error) {
	s := &MetricsServer{
		logger: logger,
		db:     db,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(CustomLoggerMiddleware(logger))

	if metricsProvider != nil {
		httpMetrics, err := metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), namespace)
		if err != nil {
			return nil, err
		}
		router.Use(httpMetrics)
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called. Readiness turns false once ctx is done.
func (s *MetricsServer) Start(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		s.closing.Store(true)
	})
	defer stop()

	s.logger.Info("starting metrics server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the metrics HTTP server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.closing.Store(true)
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}

func (s *MetricsServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *MetricsServer) readinessHandler(c *gin.Context) {
	if s.closing.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}

	database := "skipped"
	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness database ping failed", slog.Any("error", err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"components": gin.H{"database": "error"},
			})
			return
		}
		database = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": database},
	})
}
