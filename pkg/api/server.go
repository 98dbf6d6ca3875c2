// Package api exposes the REST and WebSocket surface: anomaly queries,
// aggregate stats, health, Prometheus metrics, and the live event stream.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/database"
	"github.com/forgewatch/forgewatch/pkg/pubsub"
	"github.com/forgewatch/forgewatch/pkg/queue"
	"github.com/forgewatch/forgewatch/pkg/services"
	"github.com/forgewatch/forgewatch/pkg/version"
)

// Server is the HTTP API server.
type Server struct {
	cfg         *config.ServerConfig
	db          *database.Client
	anomalies   *services.AnomalyService
	connManager *pubsub.ConnectionManager
	pool        *queue.WorkerPool
	logger      *slog.Logger

	engine *gin.Engine
	http   *http.Server
}

// NewServer creates the API server and registers all routes. pool and
// connManager may be nil on API-only replicas; the affected endpoints
// degrade rather than fail.
func NewServer(cfg *config.ServerConfig, db *database.Client, anomalies *services.AnomalyService, connManager *pubsub.ConnectionManager, pool *queue.WorkerPool) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{
		cfg:         cfg,
		db:          db,
		anomalies:   anomalies,
		connManager: connManager,
		pool:        pool,
		logger:      slog.With("component", "api"),
		engine:      engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.GET("/ws", s.handleWebSocket)

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/anomalies", s.listAnomalies)
		v1.GET("/anomalies/:event_id", s.getAnomaly)
		v1.GET("/stats", s.getStats)
	}
}

// Handler returns the http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start runs the server until ListenAndServe returns.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", s.cfg.ListenAddr, "version", version.Full())

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// requestLogger logs one line per request at debug level, warnings for
// server errors.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			slog.Warn("Request failed", attrs...)
		} else {
			slog.Debug("Request", attrs...)
		}
	}
}
