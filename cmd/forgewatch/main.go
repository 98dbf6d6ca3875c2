// Forgewatch server — polls the upstream public events feed, runs the
// anomaly detection pipeline over the durable queue, and serves the
// REST/WebSocket API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/forgewatch/forgewatch/pkg/api"
	"github.com/forgewatch/forgewatch/pkg/cleanup"
	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/database"
	"github.com/forgewatch/forgewatch/pkg/github"
	"github.com/forgewatch/forgewatch/pkg/poller"
	"github.com/forgewatch/forgewatch/pkg/processor"
	"github.com/forgewatch/forgewatch/pkg/profile"
	"github.com/forgewatch/forgewatch/pkg/pubsub"
	"github.com/forgewatch/forgewatch/pkg/queue"
	"github.com/forgewatch/forgewatch/pkg/services"
	"github.com/forgewatch/forgewatch/pkg/summarizer"
	"github.com/forgewatch/forgewatch/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the replica identifier for multi-replica
// queue coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	podID := resolvePodID()
	slog.Info("Starting forgewatch",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Redis (dedup cache, rate-limit state, circuit breaker)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: os.Getenv(cfg.Redis.PasswordEnv),
		DB:       cfg.Redis.DB,
	})
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		slog.Error("Failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	pingCancel()
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	slog.Info("Connected to Redis", "addr", cfg.Redis.Addr)

	// 4. One-time startup orphan cleanup: reclaim events this replica
	// left in_progress before a previous crash.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan covers it
	}

	// 5. Domain services
	eventService := services.NewEventService(dbClient.Client)
	anomalyService := services.NewAnomalyService(dbClient.Client)

	profiles, err := profile.NewStore(dbClient.Client, cfg.Detection)
	if err != nil {
		slog.Error("Failed to create profile store", "error", err)
		os.Exit(1)
	}
	slog.Info("Services initialized")

	// 6. Streaming infrastructure
	publisher := pubsub.NewPublisher(dbClient.DB())
	connManager := pubsub.NewConnectionManager(pubsub.NewEventServiceAdapter(eventService), 10*time.Second)

	notifyListener := pubsub.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Upstream client and poller
	ghClient := github.NewClient(cfg.Poller.APIBaseURL, os.Getenv(cfg.Poller.TokenEnv))
	limiter := github.NewRateLimiter(rdb, cfg.Poller.FailureThreshold, cfg.Poller.CircuitOpenTTL)
	deduper := poller.NewDeduper(rdb, cfg.Poller.DedupTTL)
	eventPoller := poller.New(ghClient, eventService, deduper, limiter, cfg.Poller)

	// 8. Detection pipeline
	opts := []processor.Option{processor.WithRepoMetadata(ghClient)}
	if cfg.Summarizer.Enabled {
		client := summarizer.NewClient(cfg.Summarizer.APIBaseURL, cfg.Summarizer.Model, os.Getenv(cfg.Summarizer.TokenEnv))
		opts = append(opts, processor.WithSummarizer(summarizer.New(client, cfg.Summarizer.Timeout, cfg.Summarizer.CacheTTL)))
		slog.Info("AI summarizer enabled", "model", cfg.Summarizer.Model)
	}
	proc := processor.New(cfg.Detection, profiles, anomalyService, publisher, opts...)

	// 9. Worker pool (before the poller starts feeding the queue)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, proc)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Poller loop
	pollerCtx, stopPoller := context.WithCancel(ctx)
	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		if err := eventPoller.Run(pollerCtx); err != nil && pollerCtx.Err() == nil {
			slog.Error("Poller exited with error", "error", err)
		}
	}()

	// 11. Retention cleanup
	retention := cleanup.NewService(cfg.Retention, eventService, anomalyService, profiles)
	retention.Start(ctx)

	// 12. HTTP server
	httpServer := api.NewServer(cfg.Server, dbClient, anomalyService, connManager, workerPool)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Forgewatch started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"listen_addr", cfg.Server.ListenAddr)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown: stop ingest first so the queue drains, then
	// the workers, then the outward-facing pieces.
	stopPoller()
	<-pollerDone
	slog.Info("Poller stopped")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight batches will be orphan-recovered")
	}

	retention.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
