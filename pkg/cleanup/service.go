// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/profile"
	"github.com/forgewatch/forgewatch/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes processed/failed event rows past their TTL
//   - Removes anomaly records and temporal patterns past the retention window
//   - Removes stream-event catchup rows past their TTL
//   - Removes actor/repo baselines with no recent observations
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config    *config.RetentionConfig
	events    *services.EventService
	anomalies *services.AnomalyService
	profiles  *profile.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	events *services.EventService,
	anomalies *services.AnomalyService,
	profiles *profile.Store,
) *Service {
	return &Service{
		config:    cfg,
		events:    events,
		anomalies: anomalies,
		profiles:  profiles,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"processed_event_ttl", s.config.ProcessedEventTTL,
		"anomaly_retention_days", s.config.AnomalyRetentionDays,
		"stream_event_ttl", s.config.StreamEventTTL,
		"profile_ttl", s.config.ProfileTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	now := time.Now().UTC()

	s.sweep(ctx, "processed events", now.Add(-s.config.ProcessedEventTTL), s.events.CleanupProcessedEvents)
	s.sweep(ctx, "stream events", now.Add(-s.config.StreamEventTTL), s.events.CleanupStreamEvents)

	anomalyCutoff := now.AddDate(0, 0, -s.config.AnomalyRetentionDays)
	s.sweep(ctx, "anomaly records", anomalyCutoff, s.anomalies.CleanupAnomalies)
	s.sweep(ctx, "temporal patterns", anomalyCutoff, s.anomalies.CleanupPatterns)

	if s.profiles != nil {
		s.sweep(ctx, "stale profiles", now.Add(-s.config.ProfileTTL), s.profiles.CleanupStale)
	}
}

func (s *Service) sweep(ctx context.Context, what string, cutoff time.Time, fn func(context.Context, time.Time) (int, error)) {
	count, err := fn(ctx, cutoff)
	if err != nil {
		slog.Error("Retention sweep failed", "target", what, "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention sweep removed rows", "target", what, "count", count)
	}
}
