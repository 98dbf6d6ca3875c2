package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/githubevent"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned claims.
// All pods run this independently, the operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// recoverOrphans returns in_progress events with stale heartbeats to the
// pending queue. Unlike a terminal failure, an orphaned claim means the
// owning pod died mid-batch; the events themselves are still good.
func (p *WorkerPool) recoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	recovered, err := p.client.GitHubEvent.Update().
		Where(
			githubevent.StatusEQ(githubevent.StatusInProgress),
			githubevent.LastHeartbeatAtNotNil(),
			githubevent.LastHeartbeatAtLT(threshold),
		).
		SetStatus(githubevent.StatusPending).
		ClearPodID().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover orphaned events: %w", err)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	if recovered > 0 {
		slog.Warn("Recovered orphaned events", "count", recovered)
	}
	return nil
}

// CleanupStartupOrphans returns events claimed by this pod before a crash
// to the pending queue. Called once during startup, before the worker
// pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	recovered, err := client.GitHubEvent.Update().
		Where(
			githubevent.StatusEQ(githubevent.StatusInProgress),
			githubevent.PodID(podID),
		).
		SetStatus(githubevent.StatusPending).
		ClearPodID().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if recovered > 0 {
		slog.Warn("Requeued events from previous run",
			"pod_id", podID,
			"count", recovered)
	}
	return nil
}
