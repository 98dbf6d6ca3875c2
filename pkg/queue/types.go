// Package queue provides durable event queue management and the worker
// pool that claims pending events in batches for stream processing.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/forgewatch/forgewatch/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoEventsAvailable indicates no pending events are in the queue.
	ErrNoEventsAvailable = errors.New("no events available")
)

// BatchProcessor is the interface for batch event processing.
//
// The processor owns the ENTIRE detection pipeline for a batch: feature
// extraction, the parallel detectors, score fusion, report persistence,
// and notification. The worker only handles claiming, heartbeat, and
// terminal status updates for the claimed rows.
type BatchProcessor interface {
	Process(ctx context.Context, batch []*ent.GitHubEvent) *BatchResult
}

// BatchResult is lightweight, just the per-event terminal disposition.
// All detection output (anomaly records, stream events) was already
// written by the processor during the batch.
type BatchResult struct {
	Processed []string // event IDs that completed the pipeline
	Failed    []string // event IDs that errored and should not be retried
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	InFlightEvents   int            `json:"in_flight_events"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentBatchSize int       `json:"current_batch_size,omitempty"`
	BatchesProcessed int       `json:"batches_processed"`
	EventsProcessed  int       `json:"events_processed"`
	LastActivity     time.Time `json:"last_activity"`
}
