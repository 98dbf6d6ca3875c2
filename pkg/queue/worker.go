package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/ent/predicate"
	"github.com/forgewatch/forgewatch/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that claims and processes event batches.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	processor BatchProcessor
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentBatchSize int
	batchesProcessed int
	eventsProcessed  int
	lastActivity     time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, processor BatchProcessor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		processor:    processor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentBatchSize: w.currentBatchSize,
		BatchesProcessed: w.batchesProcessed,
		EventsProcessed:  w.eventsProcessed,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoEventsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing batch", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims a batch of pending events and runs it through the
// batch processor, then writes per-event terminal statuses.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	batch, err := w.claimBatch(ctx)
	if err != nil {
		return err
	}

	log := slog.With("worker_id", w.id, "batch_size", len(batch))
	log.Debug("Batch claimed")

	w.setStatus(WorkerStatusWorking, len(batch))
	defer w.setStatus(WorkerStatusIdle, 0)

	// Bound processing of the whole batch.
	batchCtx, cancelBatch := context.WithTimeout(ctx, w.config.BatchTimeout)
	defer cancelBatch()

	// Heartbeat keeps the claim alive for orphan detection while the
	// batch is in flight.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(ctx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, eventIDs(batch))

	result := w.processor.Process(batchCtx, batch)
	if result == nil {
		result = &BatchResult{}
	}

	cancelHeartbeat()

	// Terminal status updates use a background context, the batch context
	// may already be cancelled.
	if err := w.finalizeBatch(context.Background(), batch, result); err != nil {
		log.Error("Failed to finalize batch", "error", err)
		return err
	}

	w.mu.Lock()
	w.batchesProcessed++
	w.eventsProcessed += len(result.Processed)
	w.mu.Unlock()

	log.Debug("Batch complete",
		"processed", len(result.Processed),
		"failed", len(result.Failed))
	return nil
}

// claimBatch claims up to BatchSize pending events. A partial first claim
// lingers for BatchMaxWait and tops up once, so bursts arriving just
// behind the claim still ride the same batch.
func (w *Worker) claimBatch(ctx context.Context) ([]*ent.GitHubEvent, error) {
	batch, err := w.claim(ctx, w.config.BatchSize)
	if err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, ErrNoEventsAvailable
	}

	if len(batch) < w.config.BatchSize && w.config.BatchMaxWait > 0 {
		w.sleep(w.config.BatchMaxWait)
		more, err := w.claim(ctx, w.config.BatchSize-len(batch))
		if err != nil {
			// Top-up failures are non-fatal: process what we hold.
			slog.Warn("Batch top-up claim failed", "worker_id", w.id, "error", err)
		} else {
			batch = append(batch, more...)
		}
	}
	return batch, nil
}

// claim atomically claims up to limit pending events using
// FOR UPDATE SKIP LOCKED, ordered by priority rank then arrival.
func (w *Worker) claim(ctx context.Context, limit int) ([]*ent.GitHubEvent, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.GitHubEvent.Query().
		Where(
			githubevent.StatusEQ(githubevent.StatusPending),
			noEarlierUnfinishedForActor(),
		).
		Order(byPriorityRank, ent.Asc(githubevent.FieldCreatedAt)).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending events: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	now := time.Now()
	if err := tx.GitHubEvent.Update().
		Where(githubevent.IDIn(eventIDs(rows)...)).
		SetStatus(githubevent.StatusInProgress).
		SetPodID(w.podID).
		SetClaimedAt(now).
		SetLastHeartbeatAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to claim events: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return rows, nil
}

// byPriorityRank orders high before medium before low.
func byPriorityRank(s *sql.Selector) {
	s.OrderExpr(sql.Expr("CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END"))
}

// noEarlierUnfinishedForActor keeps per-actor ordering across batches
// and replicas: an event is claimable only while no older event from
// the same actor is still pending or in progress. A row locked by a
// concurrent claim still reads as pending here, so one replica cannot
// leapfrog another's in-flight claim of the same actor.
func noEarlierUnfinishedForActor() predicate.GitHubEvent {
	return func(s *sql.Selector) {
		earlier := sql.Table(githubevent.Table).As("earlier")
		s.Where(sql.NotExists(
			sql.Select().From(earlier).Where(sql.And(
				sql.ColumnsEQ(earlier.C(githubevent.FieldActorLogin), s.C(githubevent.FieldActorLogin)),
				sql.In(earlier.C(githubevent.FieldStatus),
					string(githubevent.StatusPending), string(githubevent.StatusInProgress)),
				sql.Or(
					sql.ColumnsLT(earlier.C(githubevent.FieldCreatedAt), s.C(githubevent.FieldCreatedAt)),
					sql.And(
						sql.ColumnsEQ(earlier.C(githubevent.FieldCreatedAt), s.C(githubevent.FieldCreatedAt)),
						sql.ColumnsLT(earlier.C(githubevent.FieldID), s.C(githubevent.FieldID)),
					),
				),
			)),
		))
	}
}

// finalizeBatch writes terminal statuses. Events the processor reported
// neither processed nor failed (batch timeout cut them off) go back to
// pending for another worker to pick up.
func (w *Worker) finalizeBatch(ctx context.Context, batch []*ent.GitHubEvent, result *BatchResult) error {
	if len(result.Processed) > 0 {
		if err := w.client.GitHubEvent.Update().
			Where(githubevent.IDIn(result.Processed...)).
			SetStatus(githubevent.StatusProcessed).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to mark events processed: %w", err)
		}
	}
	if len(result.Failed) > 0 {
		if err := w.client.GitHubEvent.Update().
			Where(githubevent.IDIn(result.Failed...)).
			SetStatus(githubevent.StatusFailed).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to mark events failed: %w", err)
		}
	}

	leftovers := unaccounted(batch, result)
	if len(leftovers) > 0 {
		slog.Warn("Returning unprocessed events to queue",
			"worker_id", w.id, "count", len(leftovers))
		if err := w.client.GitHubEvent.Update().
			Where(githubevent.IDIn(leftovers...)).
			SetStatus(githubevent.StatusPending).
			ClearPodID().
			ClearClaimedAt().
			ClearLastHeartbeatAt().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to requeue events: %w", err)
		}
	}
	return nil
}

// runHeartbeat periodically refreshes last_heartbeat_at for the claimed
// events so orphan detection leaves the claim alone.
func (w *Worker) runHeartbeat(ctx context.Context, ids []string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.GitHubEvent.Update().
				Where(
					githubevent.IDIn(ids...),
					githubevent.StatusEQ(githubevent.StatusInProgress),
					githubevent.PodID(w.podID),
				).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "worker_id", w.id, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, batchSize int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentBatchSize = batchSize
	w.lastActivity = time.Now()
}

func eventIDs(batch []*ent.GitHubEvent) []string {
	ids := make([]string, len(batch))
	for i, ev := range batch {
		ids[i] = ev.ID
	}
	return ids
}

func unaccounted(batch []*ent.GitHubEvent, result *BatchResult) []string {
	seen := make(map[string]bool, len(result.Processed)+len(result.Failed))
	for _, id := range result.Processed {
		seen[id] = true
	}
	for _, id := range result.Failed {
		seen[id] = true
	}
	var leftovers []string
	for _, ev := range batch {
		if !seen[ev.ID] {
			leftovers = append(leftovers, ev.ID)
		}
	}
	return leftovers
}
