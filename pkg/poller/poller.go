// Package poller ingests the upstream public events feed into the
// durable event queue, applying priority sampling, deduplication, and
// rate-limit aware pacing.
package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/github"
	"github.com/forgewatch/forgewatch/pkg/metrics"
	"github.com/forgewatch/forgewatch/pkg/models"
)

// EventStore persists accepted events into the durable queue.
type EventStore interface {
	// InsertEvent stores an event as pending. Returns false when the
	// event id already exists (idempotent re-delivery).
	InsertEvent(ctx context.Context, ev models.Event) (bool, error)

	// PendingDepth returns the current pending backlog size.
	PendingDepth(ctx context.Context) (int, error)
}

// eventsAPI is the slice of the upstream client the poller consumes.
type eventsAPI interface {
	ListPublicEvents(ctx context.Context, etag string, page, perPage int) (*github.PollResult, error)
}

// Poller drives the ingestion loop. One Run call per replica; replicas
// coordinate through the shared rate limiter and dedup cache.
type Poller struct {
	api     eventsAPI
	store   EventStore
	dedup   *Deduper
	limiter *github.RateLimiter
	cfg     *config.PollerConfig
	logger  *slog.Logger

	etag    string
	backoff *backoff.ExponentialBackOff
}

// New creates a poller.
func New(api eventsAPI, store EventStore, dedup *Deduper, limiter *github.RateLimiter, cfg *config.PollerConfig) *Poller {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = cfg.BackoffMaxInterval
	b.MaxElapsedTime = 0 // never give up, the circuit breaker handles that

	return &Poller{
		api:     api,
		store:   store,
		dedup:   dedup,
		limiter: limiter,
		cfg:     cfg,
		logger:  slog.With("component", "poller"),
		backoff: b,
	}
}

// Run polls until the context is canceled. The returned error is the
// context error; transient upstream failures are absorbed by backoff and
// the circuit breaker.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("Poller starting",
		"poll_interval", p.cfg.PollInterval,
		"per_page", p.cfg.PerPage,
		"sample_low_fraction", p.cfg.SampleLowFraction)

	for {
		delay := p.pollOnce(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopping")
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// pollOnce performs one poll cycle and returns the delay before the next.
func (p *Poller) pollOnce(ctx context.Context) time.Duration {
	open, err := p.limiter.CircuitOpen(ctx)
	if err != nil {
		p.logger.Error("Circuit breaker check failed", "error", err)
		return p.cfg.PollInterval
	}
	if open {
		return time.Minute
	}

	if err := p.limiter.Heartbeat(ctx); err != nil {
		p.logger.Warn("Poller heartbeat failed", "error", err)
	}

	if !p.limiter.TakeToken() {
		return p.tokenExhaustedDelay(ctx)
	}

	ok, err := p.limiter.AcquireSlot(ctx)
	if err != nil {
		p.logger.Error("Slot acquisition failed", "error", err)
		return p.cfg.PollInterval
	}
	if !ok {
		// All API slots busy, retry shortly.
		return jitter(2 * time.Second)
	}
	defer func() {
		if err := p.limiter.ReleaseSlot(ctx); err != nil {
			p.logger.Warn("Slot release failed", "error", err)
		}
	}()

	result, err := p.api.ListPublicEvents(ctx, p.etag, 1, p.cfg.PerPage)
	if err != nil {
		return p.handlePollError(ctx, err)
	}

	p.backoff.Reset()
	if err := p.limiter.RecordSuccess(ctx); err != nil {
		p.logger.Warn("Failed to reset failure count", "error", err)
	}
	if err := p.limiter.UpdateQuota(ctx, result.Quota); err != nil {
		p.logger.Warn("Failed to record quota snapshot", "error", err)
	}

	p.etag = result.ETag

	if !result.NotModified {
		_, duplicates := p.ingest(ctx, result.Events)

		// A full page with nothing we had already seen means the feed
		// outran the poll cadence. Walk deeper pages until a duplicate
		// reappears or the page budget runs out.
		for page := 2; page <= p.cfg.MaxCatchupPages &&
			duplicates == 0 && len(result.Events) == p.cfg.PerPage; page++ {
			if !p.limiter.TakeToken() {
				p.logger.Warn("Token budget exhausted mid catch-up", "page", page)
				break
			}
			result, err = p.api.ListPublicEvents(ctx, "", page, p.cfg.PerPage)
			if err != nil {
				p.logger.Warn("Catch-up page fetch failed", "page", page, "error", err)
				break
			}
			_, duplicates = p.ingest(ctx, result.Events)
		}
	}

	delay := p.limiter.SleepFor(result.Quota, p.cfg.PollInterval)
	if result.PollInterval > delay {
		delay = result.PollInterval
	}
	return jitter(delay)
}

// tokenExhaustedDelay pauses a replica that has spent its share of the
// quota window until the window resets and the bucket refills.
func (p *Poller) tokenExhaustedDelay(ctx context.Context) time.Duration {
	q, err := p.limiter.Quota(ctx)
	if err != nil {
		p.logger.Warn("Failed to read quota snapshot", "error", err)
		return jitter(time.Minute)
	}
	delay := time.Until(q.Reset)
	if delay <= 0 {
		delay = time.Minute
	}
	p.logger.Warn("Local token budget exhausted, pausing until quota reset",
		"reset", q.Reset,
		"delay", delay)
	return jitter(delay)
}

func (p *Poller) handlePollError(ctx context.Context, err error) time.Duration {
	var rlErr *github.RateLimitError
	switch {
	case errors.As(err, &rlErr):
		metrics.PollErrors.WithLabelValues("rate_limited").Inc()
		delay := time.Until(rlErr.Reset)
		if delay < 0 {
			delay = time.Minute
		}
		p.logger.Warn("Rate limited by upstream, pausing until reset",
			"reset", rlErr.Reset,
			"delay", delay)
		return jitter(delay)

	case errors.Is(err, github.ErrUpstream):
		metrics.PollErrors.WithLabelValues("server").Inc()
		tripped, ferr := p.limiter.RecordFailure(ctx)
		if ferr != nil {
			p.logger.Warn("Failed to record upstream failure", "error", ferr)
		}
		if tripped {
			p.logger.Error("Consecutive upstream failures tripped the circuit breaker")
			return time.Minute
		}
		delay := p.backoff.NextBackOff()
		p.logger.Warn("Upstream server error, backing off", "error", err, "delay", delay)
		return delay

	default:
		if ctx.Err() != nil {
			return p.cfg.PollInterval
		}
		metrics.PollErrors.WithLabelValues("other").Inc()
		p.logger.Error("Poll failed", "error", err)
		return p.cfg.PollInterval
	}
}

// ingest filters, dedups, and persists one page of events. The returned
// duplicate count drives the catch-up cutoff in pollOnce.
func (p *Poller) ingest(ctx context.Context, events []models.Event) (accepted, duplicates int) {
	depth, err := p.store.PendingDepth(ctx)
	if err != nil {
		p.logger.Warn("Failed to read queue depth", "error", err)
		depth = 0
	}
	metrics.QueueDepth.Set(float64(depth))
	backpressure := depth > p.cfg.MaxQueueDepth

	for _, ev := range events {
		if ctx.Err() != nil {
			return accepted, duplicates
		}

		switch {
		case ev.Priority == models.PriorityLow:
			if backpressure {
				metrics.EventsDropped.WithLabelValues("backpressure").Inc()
				metrics.Drops.Add(string(ev.Priority))
				continue
			}
			if !models.SampleLow(ev.ID, p.cfg.SampleLowFraction) {
				metrics.EventsDropped.WithLabelValues("sampled").Inc()
				continue
			}
		case ev.Priority == models.PriorityMedium && backpressure:
			// Medium waits for the backlog to drain, but only so long;
			// past the bound it is dropped rather than stall the poll
			// loop.
			if err := p.waitForCapacity(ctx, p.cfg.BackpressureWait); err != nil {
				if ctx.Err() != nil {
					return accepted, duplicates
				}
				metrics.EventsDropped.WithLabelValues("backpressure").Inc()
				metrics.Drops.Add(string(ev.Priority))
				continue
			}
			backpressure = false
		case backpressure:
			// High priority is never dropped: wait for the workers to
			// drain the backlog.
			if err := p.waitForCapacity(ctx, 0); err != nil {
				return accepted, duplicates
			}
			backpressure = false
		}

		seen, err := p.dedup.Seen(ctx, ev.ID)
		if err != nil {
			// Dedup cache down: fall through to the database unique
			// constraint rather than lose the event.
			p.logger.Warn("Dedup cache unavailable", "error", err)
		} else if seen {
			metrics.EventsDropped.WithLabelValues("duplicate").Inc()
			duplicates++
			continue
		}

		inserted, err := p.store.InsertEvent(ctx, ev)
		if err != nil {
			p.logger.Error("Failed to persist event", "event_id", ev.ID, "error", err)
			if ferr := p.dedup.Forget(ctx, ev.ID); ferr != nil {
				p.logger.Warn("Failed to release dedup mark", "event_id", ev.ID, "error", ferr)
			}
			continue
		}
		if !inserted {
			metrics.EventsDropped.WithLabelValues("duplicate").Inc()
			duplicates++
			continue
		}

		metrics.EventsIngested.WithLabelValues(string(ev.Priority)).Inc()
		accepted++
	}

	if accepted > 0 {
		p.logger.Debug("Ingested events", "accepted", accepted, "page_size", len(events))
	}
	return accepted, duplicates
}

// waitForCapacity blocks until the pending backlog drops below the
// high-water mark, the bound elapses (bound 0 waits forever), or the
// context is canceled.
func (p *Poller) waitForCapacity(ctx context.Context, bound time.Duration) error {
	if bound > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, bound)
		defer cancel()
	}

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			depth, err := p.store.PendingDepth(ctx)
			if err != nil {
				return fmt.Errorf("queue depth during backpressure: %w", err)
			}
			metrics.QueueDepth.Set(float64(depth))
			if depth <= p.cfg.MaxQueueDepth {
				return nil
			}
		}
	}
}

// jitter spreads replica wakeups by ±10%.
func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	delta := time.Duration(rand.Int63n(int64(d)/5+1)) - d/10
	return d + delta
}
