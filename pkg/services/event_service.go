// Package services holds the database-facing operations behind the
// pipeline stages and the REST API. Services take the generated ent
// client and keep SQL concerns out of the poller, processor, and
// handlers.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/ent/streamevent"
	"github.com/forgewatch/forgewatch/pkg/models"
)

// EventService manages the durable event queue and the stream_events
// rows behind WebSocket catchup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// InsertEvent stores an event as pending work. Returns false when the
// event id already exists; redelivered pages and dedup cache misses both
// land here, so the unique constraint is the final idempotency gate.
func (s *EventService) InsertEvent(ctx context.Context, ev models.Event) (bool, error) {
	create := s.client.GitHubEvent.Create().
		SetID(ev.ID).
		SetEventType(ev.Type).
		SetActorLogin(ev.Actor.Login).
		SetActorID(ev.Actor.ID).
		SetRepoName(ev.Repository.FullName).
		SetRepoID(ev.Repository.ID).
		SetEventCreatedAt(ev.Timestamp).
		SetPriority(githubevent.Priority(ev.Priority))
	if len(ev.Payload) > 0 {
		create.SetPayload(ev.Payload)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert event: %w", err)
	}
	return true, nil
}

// PendingDepth returns the current pending backlog size. Drives the
// poller's backpressure decisions.
func (s *EventService) PendingDepth(ctx context.Context) (int, error) {
	depth, err := s.client.GitHubEvent.Query().
		Where(githubevent.StatusEQ(githubevent.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending events: %w", err)
	}
	return depth, nil
}

// GetEventsSince retrieves stored stream events on a channel after the
// given row id, oldest first, capped at limit. Backs WebSocket catchup.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.StreamEvent, error) {
	events, err := s.client.StreamEvent.Query().
		Where(
			streamevent.ChannelEQ(channel),
			streamevent.IDGT(sinceID),
		).
		Order(ent.Asc(streamevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream events: %w", err)
	}
	return events, nil
}

// CleanupProcessedEvents deletes terminal queue rows older than the
// cutoff. Processed and failed rows are only kept for inspection; the
// durable output lives in anomaly_records.
func (s *EventService) CleanupProcessedEvents(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.GitHubEvent.Delete().
		Where(
			githubevent.StatusIn(githubevent.StatusProcessed, githubevent.StatusFailed),
			githubevent.CreatedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup processed events: %w", err)
	}
	return count, nil
}

// CleanupStreamEvents deletes stream rows older than the cutoff. Clients
// that far behind get a catchup.overflow and reload over REST anyway.
func (s *EventService) CleanupStreamEvents(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.StreamEvent.Delete().
		Where(streamevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup stream events: %w", err)
	}
	return count, nil
}
