package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgewatch/forgewatch/pkg/services"
)

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService *services.EventService
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries stream events since sinceID up to limit.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	events, err := a.eventService.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(events))
	for i, evt := range events {
		var payload map[string]any
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			return nil, fmt.Errorf("corrupt stream event %d: %w", evt.ID, err)
		}
		result[i] = CatchupEvent{
			ID:      evt.ID,
			Payload: payload,
		}
	}
	return result, nil
}
