package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreamEvent holds the schema definition for the StreamEvent entity.
// Persistent pub/sub rows: published anomaly messages are stored here and
// broadcast via NOTIFY so reconnecting subscribers can catch up by row id.
type StreamEvent struct {
	ent.Schema
}

// Fields of the StreamEvent.
func (StreamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel"),
		field.JSON("payload", json.RawMessage{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the StreamEvent.
func (StreamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("created_at"),
	}
}
