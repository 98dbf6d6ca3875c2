package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GitHubEvent holds the schema definition for the GitHubEvent entity.
// Rows double as the durable work queue: the poller inserts them as
// "pending" and stream processors claim them with FOR UPDATE SKIP LOCKED.
type GitHubEvent struct {
	ent.Schema
}

// Fields of the GitHubEvent.
func (GitHubEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Upstream event id (monotonically increasing string)"),
		field.String("event_type").
			Comment("Upstream type tag (PushEvent, DeleteEvent, ...)"),
		field.String("actor_login"),
		field.Int64("actor_id"),
		field.String("repo_name").
			Comment("Repository full name (owner/name)"),
		field.Int64("repo_id"),
		field.Time("event_created_at").
			Immutable().
			Comment("Upstream timestamp (UTC)"),
		field.JSON("payload", json.RawMessage{}).
			Optional().
			Comment("Opaque per-type payload, re-serialized into anomaly records"),
		field.Enum("priority").
			Values("high", "medium", "low").
			Default("low"),
		field.Enum("status").
			Values("pending", "in_progress", "processed", "failed").
			Default("pending"),
		field.String("pod_id").
			Optional().
			Comment("Replica that claimed the event"),
		field.Time("claimed_at").
			Optional(),
		field.Time("last_heartbeat_at").
			Optional().
			Comment("Updated while a claim is being processed; drives orphan recovery"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the poller enqueued the event"),
	}
}

// Indexes of the GitHubEvent.
func (GitHubEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "priority", "created_at"),
		index.Fields("actor_login", "event_created_at"),
		index.Fields("repo_name", "event_created_at"),
	}
}
