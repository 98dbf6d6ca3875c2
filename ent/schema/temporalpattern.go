package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TemporalPattern holds the schema definition for the TemporalPattern
// entity. Auxiliary records emitted by the temporal detector when a burst
// or coordination pattern straddles multiple events.
type TemporalPattern struct {
	ent.Schema
}

// Fields of the TemporalPattern.
func (TemporalPattern) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("pattern_type").
			Values("activity_burst", "coordinated_activity"),
		field.String("event_id").
			Comment("Event that triggered the emission"),
		field.String("repo_name"),
		field.String("actor_login").
			Optional().
			Comment("Empty for multi-actor coordination patterns"),
		field.Float("severity"),
		field.Int("event_count"),
		field.Int("actor_count").
			Default(1),
		field.Time("window_start"),
		field.Time("window_end"),
		field.Time("detected_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TemporalPattern.
func (TemporalPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("repo_name", "detected_at"),
		index.Fields("pattern_type", "detected_at"),
	}
}
