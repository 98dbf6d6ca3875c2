package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProfile holds the schema definition for the UserProfile entity.
// Per-actor behavioral baseline, updated by EWMA after each scored event.
type UserProfile struct {
	ent.Schema
}

// Fields of the UserProfile.
func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_login").
			Unique().
			Immutable().
			Comment("Actor login"),
		field.JSON("mean_features", []float64{}).
			Comment("EWMA mean vector (10 dims)"),
		field.JSON("variance_features", []float64{}).
			Comment("EWMA variance vector, floored at epsilon"),
		field.Int64("sample_count").
			Default(0),
		field.JSON("feature_history", [][]float64{}).
			Optional().
			Comment("Bounded ring of recent feature vectors for covariance rebuilds"),
		field.JSON("hour_counts", []float64{}).
			Optional().
			Comment("24-bin decayed hourly activity histogram (7-day horizon)"),
		field.Float("week_rate").
			Default(0).
			Comment("EWMA events/min over the trailing 7 days"),
		field.JSON("event_type_counts", map[string]int64{}).
			Optional().
			Comment("Per-type event counts, used by the low-priority prefilter"),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UserProfile.
func (UserProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_updated"),
	}
}
