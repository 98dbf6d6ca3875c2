package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RepositoryProfile holds the schema definition for the RepositoryProfile
// entity. Per-repository baseline and cached criticality.
type RepositoryProfile struct {
	ent.Schema
}

// Fields of the RepositoryProfile.
func (RepositoryProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("repo_name").
			Unique().
			Immutable().
			Comment("Repository full name (owner/name)"),
		field.Float("events_per_hour").
			Default(0).
			Comment("EWMA of observed event rate"),
		field.Float("contributor_estimate").
			Default(0).
			Comment("Decayed distinct-actor estimate"),
		field.Int("stars").
			Default(0),
		field.Int("forks").
			Default(0),
		field.Bool("has_security_policy").
			Default(false),
		field.Int("protected_branches").
			Default(0),
		field.Float("criticality").
			Default(0).
			Comment("Cached criticality score in [0,1]"),
		field.Time("criticality_updated_at").
			Optional().
			Comment("Cache timestamp; recomputed after TTL"),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RepositoryProfile.
func (RepositoryProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_updated"),
	}
}
