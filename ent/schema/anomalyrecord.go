package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnomalyRecord holds the schema definition for the AnomalyRecord entity.
// One record per reported event; immutable once written, idempotent on
// event_id.
type AnomalyRecord struct {
	ent.Schema
}

// Fields of the AnomalyRecord.
func (AnomalyRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			Immutable(),
		field.String("repository_name"),
		field.String("user_login"),
		field.String("event_type"),
		field.Time("event_timestamp").
			Comment("Upstream event timestamp (UTC)"),
		field.Float("behavioral_anomaly_score"),
		field.Float("content_risk_score"),
		field.Float("temporal_anomaly_score"),
		field.Float("repository_criticality_score"),
		field.Float("final_anomaly_score"),
		field.Enum("severity_level").
			Values("info", "low", "medium", "high", "critical"),
		field.String("primary_method").
			Comment("Detector with the largest weighted contribution"),
		field.JSON("behavioral_analysis", json.RawMessage{}).
			Optional(),
		field.JSON("content_analysis", json.RawMessage{}).
			Optional(),
		field.JSON("temporal_analysis", json.RawMessage{}).
			Optional(),
		field.JSON("repository_context", json.RawMessage{}).
			Optional(),
		field.JSON("high_risk_indicators", []string{}).
			Optional(),
		field.Text("ai_summary").
			Optional(),
		field.Bool("degraded").
			Default(false).
			Comment("True when any detector errored or timed out"),
		field.Time("detection_timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AnomalyRecord.
func (AnomalyRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("severity_level", "detection_timestamp"),
		index.Fields("user_login", "detection_timestamp"),
		index.Fields("repository_name", "detection_timestamp"),
	}
}
