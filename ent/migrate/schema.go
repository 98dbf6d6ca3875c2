// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnomalyRecordsColumns holds the columns for the "anomaly_records" table.
	AnomalyRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "repository_name", Type: field.TypeString},
		{Name: "user_login", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "event_timestamp", Type: field.TypeTime},
		{Name: "behavioral_anomaly_score", Type: field.TypeFloat64},
		{Name: "content_risk_score", Type: field.TypeFloat64},
		{Name: "temporal_anomaly_score", Type: field.TypeFloat64},
		{Name: "repository_criticality_score", Type: field.TypeFloat64},
		{Name: "final_anomaly_score", Type: field.TypeFloat64},
		{Name: "severity_level", Type: field.TypeEnum, Enums: []string{"info", "low", "medium", "high", "critical"}},
		{Name: "primary_method", Type: field.TypeString},
		{Name: "behavioral_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "content_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "temporal_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "repository_context", Type: field.TypeJSON, Nullable: true},
		{Name: "high_risk_indicators", Type: field.TypeJSON, Nullable: true},
		{Name: "ai_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "degraded", Type: field.TypeBool, Default: false},
		{Name: "detection_timestamp", Type: field.TypeTime},
	}
	// AnomalyRecordsTable holds the schema information for the "anomaly_records" table.
	AnomalyRecordsTable = &schema.Table{
		Name:       "anomaly_records",
		Columns:    AnomalyRecordsColumns,
		PrimaryKey: []*schema.Column{AnomalyRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "anomalyrecord_severity_level_detection_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnomalyRecordsColumns[11], AnomalyRecordsColumns[20]},
			},
			{
				Name:    "anomalyrecord_user_login_detection_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnomalyRecordsColumns[3], AnomalyRecordsColumns[20]},
			},
			{
				Name:    "anomalyrecord_repository_name_detection_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnomalyRecordsColumns[2], AnomalyRecordsColumns[20]},
			},
		},
	}
	// GitHubEventsColumns holds the columns for the "git_hub_events" table.
	GitHubEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "actor_login", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeInt64},
		{Name: "repo_name", Type: field.TypeString},
		{Name: "repo_id", Type: field.TypeInt64},
		{Name: "event_created_at", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"high", "medium", "low"}, Default: "low"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "processed", "failed"}, Default: "pending"},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GitHubEventsTable holds the schema information for the "git_hub_events" table.
	GitHubEventsTable = &schema.Table{
		Name:       "git_hub_events",
		Columns:    GitHubEventsColumns,
		PrimaryKey: []*schema.Column{GitHubEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "githubevent_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{GitHubEventsColumns[9], GitHubEventsColumns[8], GitHubEventsColumns[13]},
			},
			{
				Name:    "githubevent_actor_login_event_created_at",
				Unique:  false,
				Columns: []*schema.Column{GitHubEventsColumns[2], GitHubEventsColumns[6]},
			},
			{
				Name:    "githubevent_repo_name_event_created_at",
				Unique:  false,
				Columns: []*schema.Column{GitHubEventsColumns[4], GitHubEventsColumns[6]},
			},
		},
	}
	// RepositoryProfilesColumns holds the columns for the "repository_profiles" table.
	RepositoryProfilesColumns = []*schema.Column{
		{Name: "repo_name", Type: field.TypeString, Unique: true},
		{Name: "events_per_hour", Type: field.TypeFloat64, Default: 0},
		{Name: "contributor_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "stars", Type: field.TypeInt, Default: 0},
		{Name: "forks", Type: field.TypeInt, Default: 0},
		{Name: "has_security_policy", Type: field.TypeBool, Default: false},
		{Name: "protected_branches", Type: field.TypeInt, Default: 0},
		{Name: "criticality", Type: field.TypeFloat64, Default: 0},
		{Name: "criticality_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// RepositoryProfilesTable holds the schema information for the "repository_profiles" table.
	RepositoryProfilesTable = &schema.Table{
		Name:       "repository_profiles",
		Columns:    RepositoryProfilesColumns,
		PrimaryKey: []*schema.Column{RepositoryProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "repositoryprofile_last_updated",
				Unique:  false,
				Columns: []*schema.Column{RepositoryProfilesColumns[10]},
			},
		},
	}
	// StreamEventsColumns holds the columns for the "stream_events" table.
	StreamEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StreamEventsTable holds the schema information for the "stream_events" table.
	StreamEventsTable = &schema.Table{
		Name:       "stream_events",
		Columns:    StreamEventsColumns,
		PrimaryKey: []*schema.Column{StreamEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streamevent_channel_id",
				Unique:  false,
				Columns: []*schema.Column{StreamEventsColumns[1], StreamEventsColumns[0]},
			},
			{
				Name:    "streamevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{StreamEventsColumns[3]},
			},
		},
	}
	// TemporalPatternsColumns holds the columns for the "temporal_patterns" table.
	TemporalPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "pattern_type", Type: field.TypeEnum, Enums: []string{"activity_burst", "coordinated_activity"}},
		{Name: "event_id", Type: field.TypeString},
		{Name: "repo_name", Type: field.TypeString},
		{Name: "actor_login", Type: field.TypeString, Nullable: true},
		{Name: "severity", Type: field.TypeFloat64},
		{Name: "event_count", Type: field.TypeInt},
		{Name: "actor_count", Type: field.TypeInt, Default: 1},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "detected_at", Type: field.TypeTime},
	}
	// TemporalPatternsTable holds the schema information for the "temporal_patterns" table.
	TemporalPatternsTable = &schema.Table{
		Name:       "temporal_patterns",
		Columns:    TemporalPatternsColumns,
		PrimaryKey: []*schema.Column{TemporalPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "temporalpattern_repo_name_detected_at",
				Unique:  false,
				Columns: []*schema.Column{TemporalPatternsColumns[3], TemporalPatternsColumns[10]},
			},
			{
				Name:    "temporalpattern_pattern_type_detected_at",
				Unique:  false,
				Columns: []*schema.Column{TemporalPatternsColumns[1], TemporalPatternsColumns[10]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "user_login", Type: field.TypeString, Unique: true},
		{Name: "mean_features", Type: field.TypeJSON},
		{Name: "variance_features", Type: field.TypeJSON},
		{Name: "sample_count", Type: field.TypeInt64, Default: 0},
		{Name: "feature_history", Type: field.TypeJSON, Nullable: true},
		{Name: "hour_counts", Type: field.TypeJSON, Nullable: true},
		{Name: "week_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "event_type_counts", Type: field.TypeJSON, Nullable: true},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprofile_last_updated",
				Unique:  false,
				Columns: []*schema.Column{UserProfilesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnomalyRecordsTable,
		GitHubEventsTable,
		RepositoryProfilesTable,
		StreamEventsTable,
		TemporalPatternsTable,
		UserProfilesTable,
	}
)

func init() {
}
