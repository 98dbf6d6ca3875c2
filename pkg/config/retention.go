package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// ProcessedEventTTL is how long processed/failed event rows are kept.
	ProcessedEventTTL time.Duration `yaml:"processed_event_ttl"`

	// AnomalyRetentionDays is how many days anomaly records are kept.
	AnomalyRetentionDays int `yaml:"anomaly_retention_days"`

	// StreamEventTTL is the maximum age of pub/sub catchup rows.
	StreamEventTTL time.Duration `yaml:"stream_event_ttl"`

	// ProfileTTL is how long an actor or repository baseline survives
	// without a new observation before it is dropped.
	ProfileTTL time.Duration `yaml:"profile_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ProcessedEventTTL:    24 * time.Hour,
		AnomalyRetentionDays: 90,
		StreamEventTTL:       1 * time.Hour,
		ProfileTTL:           30 * 24 * time.Hour,
		CleanupInterval:      1 * time.Hour,
	}
}
