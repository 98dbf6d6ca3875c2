package models

import "time"

// ProcessingStats is published on the processing_stats channel once per
// batch, and aggregated for the stats API.
type ProcessingStats struct {
	EventsProcessed   int            `json:"events_processed"`
	AnomaliesDetected int            `json:"anomalies_detected"`
	BatchSize         int            `json:"batch_size"`
	DroppedByPriority map[string]int `json:"dropped_by_priority,omitempty"`
	DetectorTimeouts  int            `json:"detector_timeouts"`
	ProcessingMillis  int64          `json:"processing_millis"`
	Timestamp         time.Time      `json:"timestamp"`
}
