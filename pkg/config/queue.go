package config

import "time"

// QueueConfig contains event queue and worker pool configuration.
// These values control how pending events are polled, claimed in
// batches, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently claims and processes event batches.
	WorkerCount int `yaml:"worker_count"`

	// BatchSize is the maximum events claimed per batch.
	BatchSize int `yaml:"batch_size"`

	// BatchMaxWait is the longest a worker lingers waiting for a batch
	// to fill before processing a partial one.
	BatchMaxWait time.Duration `yaml:"batch_max_wait"`

	// PollInterval is the base interval for checking pending events.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// BatchTimeout bounds processing of one claimed batch.
	BatchTimeout time.Duration `yaml:"batch_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// batches to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often workers refresh claim heartbeats.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned claims.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a claim can go without a heartbeat
	// before its events are returned to pending.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		BatchSize:               50,
		BatchMaxWait:            500 * time.Millisecond,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		BatchTimeout:            30 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
		HeartbeatInterval:       10 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
	}
}
