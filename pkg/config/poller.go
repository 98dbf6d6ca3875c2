package config

import "time"

// PollerConfig controls the upstream events poller.
type PollerConfig struct {
	// APIBaseURL is the GitHub REST API base URL.
	APIBaseURL string `yaml:"api_base_url"`

	// TokenEnv names the environment variable holding the API token.
	TokenEnv string `yaml:"token_env"`

	// PerPage is the page size requested from the events endpoint.
	PerPage int `yaml:"per_page"`

	// MaxCatchupPages bounds how many additional pages one poll cycle
	// fetches when page 1 comes back full of unseen events.
	MaxCatchupPages int `yaml:"max_catchup_pages"`

	// PollInterval is the base delay between polls. The poller stretches
	// it adaptively as the rate-limit quota drains.
	PollInterval time.Duration `yaml:"poll_interval"`

	// SampleLowFraction is the fraction of low-priority events kept.
	SampleLowFraction float64 `yaml:"sample_low_fraction"`

	// DedupTTL is how long seen event ids stay in the dedup cache.
	DedupTTL time.Duration `yaml:"dedup_ttl"`

	// FailureThreshold is the number of consecutive upstream failures
	// before the circuit breaker opens.
	FailureThreshold int `yaml:"failure_threshold"`

	// CircuitOpenTTL is how long an opened circuit stays open.
	CircuitOpenTTL time.Duration `yaml:"circuit_open_ttl"`

	// BackoffMaxInterval caps the exponential backoff between retries
	// on server errors.
	BackoffMaxInterval time.Duration `yaml:"backoff_max_interval"`

	// MaxQueueDepth is the pending-event backlog beyond which the poller
	// applies backpressure: low-priority events are dropped and higher
	// priorities block until the queue drains.
	MaxQueueDepth int `yaml:"max_queue_depth"`

	// BackpressureWait bounds how long a medium-priority event waits for
	// the backlog to drain before it too is dropped. High priority waits
	// without bound.
	BackpressureWait time.Duration `yaml:"backpressure_wait"`
}

// DefaultPollerConfig returns the built-in poller defaults.
func DefaultPollerConfig() *PollerConfig {
	return &PollerConfig{
		APIBaseURL:         "https://api.github.com",
		TokenEnv:           "GITHUB_TOKEN",
		PerPage:            100,
		MaxCatchupPages:    3,
		PollInterval:       15 * time.Second,
		SampleLowFraction:  0.20,
		DedupTTL:           10 * time.Minute,
		FailureThreshold:   10,
		CircuitOpenTTL:     30 * time.Minute,
		BackoffMaxInterval: 60 * time.Second,
		MaxQueueDepth:      10000,
		BackpressureWait:   5 * time.Second,
	}
}
