package config

import "time"

// SummarizerConfig controls the optional AI summaries attached to
// high-severity anomaly reports.
type SummarizerConfig struct {
	// Enabled gates the feature; detection runs identically without it.
	Enabled bool `yaml:"enabled"`

	// APIBaseURL is the OpenAI-compatible chat completions endpoint.
	APIBaseURL string `yaml:"api_base_url"`

	// Model is the model name sent with each request.
	Model string `yaml:"model"`

	// TokenEnv names the environment variable holding the API key.
	TokenEnv string `yaml:"token_env"`

	// Timeout bounds a single summary request.
	Timeout time.Duration `yaml:"timeout"`

	// CacheTTL is how long summaries are reused for similar anomalies.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// DefaultSummarizerConfig returns the built-in summarizer defaults.
func DefaultSummarizerConfig() *SummarizerConfig {
	return &SummarizerConfig{
		Enabled:    false,
		APIBaseURL: "https://api.openai.com/v1",
		Model:      "gpt-4o-mini",
		TokenEnv:   "OPENAI_API_KEY",
		Timeout:    20 * time.Second,
		CacheTTL:   1 * time.Hour,
	}
}
