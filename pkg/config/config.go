// Package config loads and validates the forgewatch.yaml configuration
// file, layering user overrides on top of built-in defaults.
package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string

	Poller     *PollerConfig
	Detection  *DetectionConfig
	Queue      *QueueConfig
	Redis      *RedisConfig
	Server     *ServerConfig
	Summarizer *SummarizerConfig
	Retention  *RetentionConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
