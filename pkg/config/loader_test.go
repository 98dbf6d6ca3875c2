package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forgewatch.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitializeDefaults(t *testing.T) {
	// No forgewatch.yaml at all: everything comes from built-in defaults.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Queue.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.BatchMaxWait)
	assert.Equal(t, 0.05, cfg.Detection.EWMAAlpha)
	assert.Equal(t, 10, cfg.Detection.WarmupSamples)
	assert.Equal(t, 30, cfg.Detection.MahalanobisSamples)
	assert.Equal(t, 0.15, cfg.Detection.ReportFloor)
	assert.Equal(t, 0.20, cfg.Poller.SampleLowFraction)
	assert.Equal(t, 10*time.Minute, cfg.Poller.DedupTTL)
	assert.Equal(t, "https://api.github.com", cfg.Poller.APIBaseURL)
	assert.False(t, cfg.Summarizer.Enabled)
}

func TestInitializeOverrides(t *testing.T) {
	dir := writeConfig(t, `
poller:
  poll_interval: 30s
  sample_low_fraction: 0.5
detection:
  report_floor: 0.25
queue:
  worker_count: 8
summarizer:
  enabled: true
  model: gpt-4o
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Poller.PollInterval)
	assert.Equal(t, 0.5, cfg.Poller.SampleLowFraction)
	assert.Equal(t, 0.25, cfg.Detection.ReportFloor)
	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.True(t, cfg.Summarizer.Enabled)
	assert.Equal(t, "gpt-4o", cfg.Summarizer.Model)

	// Unset values keep defaults.
	assert.Equal(t, 100, cfg.Poller.PerPage)
	assert.Equal(t, 50, cfg.Queue.BatchSize)
	assert.Equal(t, 0.05, cfg.Detection.EWMAAlpha)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_FW_REDIS_ADDR", "redis.internal:6380")
	dir := writeConfig(t, `
redis:
  addr: "{{.TEST_FW_REDIS_ADDR}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "queue: [not a map")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad ewma alpha", "detection:\n  ewma_alpha: 1.5\n"},
		{"bad weights", "detection:\n  weight_behavioral: 0.9\n"},
		{"bad worker count", "queue:\n  worker_count: -1\n"},
		{"bad sample fraction", "poller:\n  sample_low_fraction: 2.0\n"},
		{"bad per page", "poller:\n  per_page: 500\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}
