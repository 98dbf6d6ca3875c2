package pubsub

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/models"
)

func sampleReport(summary string) *models.AnomalyReport {
	return &models.AnomalyReport{
		EventID:           "44138271650",
		RepositoryName:    "octo-org/widgets",
		UserLogin:         "octocat",
		EventType:         "PushEvent",
		FinalAnomalyScore: 0.72,
		SeverityLevel:     models.SeverityHigh,
		PrimaryMethod:     "content",
		AISummary:         summary,
	}
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(anomalyMessage{Type: MessageTypeAnomaly, AnomalyReport: sampleReport("short")})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, MessageTypeAnomaly)
		assert.Contains(t, result, "44138271650")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(anomalyMessage{
			Type:          MessageTypeAnomaly,
			AnomalyReport: sampleReport(strings.Repeat("a", 8000)),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(anomalyMessage{
			Type:          MessageTypeAnomaly,
			AnomalyReport: sampleReport(strings.Repeat("x", 8000)),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, MessageTypeAnomaly)
		assert.Contains(t, result, "44138271650")
		assert.Contains(t, result, string(models.SeverityHigh))
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectStreamIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(anomalyMessage{Type: MessageTypeAnomaly, AnomalyReport: sampleReport("hello")})

		result, err := injectStreamIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "44138271650")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(anomalyMessage{
			Type:          MessageTypeAnomaly,
			AnomalyReport: sampleReport(strings.Repeat("x", 8000)),
		})

		result, err := injectStreamIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "44138271650")
	})
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "anomalies_critical", SeverityChannel("critical"))
	assert.Equal(t, "user_octocat", UserChannel("octocat"))
	assert.Equal(t, "repo_octo-org/widgets", RepoChannel("octo-org/widgets"))
}

func TestNewPublisher(t *testing.T) {
	p := NewPublisher(nil)
	assert.NotNil(t, p)
	assert.Nil(t, p.db)
}
