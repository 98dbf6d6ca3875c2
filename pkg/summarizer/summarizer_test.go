package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/models"
)

func report(eventID string) *models.AnomalyReport {
	return &models.AnomalyReport{
		EventID:            eventID,
		RepositoryName:     "octo-org/widgets",
		UserLogin:          "octocat",
		EventType:          models.TypePush,
		Timestamp:          time.Now().UTC(),
		FinalAnomalyScore:  0.88,
		SeverityLevel:      models.SeverityCritical,
		PrimaryMethod:      "content",
		HighRiskIndicators: []string{"secret:aws_access_key"},
	}
}

func completionsServer(t *testing.T, calls *atomic.Int64, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "octo-org/widgets")
		assert.Contains(t, req.Messages[1].Content, "secret:aws_access_key")

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSummarize(t *testing.T) {
	var calls atomic.Int64
	server := completionsServer(t, &calls, "  Credentials were pushed to a critical repository.\n")

	client := NewClient(server.URL, "gpt-4o-mini", "test-key")
	svc := New(client, 5*time.Second, time.Minute)

	summary, err := svc.Summarize(context.Background(), report("evt-1"))
	require.NoError(t, err)
	assert.Equal(t, "Credentials were pushed to a critical repository.", summary)
	assert.Equal(t, int64(1), calls.Load())
}

func TestSummarizeCachesSimilarAnomalies(t *testing.T) {
	var calls atomic.Int64
	server := completionsServer(t, &calls, "Suspicious push.")

	client := NewClient(server.URL, "gpt-4o-mini", "test-key")
	svc := New(client, 5*time.Second, time.Minute)
	ctx := context.Background()

	_, err := svc.Summarize(ctx, report("evt-1"))
	require.NoError(t, err)
	// Same actor/repo/method/severity: served from cache.
	_, err = svc.Summarize(ctx, report("evt-2"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.Load())

	// A different actor misses the cache.
	other := report("evt-3")
	other.UserLogin = "hubot"
	_, err = svc.Summarize(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestSummarizeTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "gpt-4o-mini", "")
	svc := New(client, 20*time.Millisecond, time.Minute)

	_, err := svc.Summarize(context.Background(), report("evt-slow"))
	assert.Error(t, err)
}

func TestSummarizeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "gpt-4o-mini", "")
	svc := New(client, time.Second, time.Minute)

	_, err := svc.Summarize(context.Background(), report("evt-err"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
}
