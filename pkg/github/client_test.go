package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/models"
)

const eventsPage = `[
	{
		"id": "4100000001",
		"type": "PushEvent",
		"actor": {"id": 42, "login": "octocat"},
		"repo": {"id": 7, "name": "octo-org/widgets"},
		"payload": {"ref": "refs/heads/main", "size": 1, "commits": []},
		"created_at": "2026-03-14T02:10:00Z"
	},
	{
		"id": "4100000002",
		"type": "WatchEvent",
		"actor": {"id": 43, "login": "stargazer"},
		"repo": {"id": 7, "name": "octo-org/widgets"},
		"payload": {"action": "started"},
		"created_at": "2026-03-14T02:10:05Z"
	},
	{
		"id": "4100000003",
		"type": "PushEvent",
		"actor": {"id": 0, "login": ""},
		"repo": {"id": 9, "name": "corrupt/event"},
		"payload": {},
		"created_at": "2026-03-14T02:10:06Z"
	}
]`

func TestListPublicEvents(t *testing.T) {
	var gotETag string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("per_page"))
		require.Equal(t, "1", r.URL.Query().Get("page"))
		gotETag = r.Header.Get("If-None-Match")

		w.Header().Set("ETag", `"abc123"`)
		w.Header().Set("X-RateLimit-Limit", "5000")
		w.Header().Set("X-RateLimit-Remaining", "4990")
		w.Header().Set("X-RateLimit-Reset", "1773500000")
		w.Header().Set("X-Poll-Interval", "1")
		_, _ = w.Write([]byte(eventsPage))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token")
	result, err := client.ListPublicEvents(context.Background(), `"old"`, 1, 100)
	require.NoError(t, err)

	assert.Equal(t, `"old"`, gotETag)
	assert.Equal(t, `"abc123"`, result.ETag)
	assert.False(t, result.NotModified)
	assert.Equal(t, time.Second, result.PollInterval)
	assert.Equal(t, 5000, result.Quota.Limit)
	assert.Equal(t, 4990, result.Quota.Remaining)

	// The corrupt third event (no actor login) is dropped.
	require.Len(t, result.Events, 2)
	assert.Equal(t, "4100000001", result.Events[0].ID)
	assert.Equal(t, models.PriorityHigh, result.Events[0].Priority)
	assert.Equal(t, "octo-org/widgets", result.Events[0].Repository.FullName)
	assert.Equal(t, models.PriorityLow, result.Events[1].Priority)
}

func TestListPublicEventsNotModified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "4000")
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	result, err := client.ListPublicEvents(context.Background(), `"abc123"`, 1, 100)
	require.NoError(t, err)
	assert.True(t, result.NotModified)
	assert.Empty(t, result.Events)
	// ETag carried over when the server omits it on a 304.
	assert.Equal(t, `"abc123"`, result.ETag)
}

func TestListPublicEventsRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1773500000")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.ListPublicEvents(context.Background(), "", 1, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)

	var rlErr *RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, time.Unix(1773500000, 0).UTC(), rlErr.Reset)
}

func TestListPublicEventsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.ListPublicEvents(context.Background(), "", 1, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGetRepository(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octo-org/widgets":
			_, _ = w.Write([]byte(`{
				"full_name": "octo-org/widgets",
				"stargazers_count": 1200,
				"forks_count": 90,
				"default_branch": "main",
				"security_and_analysis": {"advanced_security": {"status": "enabled"}}
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")

	meta, err := client.GetRepository(context.Background(), "octo-org/widgets")
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, 1200, meta.Stars)
	assert.True(t, meta.HasSecurityPolicy())

	// Missing repos resolve to nil without error.
	meta, err = client.GetRepository(context.Background(), "gone/repo")
	require.NoError(t, err)
	assert.Nil(t, meta)
}
