package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/models"
	"github.com/forgewatch/forgewatch/pkg/services"
	testdb "github.com/forgewatch/forgewatch/test/database"
)

func newTestServer(t *testing.T) (*Server, *services.AnomalyService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := services.NewAnomalyService(client.Client)
	srv := NewServer(config.DefaultServerConfig(), client, svc, nil, nil)
	return srv, svc
}

func doRequest(t *testing.T, srv *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func seedReport(t *testing.T, svc *services.AnomalyService, eventID string, severity models.Severity, age time.Duration) {
	t.Helper()
	now := time.Now().UTC()
	report := &models.AnomalyReport{
		EventID:            eventID,
		RepositoryName:     "octo-org/widgets",
		UserLogin:          "octocat",
		EventType:          models.TypePush,
		Timestamp:          now.Add(-age),
		ContentRiskScore:   0.9,
		FinalAnomalyScore:  0.7,
		SeverityLevel:      severity,
		PrimaryMethod:      "content",
		DetectionTimestamp: now.Add(-age),
	}
	require.NoError(t, svc.PersistReport(context.Background(), report))
}

func TestListAnomalies(t *testing.T) {
	srv, svc := newTestServer(t)
	seedReport(t, svc, "evt-1", models.SeverityCritical, 3*time.Second)
	seedReport(t, svc, "evt-2", models.SeverityHigh, 2*time.Second)
	seedReport(t, svc, "evt-3", models.SeverityHigh, time.Second)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/anomalies?severity=high")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp anomalyListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Anomalies, 2)
	// Newest first.
	assert.Equal(t, "evt-3", resp.Anomalies[0].EventID)
	assert.Equal(t, "evt-2", resp.Anomalies[1].EventID)
}

func TestListAnomaliesPaging(t *testing.T) {
	srv, svc := newTestServer(t)
	for i := 0; i < 5; i++ {
		seedReport(t, svc, fmt.Sprintf("evt-%d", i), models.SeverityMedium, time.Duration(i)*time.Second)
	}

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/anomalies?limit=2&offset=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp anomalyListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)
	assert.Len(t, resp.Anomalies, 2)
	assert.Equal(t, 2, resp.Limit)
	assert.Equal(t, 2, resp.Offset)
}

func TestListAnomaliesValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, target := range []string{
		"/api/v1/anomalies?severity=bogus",
		"/api/v1/anomalies?since=yesterday",
		"/api/v1/anomalies?limit=-1",
		"/api/v1/anomalies?offset=x",
	} {
		rec := doRequest(t, srv, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGetAnomaly(t *testing.T) {
	srv, svc := newTestServer(t)
	seedReport(t, svc, "evt-1", models.SeverityHigh, time.Second)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/anomalies/evt-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.AnomalyReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "evt-1", report.EventID)
	assert.Equal(t, models.SeverityHigh, report.SeverityLevel)

	rec = doRequest(t, srv, http.MethodGet, "/api/v1/anomalies/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStats(t *testing.T) {
	srv, svc := newTestServer(t)
	seedReport(t, svc, "evt-1", models.SeverityCritical, time.Second)
	seedReport(t, svc, "evt-2", models.SeverityHigh, 48*time.Hour)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Window    string                `json:"window"`
		Anomalies services.AnomalyStats `json:"anomalies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "24h0m0s", resp.Window)
	// Only the recent record falls inside the default window.
	assert.Equal(t, 1, resp.Anomalies.Total)
	assert.Equal(t, 1, resp.Anomalies.BySeverity["critical"])

	rec = doRequest(t, srv, http.MethodGet, "/api/v1/stats?window=nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.NotEmpty(t, resp["version"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestCheckWSOrigin(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.AllowedWSOrigins = []string{"https://dashboard.example.com", "https://*.preview.example.com"}
	srv := &Server{cfg: cfg}

	cases := []struct {
		origin string
		host   string
		allow  bool
	}{
		{"", "api.example.com", true}, // non-browser client
		{"https://api.example.com", "api.example.com", true},
		{"https://dashboard.example.com", "api.example.com", true},
		{"https://pr-42.preview.example.com", "api.example.com", true},
		{"https://evil.example.net", "api.example.com", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		req.Host = tc.host
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		assert.Equal(t, tc.allow, srv.checkWSOrigin(req), "origin %q", tc.origin)
	}
}
