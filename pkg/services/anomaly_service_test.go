package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/temporalpattern"
	"github.com/forgewatch/forgewatch/pkg/detect"
	"github.com/forgewatch/forgewatch/pkg/models"
	testdb "github.com/forgewatch/forgewatch/test/database"
)

func testReport(eventID string, severity models.Severity) *models.AnomalyReport {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &models.AnomalyReport{
		EventID:                    eventID,
		RepositoryName:             "octo-org/widgets",
		UserLogin:                  "octocat",
		EventType:                  models.TypePush,
		Timestamp:                  now.Add(-time.Minute),
		BehavioralAnomalyScore:     0.4,
		ContentRiskScore:           0.9,
		TemporalAnomalyScore:       0.1,
		RepositoryCriticalityScore: 0.5,
		FinalAnomalyScore:          0.72,
		SeverityLevel:              severity,
		PrimaryMethod:              "content",
		HighRiskIndicators:         []string{"secret:aws_access_key"},
		DetectionTimestamp:         now,
	}
}

func TestPersistReportIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.PersistReport(ctx, testReport("evt-1", models.SeverityHigh)))
	// Replayed event (orphan recovery): second write is a silent no-op.
	require.NoError(t, svc.PersistReport(ctx, testReport("evt-1", models.SeverityHigh)))

	count, err := client.AnomalyRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPersistReportRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)
	ctx := context.Background()

	report := testReport("evt-rt", models.SeverityHigh)
	report.AISummary = "octocat pushed credentials to a critical repo"
	require.NoError(t, svc.PersistReport(ctx, report))

	rec, err := svc.GetAnomalyByEventID(ctx, "evt-rt")
	require.NoError(t, err)

	got := ReportFromRecord(rec)
	assert.Equal(t, report.EventID, got.EventID)
	assert.Equal(t, report.FinalAnomalyScore, got.FinalAnomalyScore)
	assert.Equal(t, report.SeverityLevel, got.SeverityLevel)
	assert.Equal(t, report.PrimaryMethod, got.PrimaryMethod)
	assert.Equal(t, report.HighRiskIndicators, got.HighRiskIndicators)
	assert.Equal(t, report.AISummary, got.AISummary)
	assert.WithinDuration(t, report.Timestamp, got.Timestamp, time.Second)
}

func TestGetAnomalyNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)

	_, err := svc.GetAnomalyByEventID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAnomaliesFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)
	ctx := context.Background()

	severities := []models.Severity{
		models.SeverityCritical,
		models.SeverityHigh,
		models.SeverityHigh,
		models.SeverityMedium,
	}
	for i, sev := range severities {
		report := testReport(fmt.Sprintf("evt-%d", i), sev)
		report.DetectionTimestamp = time.Now().UTC().Add(time.Duration(i) * time.Second)
		if i == 3 {
			report.UserLogin = "hubot"
		}
		require.NoError(t, svc.PersistReport(ctx, report))
	}

	records, total, err := svc.ListAnomalies(ctx, AnomalyFilter{Severity: "high"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, records, 2)
	// Newest first.
	assert.Equal(t, "evt-2", records[0].EventID)
	assert.Equal(t, "evt-1", records[1].EventID)

	records, total, err = svc.ListAnomalies(ctx, AnomalyFilter{User: "hubot"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, records, 1)
	assert.Equal(t, "evt-3", records[0].EventID)

	// Paging: total reflects all matches, the page is capped.
	records, total, err = svc.ListAnomalies(ctx, AnomalyFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, records, 2)
}

func TestGetStats(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.PersistReport(ctx, testReport("evt-1", models.SeverityCritical)))
	require.NoError(t, svc.PersistReport(ctx, testReport("evt-2", models.SeverityHigh)))
	degraded := testReport("evt-3", models.SeverityHigh)
	degraded.Degraded = true
	degraded.PrimaryMethod = "behavioral"
	require.NoError(t, svc.PersistReport(ctx, degraded))

	stats, err := svc.GetStats(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.BySeverity["critical"])
	assert.Equal(t, 2, stats.BySeverity["high"])
	assert.Equal(t, 2, stats.ByMethod["content"])
	assert.Equal(t, 1, stats.ByMethod["behavioral"])
	assert.Equal(t, 1, stats.Degraded)

	// A cutoff in the future matches nothing.
	stats, err = svc.GetStats(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}

func TestPersistPatterns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)
	ctx := context.Background()

	ev := models.Event{
		ID:         "evt-burst",
		Type:       models.TypePush,
		Actor:      models.Actor{ID: 1, Login: "octocat"},
		Repository: models.Repository{ID: 7, FullName: "octo-org/widgets"},
		Timestamp:  time.Now().UTC(),
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	patterns := []detect.Pattern{
		{Type: detect.PatternBurst, Severity: 0.6, EventCount: 12, ActorCount: 1, WindowStart: now.Add(-5 * time.Minute), WindowEnd: now},
		{Type: detect.PatternCoordination, Severity: 0.5, EventCount: 15, ActorCount: 5, WindowStart: now.Add(-10 * time.Minute), WindowEnd: now},
	}
	require.NoError(t, svc.PersistPatterns(ctx, ev, patterns))

	rows, err := client.TemporalPattern.Query().
		Order(ent.Asc(temporalpattern.FieldWindowStart)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	coord, burst := rows[0], rows[1]
	assert.Equal(t, temporalpattern.PatternTypeCoordinatedActivity, coord.PatternType)
	assert.Empty(t, coord.ActorLogin, "coordination has no single actor")
	assert.Equal(t, 5, coord.ActorCount)

	assert.Equal(t, temporalpattern.PatternTypeActivityBurst, burst.PatternType)
	assert.Equal(t, "octocat", burst.ActorLogin)
	assert.Equal(t, 12, burst.EventCount)

	// Empty pattern slices are a no-op, not an error.
	require.NoError(t, svc.PersistPatterns(ctx, ev, nil))
}

func TestCleanupAnomaliesAndPatterns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)
	ctx := context.Background()

	old := testReport("evt-old", models.SeverityLow)
	old.DetectionTimestamp = time.Now().UTC().Add(-40 * 24 * time.Hour)
	require.NoError(t, svc.PersistReport(ctx, old))
	require.NoError(t, svc.PersistReport(ctx, testReport("evt-new", models.SeverityLow)))

	err := client.TemporalPattern.Create().
		SetPatternType(temporalpattern.PatternTypeActivityBurst).
		SetEventID("evt-old").
		SetRepoName("octo-org/widgets").
		SetSeverity(0.5).
		SetEventCount(6).
		SetWindowStart(time.Now().UTC().Add(-40 * 24 * time.Hour)).
		SetWindowEnd(time.Now().UTC().Add(-40 * 24 * time.Hour)).
		SetDetectedAt(time.Now().UTC().Add(-40 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)

	deleted, err := svc.CleanupAnomalies(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	deleted, err = svc.CleanupPatterns(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := client.AnomalyRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
