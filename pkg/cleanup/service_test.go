package cleanup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/ent/temporalpattern"
	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/models"
	"github.com/forgewatch/forgewatch/pkg/profile"
	"github.com/forgewatch/forgewatch/pkg/services"
	testdb "github.com/forgewatch/forgewatch/test/database"
)

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		ProcessedEventTTL:    24 * time.Hour,
		AnomalyRetentionDays: 90,
		StreamEventTTL:       time.Hour,
		ProfileTTL:           30 * 24 * time.Hour,
		CleanupInterval:      time.Hour,
	}
}

func setupService(t *testing.T) (*ent.Client, *Service, *profile.Store) {
	t.Helper()
	client := testdb.NewTestClient(t)
	profiles, err := profile.NewStore(client.Client, config.DefaultDetectionConfig())
	require.NoError(t, err)

	svc := NewService(
		testRetentionConfig(),
		services.NewEventService(client.Client),
		services.NewAnomalyService(client.Client),
		profiles,
	)
	return client.Client, svc, profiles
}

func seedQueueEvent(t *testing.T, client *ent.Client, id string, status githubevent.Status, age time.Duration) {
	t.Helper()
	err := client.GitHubEvent.Create().
		SetID(id).
		SetEventType(models.TypePush).
		SetActorLogin("octocat").
		SetActorID(1).
		SetRepoName("octo-org/widgets").
		SetRepoID(100).
		SetEventCreatedAt(time.Now().UTC().Add(-age)).
		SetStatus(status).
		SetCreatedAt(time.Now().UTC().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestRunAllRemovesExpiredRows(t *testing.T) {
	client, svc, _ := setupService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	seedQueueEvent(t, client, "evt-old-processed", githubevent.StatusProcessed, 48*time.Hour)
	seedQueueEvent(t, client, "evt-old-failed", githubevent.StatusFailed, 48*time.Hour)
	seedQueueEvent(t, client, "evt-old-pending", githubevent.StatusPending, 48*time.Hour)
	seedQueueEvent(t, client, "evt-fresh-processed", githubevent.StatusProcessed, time.Minute)

	err := client.StreamEvent.Create().
		SetChannel("anomalies").
		SetPayload(json.RawMessage(`{}`)).
		SetCreatedAt(now.Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)
	err = client.StreamEvent.Create().
		SetChannel("anomalies").
		SetPayload(json.RawMessage(`{}`)).
		SetCreatedAt(now.Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	ids, err := client.GitHubEvent.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"evt-old-pending", "evt-fresh-processed"}, ids)

	streams, err := client.StreamEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, streams)
}

func TestRunAllRemovesOldAnomalies(t *testing.T) {
	client, svc, _ := setupService(t)
	ctx := context.Background()
	now := time.Now().UTC()
	anomalies := services.NewAnomalyService(client)

	for i, age := range []time.Duration{100 * 24 * time.Hour, time.Hour} {
		report := &models.AnomalyReport{
			EventID:            "evt-" + string(rune('a'+i)),
			RepositoryName:     "octo-org/widgets",
			UserLogin:          "octocat",
			EventType:          models.TypePush,
			Timestamp:          now.Add(-age),
			FinalAnomalyScore:  0.7,
			SeverityLevel:      models.SeverityHigh,
			PrimaryMethod:      "content",
			DetectionTimestamp: now.Add(-age),
		}
		require.NoError(t, anomalies.PersistReport(ctx, report))
	}

	err := client.TemporalPattern.Create().
		SetPatternType(temporalpattern.PatternTypeActivityBurst).
		SetEventID("evt-a").
		SetRepoName("octo-org/widgets").
		SetActorLogin("octocat").
		SetSeverity(0.5).
		SetEventCount(7).
		SetWindowStart(now.Add(-100 * 24 * time.Hour)).
		SetWindowEnd(now.Add(-100 * 24 * time.Hour).Add(5 * time.Minute)).
		SetDetectedAt(now.Add(-100 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	count, err := client.AnomalyRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	patterns, err := client.TemporalPattern.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, patterns)
}

func TestRunAllRemovesStaleProfiles(t *testing.T) {
	client, svc, profiles := setupService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := profiles.UpsertUser(ctx, "dormant", []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, models.TypePush, now)
	require.NoError(t, err)
	_, err = profiles.UpsertUser(ctx, "active", []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, models.TypePush, now)
	require.NoError(t, err)

	err = client.UserProfile.UpdateOneID("dormant").
		SetLastUpdated(now.Add(-60 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = client.UserProfile.Get(ctx, "dormant")
	assert.True(t, ent.IsNotFound(err))
	_, err = client.UserProfile.Get(ctx, "active")
	assert.NoError(t, err)
}

func TestStartStop(t *testing.T) {
	_, svc, _ := setupService(t)

	svc.Start(context.Background())
	svc.Stop()
}
