package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/pkg/models"
	testdb "github.com/forgewatch/forgewatch/test/database"
)

func testEvent(id string) models.Event {
	return models.Event{
		ID:         id,
		Type:       models.TypePush,
		Actor:      models.Actor{ID: 1, Login: "octocat"},
		Repository: models.Repository{ID: 7, FullName: "octo-org/widgets"},
		Timestamp:  time.Now().UTC().Truncate(time.Millisecond),
		Priority:   models.PriorityHigh,
	}
}

func TestInsertEventIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	inserted, err := svc.InsertEvent(ctx, testEvent("evt-1"))
	require.NoError(t, err)
	assert.True(t, inserted)

	// Redelivered page: same id must not error or duplicate.
	inserted, err = svc.InsertEvent(ctx, testEvent("evt-1"))
	require.NoError(t, err)
	assert.False(t, inserted)

	depth, err := svc.PendingDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}

func TestPendingDepthCountsOnlyPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.InsertEvent(ctx, testEvent(fmt.Sprintf("evt-%d", i)))
		require.NoError(t, err)
	}
	_, err := client.GitHubEvent.Update().
		Where(githubevent.ID("evt-0")).
		SetStatus(githubevent.StatusProcessed).
		Save(ctx)
	require.NoError(t, err)

	depth, err := svc.PendingDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
}

func seedStreamEvent(t *testing.T, client *ent.Client, channel string, seq int) int {
	t.Helper()
	payload, _ := json.Marshal(map[string]any{"type": "anomaly.detected", "seq": seq})
	evt, err := client.StreamEvent.Create().
		SetChannel(channel).
		SetPayload(payload).
		Save(context.Background())
	require.NoError(t, err)
	return evt.ID
}

func TestGetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	var ids []int
	for i := 1; i <= 5; i++ {
		ids = append(ids, seedStreamEvent(t, client.Client, "anomalies", i))
	}
	seedStreamEvent(t, client.Client, "processing_stats", 99) // other channel

	events, err := svc.GetEventsSince(ctx, "anomalies", ids[1], 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	// Oldest first, only rows after the cursor.
	assert.Equal(t, ids[2], events[0].ID)
	assert.Equal(t, ids[4], events[2].ID)

	// Limit caps the page.
	events, err = svc.GetEventsSince(ctx, "anomalies", 0, 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestCleanupProcessedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	for i, status := range []githubevent.Status{
		githubevent.StatusProcessed,
		githubevent.StatusFailed,
		githubevent.StatusPending,
	} {
		err := client.GitHubEvent.Create().
			SetID(fmt.Sprintf("old-%d", i)).
			SetEventType(models.TypePush).
			SetActorLogin("octocat").
			SetActorID(1).
			SetRepoName("octo-org/widgets").
			SetRepoID(7).
			SetEventCreatedAt(old).
			SetPriority(githubevent.PriorityHigh).
			SetStatus(status).
			SetCreatedAt(old).
			Exec(ctx)
		require.NoError(t, err)
	}
	_, err := svc.InsertEvent(ctx, testEvent("fresh"))
	require.NoError(t, err)

	deleted, err := svc.CleanupProcessedEvents(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, deleted, "terminal rows past the cutoff are deleted")

	// Pending rows survive regardless of age.
	remaining, err := client.GitHubEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
}

func TestCleanupStreamEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	payload, _ := json.Marshal(map[string]any{"type": "anomaly.detected"})
	err := client.StreamEvent.Create().
		SetChannel("anomalies").
		SetPayload(payload).
		SetCreatedAt(time.Now().UTC().Add(-72 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)
	seedStreamEvent(t, client.Client, "anomalies", 1)

	deleted, err := svc.CleanupStreamEvents(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := client.StreamEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
