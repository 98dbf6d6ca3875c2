package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/pkg/config"
	testdb "github.com/forgewatch/forgewatch/test/database"
)

// recordingProcessor marks every event processed unless told otherwise.
type recordingProcessor struct {
	mu      sync.Mutex
	batches [][]string
	fail    map[string]bool
	skip    map[string]bool
}

func (p *recordingProcessor) Process(_ context.Context, batch []*ent.GitHubEvent) *BatchResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := &BatchResult{}
	ids := make([]string, 0, len(batch))
	for _, ev := range batch {
		ids = append(ids, ev.ID)
		switch {
		case p.fail[ev.ID]:
			result.Failed = append(result.Failed, ev.ID)
		case p.skip[ev.ID]:
			// Simulates an event cut off by the batch deadline.
		default:
			result.Processed = append(result.Processed, ev.ID)
		}
	}
	p.batches = append(p.batches, ids)
	return result
}

func (p *recordingProcessor) batchCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.batches)
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.BatchMaxWait = 0
	cfg.HeartbeatInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 100 * time.Millisecond
	cfg.OrphanThreshold = time.Second
	return cfg
}

// seedEvent gives every event its own actor so claims are only shaped
// by priority and arrival. Same-actor ordering has its own test.
func seedEvent(t *testing.T, client *ent.Client, id string, priority githubevent.Priority, createdAt time.Time) {
	t.Helper()
	seedEventForActor(t, client, id, "user-"+id, priority, createdAt)
}

func seedEventForActor(t *testing.T, client *ent.Client, id, actor string, priority githubevent.Priority, createdAt time.Time) {
	t.Helper()
	err := client.GitHubEvent.Create().
		SetID(id).
		SetEventType("PushEvent").
		SetActorLogin(actor).
		SetActorID(1).
		SetRepoName("octo-org/widgets").
		SetRepoID(7).
		SetEventCreatedAt(createdAt).
		SetPriority(priority).
		SetCreatedAt(createdAt).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestWorkerClaimsByPriorityThenArrival(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Minute)

	seedEvent(t, client.Client, "e-low", githubevent.PriorityLow, base)
	seedEvent(t, client.Client, "e-high-2", githubevent.PriorityHigh, base.Add(2*time.Second))
	seedEvent(t, client.Client, "e-high-1", githubevent.PriorityHigh, base.Add(time.Second))
	seedEvent(t, client.Client, "e-medium", githubevent.PriorityMedium, base.Add(3*time.Second))

	w := NewWorker("w-0", "pod-test", client.Client, testQueueConfig(), &recordingProcessor{})

	batch, err := w.claim(ctx, 10)
	require.NoError(t, err)
	require.Len(t, batch, 4)
	assert.Equal(t, []string{"e-high-1", "e-high-2", "e-medium", "e-low"}, eventIDs(batch))

	// Claimed rows are stamped and invisible to a second claim.
	for _, ev := range batch {
		got, err := client.GitHubEvent.Get(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, githubevent.StatusInProgress, got.Status)
		assert.Equal(t, "pod-test", got.PodID)
		assert.False(t, got.LastHeartbeatAt.IsZero())
	}
	again, err := w.claim(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestClaimHonorsActorOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Minute)

	seedEventForActor(t, client.Client, "a-1", "octocat", githubevent.PriorityLow, base)
	seedEventForActor(t, client.Client, "a-2", "octocat", githubevent.PriorityHigh, base.Add(time.Second))
	seedEventForActor(t, client.Client, "b-1", "hubber", githubevent.PriorityMedium, base.Add(2*time.Second))

	w := NewWorker("w-0", "pod-test", client.Client, testQueueConfig(), &recordingProcessor{})

	// An actor's later event stays unclaimable while an earlier one is
	// unfinished, even when it outranks it on priority.
	batch, err := w.claim(ctx, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a-1", "b-1"}, eventIDs(batch))

	// Still blocked while a-1 is in progress.
	batch, err = w.claim(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, batch)

	// A terminal status on a-1 unblocks a-2.
	require.NoError(t, client.GitHubEvent.UpdateOneID("a-1").
		SetStatus(githubevent.StatusProcessed).
		Exec(ctx))
	batch, err = w.claim(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-2"}, eventIDs(batch))
}

func TestWorkerPoolProcessesQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	base := time.Now().UTC().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		seedEvent(t, client.Client, fmt.Sprintf("e%d", i), githubevent.PriorityMedium, base.Add(time.Duration(i)*time.Second))
	}

	processor := &recordingProcessor{fail: map[string]bool{"e3": true}}
	pool := NewWorkerPool("pod-test", client.Client, testQueueConfig(), processor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		n, err := client.GitHubEvent.Query().
			Where(githubevent.StatusEQ(githubevent.StatusPending)).
			Count(context.Background())
		return err == nil && n == 0
	}, 10*time.Second, 50*time.Millisecond)

	processed, err := client.GitHubEvent.Query().
		Where(githubevent.StatusEQ(githubevent.StatusProcessed)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, processed)

	failed, err := client.GitHubEvent.Query().
		Where(githubevent.StatusEQ(githubevent.StatusFailed)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "e3", failed[0].ID)

	assert.GreaterOrEqual(t, processor.batchCount(), 1)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 1, health.TotalWorkers)
}

func TestWorkerRequeuesUnaccountedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Minute)
	seedEvent(t, client.Client, "done", githubevent.PriorityMedium, base)
	seedEvent(t, client.Client, "cutoff", githubevent.PriorityMedium, base.Add(time.Second))

	processor := &recordingProcessor{skip: map[string]bool{"cutoff": true}}
	w := NewWorker("w-0", "pod-test", client.Client, testQueueConfig(), processor)

	require.NoError(t, w.pollAndProcess(ctx))

	got, err := client.GitHubEvent.Get(ctx, "cutoff")
	require.NoError(t, err)
	assert.Equal(t, githubevent.StatusPending, got.Status)
	assert.Empty(t, got.PodID)

	got, err = client.GitHubEvent.Get(ctx, "done")
	require.NoError(t, err)
	assert.Equal(t, githubevent.StatusProcessed, got.Status)
}

func TestOrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stale := time.Now().UTC().Add(-10 * time.Minute)
	seedEvent(t, client.Client, "orphan", githubevent.PriorityHigh, stale)
	err := client.GitHubEvent.UpdateOneID("orphan").
		SetStatus(githubevent.StatusInProgress).
		SetPodID("dead-pod").
		SetClaimedAt(stale).
		SetLastHeartbeatAt(stale).
		Exec(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-test", client.Client, testQueueConfig(), &recordingProcessor{})
	require.NoError(t, pool.recoverOrphans(ctx))

	got, err := client.GitHubEvent.Get(ctx, "orphan")
	require.NoError(t, err)
	assert.Equal(t, githubevent.StatusPending, got.Status)
	assert.Empty(t, got.PodID)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seedEvent(t, client.Client, "mine", githubevent.PriorityHigh, now)
	seedEvent(t, client.Client, "theirs", githubevent.PriorityHigh, now)
	for id, pod := range map[string]string{"mine": "pod-test", "theirs": "other-pod"} {
		err := client.GitHubEvent.UpdateOneID(id).
			SetStatus(githubevent.StatusInProgress).
			SetPodID(pod).
			SetClaimedAt(now).
			SetLastHeartbeatAt(now).
			Exec(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "pod-test"))

	mine, err := client.GitHubEvent.Get(ctx, "mine")
	require.NoError(t, err)
	assert.Equal(t, githubevent.StatusPending, mine.Status)

	// Another pod's healthy claim is left alone.
	theirs, err := client.GitHubEvent.Get(ctx, "theirs")
	require.NoError(t, err)
	assert.Equal(t, githubevent.StatusInProgress, theirs.Status)
}
