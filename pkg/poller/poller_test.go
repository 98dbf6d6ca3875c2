package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/github"
	"github.com/forgewatch/forgewatch/pkg/models"
)

type fakeAPI struct {
	mu      sync.Mutex
	results []*github.PollResult
	errs    []error
	calls   int
	etags   []string
}

func (f *fakeAPI) ListPublicEvents(_ context.Context, etag string, _, _ int) (*github.PollResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	f.etags = append(f.etags, etag)
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.results) {
		return f.results[i], nil
	}
	return &github.PollResult{NotModified: true, ETag: etag}, nil
}

type fakeStore struct {
	mu       sync.Mutex
	inserted []models.Event
	existing map[string]bool
	fail     map[string]bool
	depth    int
}

func (f *fakeStore) InsertEvent(_ context.Context, ev models.Event) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[ev.ID] {
		delete(f.fail, ev.ID)
		return false, errors.New("insert failed")
	}
	if f.existing == nil {
		f.existing = map[string]bool{}
	}
	if f.existing[ev.ID] {
		return false, nil
	}
	f.existing[ev.ID] = true
	f.inserted = append(f.inserted, ev)
	return true, nil
}

func (f *fakeStore) PendingDepth(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.depth, nil
}

func (f *fakeStore) insertedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.inserted))
	for _, ev := range f.inserted {
		ids = append(ids, ev.ID)
	}
	return ids
}

func newTestPoller(t *testing.T, api *fakeAPI, store *fakeStore, cfg *config.PollerConfig) *Poller {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	dedup := NewDeduper(rdb, cfg.DedupTTL)
	limiter := github.NewRateLimiter(rdb, cfg.FailureThreshold, cfg.CircuitOpenTTL)
	return New(api, store, dedup, limiter, cfg)
}

func testCfg() *config.PollerConfig {
	cfg := config.DefaultPollerConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.SampleLowFraction = 1.0
	return cfg
}

func event(id, typ string) models.Event {
	return models.Event{
		ID:         id,
		Type:       typ,
		Actor:      models.Actor{ID: 1, Login: "octocat"},
		Repository: models.Repository{ID: 7, FullName: "octo-org/widgets"},
		Timestamp:  time.Now().UTC(),
		Priority:   models.PriorityFor(typ),
	}
}

func TestPollOnceIngests(t *testing.T) {
	api := &fakeAPI{results: []*github.PollResult{{
		Events: []models.Event{
			event("1", models.TypePush),
			event("2", models.TypeWatch),
		},
		ETag:  `"e1"`,
		Quota: github.Quota{Limit: 5000, Remaining: 4999, Reset: time.Now().Add(time.Hour)},
	}}}
	store := &fakeStore{}
	p := newTestPoller(t, api, store, testCfg())

	p.pollOnce(context.Background())

	assert.Equal(t, []string{"1", "2"}, store.insertedIDs())
	assert.Equal(t, `"e1"`, p.etag)
}

func TestPollOnceCatchesUpOnFullPage(t *testing.T) {
	cfg := testCfg()
	cfg.PerPage = 2
	cfg.MaxCatchupPages = 3
	api := &fakeAPI{results: []*github.PollResult{
		// Page 1 full of unseen events: the feed outran the cadence.
		{Events: []models.Event{event("1", models.TypePush), event("2", models.TypePush)}},
		// Page 2 overlaps page 1, which ends the catch-up walk.
		{Events: []models.Event{event("2", models.TypePush), event("3", models.TypePush)}},
	}}
	store := &fakeStore{}
	p := newTestPoller(t, api, store, cfg)

	p.pollOnce(context.Background())

	assert.Equal(t, []string{"1", "2", "3"}, store.insertedIDs())
	assert.Equal(t, 2, api.calls, "duplicate on page 2 must stop the walk")
}

func TestPollOnceSendsETag(t *testing.T) {
	api := &fakeAPI{results: []*github.PollResult{
		{ETag: `"e1"`, Events: []models.Event{event("1", models.TypePush)}},
		{ETag: `"e1"`, NotModified: true},
	}}
	store := &fakeStore{}
	p := newTestPoller(t, api, store, testCfg())

	ctx := context.Background()
	p.pollOnce(ctx)
	p.pollOnce(ctx)

	require.Len(t, api.etags, 2)
	assert.Equal(t, "", api.etags[0])
	assert.Equal(t, `"e1"`, api.etags[1])
	// Second poll was a 304: nothing new inserted.
	assert.Equal(t, []string{"1"}, store.insertedIDs())
}

func TestIngestDedup(t *testing.T) {
	store := &fakeStore{}
	p := newTestPoller(t, &fakeAPI{}, store, testCfg())
	ctx := context.Background()

	p.ingest(ctx, []models.Event{event("1", models.TypePush)})
	// Overlapping page re-delivers the same id.
	p.ingest(ctx, []models.Event{event("1", models.TypePush), event("2", models.TypePush)})

	assert.Equal(t, []string{"1", "2"}, store.insertedIDs())
}

func TestIngestRetriesAfterInsertFailure(t *testing.T) {
	store := &fakeStore{fail: map[string]bool{"1": true}}
	p := newTestPoller(t, &fakeAPI{}, store, testCfg())
	ctx := context.Background()

	p.ingest(ctx, []models.Event{event("1", models.TypePush)})
	assert.Empty(t, store.insertedIDs())

	// A failed insert must not leave the id stuck in the dedup cache:
	// the next overlapping page retries and lands it.
	p.ingest(ctx, []models.Event{event("1", models.TypePush)})
	assert.Equal(t, []string{"1"}, store.insertedIDs())
}

func TestIngestSamplesLowPriority(t *testing.T) {
	cfg := testCfg()
	cfg.SampleLowFraction = 0 // drop every low-priority event
	store := &fakeStore{}
	p := newTestPoller(t, &fakeAPI{}, store, cfg)

	p.ingest(context.Background(), []models.Event{
		event("1", models.TypeWatch),
		event("2", models.TypePush),
	})

	assert.Equal(t, []string{"2"}, store.insertedIDs())
}

func TestIngestBackpressureDropsLow(t *testing.T) {
	cfg := testCfg()
	cfg.MaxQueueDepth = 10
	store := &fakeStore{depth: 50}
	p := newTestPoller(t, &fakeAPI{}, store, cfg)

	// Low priority dropped outright under backpressure. High priority
	// waits for capacity; give it capacity immediately so the test
	// does not block.
	store.mu.Lock()
	store.depth = 50
	store.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		store.mu.Lock()
		store.depth = 0
		store.mu.Unlock()
	}()
	defer cancel()

	p.ingest(ctx, []models.Event{
		event("low-1", models.TypeWatch),
		event("high-1", models.TypePush),
	})

	assert.Equal(t, []string{"high-1"}, store.insertedIDs())
}

func TestIngestBackpressureDropsMediumAfterWait(t *testing.T) {
	cfg := testCfg()
	cfg.MaxQueueDepth = 10
	cfg.BackpressureWait = 20 * time.Millisecond
	store := &fakeStore{depth: 50} // never drains
	p := newTestPoller(t, &fakeAPI{}, store, cfg)

	p.ingest(context.Background(), []models.Event{
		event("med-1", models.TypeCreate),
	})

	assert.Empty(t, store.insertedIDs())
}

func TestPollOnceRateLimited(t *testing.T) {
	reset := time.Now().Add(90 * time.Second)
	api := &fakeAPI{errs: []error{&github.RateLimitError{Reset: reset}}}
	p := newTestPoller(t, api, &fakeStore{}, testCfg())

	delay := p.pollOnce(context.Background())

	// Delay is about the time until reset (±10% jitter).
	assert.Greater(t, delay, 60*time.Second)
	assert.Less(t, delay, 2*time.Minute)
}

func TestPollOnceUpstreamErrorsTripCircuit(t *testing.T) {
	cfg := testCfg()
	cfg.FailureThreshold = 3
	errs := make([]error, 3)
	for i := range errs {
		errs[i] = github.ErrUpstream
	}
	api := &fakeAPI{errs: errs}
	p := newTestPoller(t, api, &fakeStore{}, cfg)

	ctx := context.Background()
	p.pollOnce(ctx)
	p.pollOnce(ctx)
	p.pollOnce(ctx)

	open, err := p.limiter.CircuitOpen(ctx)
	require.NoError(t, err)
	assert.True(t, open)

	// With the circuit open, the next cycle skips the API entirely.
	calls := api.calls
	p.pollOnce(ctx)
	assert.Equal(t, calls, api.calls)
}

func TestRunStopsOnCancel(t *testing.T) {
	p := newTestPoller(t, &fakeAPI{}, &fakeStore{}, testCfg())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop after cancel")
	}
}

func TestDeduperTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	d := NewDeduper(rdb, 10*time.Minute)
	ctx := context.Background()

	seen, err := d.Seen(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = d.Seen(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, seen)

	mr.FastForward(11 * time.Minute)

	seen, err = d.Seen(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, seen, "expired ids are first sights again")
}
