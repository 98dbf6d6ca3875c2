package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/config"
	testdb "github.com/forgewatch/forgewatch/test/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	s, err := NewStore(client.Client, config.DefaultDetectionConfig())
	require.NoError(t, err)
	return s
}

func sampleFeatures(eph float64) []float64 {
	x := make([]float64, FeatureDim)
	x[0] = eph
	return x
}

func TestUpsertUserPersistsAcrossRestart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ts := time.Now().UTC().Truncate(time.Second)

	_, err := s.UpsertUser(ctx, "octocat", sampleFeatures(4), "PushEvent", ts)
	require.NoError(t, err)

	// The second update lands on the existing row rather than erroring
	// on the primary key.
	u, err := s.UpsertUser(ctx, "octocat", sampleFeatures(6), "PushEvent", ts.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.SampleCount)

	// Reload through the database, not the cache.
	s.users.Purge()
	got, err := s.GetUser(ctx, "octocat")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.SampleCount)
	assert.InDeltaSlice(t, u.Mean, got.Mean, 1e-9)
	assert.Equal(t, u.EventTypeCounts, got.EventTypeCounts)
}

func TestTouchRepoPersistsAcrossRestart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ts := time.Now().UTC().Truncate(time.Second)

	_, err := s.TouchRepo(ctx, "octo-org/widgets", ts)
	require.NoError(t, err)

	r, err := s.TouchRepo(ctx, "octo-org/widgets", ts.Add(time.Minute))
	require.NoError(t, err)

	s.repos.Purge()
	got, err := s.GetRepo(ctx, "octo-org/widgets")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, r.EventsPerHour, got.EventsPerHour, 1e-9)
	assert.WithinDuration(t, ts, got.FirstSeen, time.Second)
}
