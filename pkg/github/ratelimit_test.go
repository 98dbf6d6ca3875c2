package github

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRateLimiter(rdb, 3, 30*time.Minute), mr
}

func TestUpdateQuota(t *testing.T) {
	rl, _ := newTestLimiter(t)
	ctx := context.Background()

	reset := time.Unix(1773500000, 0).UTC()
	require.NoError(t, rl.UpdateQuota(ctx, Quota{Limit: 5000, Remaining: 4000, Reset: reset}))

	q, err := rl.Quota(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4000, q.Remaining)
	assert.Equal(t, reset, q.Reset)

	t.Run("lower remaining in same window wins", func(t *testing.T) {
		require.NoError(t, rl.UpdateQuota(ctx, Quota{Limit: 5000, Remaining: 3500, Reset: reset}))
		q, err := rl.Quota(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3500, q.Remaining)
	})

	t.Run("higher remaining in same window ignored", func(t *testing.T) {
		require.NoError(t, rl.UpdateQuota(ctx, Quota{Limit: 5000, Remaining: 4500, Reset: reset}))
		q, err := rl.Quota(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3500, q.Remaining)
	})

	t.Run("newer reset window replaces", func(t *testing.T) {
		newer := reset.Add(time.Hour)
		require.NoError(t, rl.UpdateQuota(ctx, Quota{Limit: 5000, Remaining: 5000, Reset: newer}))
		q, err := rl.Quota(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5000, q.Remaining)
		assert.Equal(t, newer, q.Reset)
	})

	t.Run("stale older window ignored", func(t *testing.T) {
		require.NoError(t, rl.UpdateQuota(ctx, Quota{Limit: 5000, Remaining: 1, Reset: reset}))
		q, err := rl.Quota(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5000, q.Remaining)
	})
}

func TestSleepFor(t *testing.T) {
	rl, _ := newTestLimiter(t)
	base := 15 * time.Second

	tests := []struct {
		remaining int
		expected  time.Duration
	}{
		{4000, base},
		{2000, 30 * time.Second},
		{700, 60 * time.Second},
		{400, 120 * time.Second},
		{100, 300 * time.Second},
	}
	for _, tt := range tests {
		got := rl.SleepFor(Quota{Limit: 5000, Remaining: tt.remaining}, base)
		assert.Equal(t, tt.expected, got, "remaining=%d", tt.remaining)
	}

	// Unknown quota polls at base cadence.
	assert.Equal(t, base, rl.SleepFor(Quota{}, base))
}

func TestCircuitBreaker(t *testing.T) {
	rl, _ := newTestLimiter(t)
	ctx := context.Background()

	open, err := rl.CircuitOpen(ctx)
	require.NoError(t, err)
	assert.False(t, open)

	// Two failures: below the threshold of 3.
	for i := 0; i < 2; i++ {
		tripped, err := rl.RecordFailure(ctx)
		require.NoError(t, err)
		assert.False(t, tripped)
	}

	// Success resets the count.
	require.NoError(t, rl.RecordSuccess(ctx))
	tripped, err := rl.RecordFailure(ctx)
	require.NoError(t, err)
	assert.False(t, tripped)

	// Threshold reached: circuit trips.
	for i := 0; i < 2; i++ {
		tripped, err = rl.RecordFailure(ctx)
		require.NoError(t, err)
	}
	assert.True(t, tripped)

	open, err = rl.CircuitOpen(ctx)
	require.NoError(t, err)
	assert.True(t, open)
}

func TestCircuitExpires(t *testing.T) {
	rl, mr := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := rl.RecordFailure(ctx)
		require.NoError(t, err)
	}
	open, err := rl.CircuitOpen(ctx)
	require.NoError(t, err)
	require.True(t, open)

	mr.FastForward(31 * time.Minute)

	open, err = rl.CircuitOpen(ctx)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestSlots(t *testing.T) {
	rl, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		ok, err := rl.AcquireSlot(ctx)
		require.NoError(t, err)
		assert.True(t, ok, "slot %d", i)
	}

	ok, err := rl.AcquireSlot(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "fifth slot must be refused")

	require.NoError(t, rl.ReleaseSlot(ctx))

	ok, err = rl.AcquireSlot(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "released slot is reusable")
}

func twoReplicaLimiters(t *testing.T) (*RateLimiter, *RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRateLimiter(rdb, 3, 30*time.Minute),
		NewRateLimiter(rdb, 3, 30*time.Minute), mr
}

func TestActivePollerRegistry(t *testing.T) {
	a, b, mr := twoReplicaLimiters(t)
	ctx := context.Background()

	n, err := a.ActivePollers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "an empty registry still counts the caller")

	require.NoError(t, a.Heartbeat(ctx))
	require.NoError(t, b.Heartbeat(ctx))

	n, err = a.ActivePollers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	t.Run("stale replicas drop out", func(t *testing.T) {
		mr.ZAdd(pollersKey, float64(time.Now().Add(-5*time.Minute).Unix()), "dead-replica")
		require.NoError(t, a.Heartbeat(ctx))

		n, err := a.ActivePollers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestTokenBucketSplitsQuota(t *testing.T) {
	a, b, _ := twoReplicaLimiters(t)
	ctx := context.Background()

	assert.True(t, a.TakeToken(), "unsized bucket never blocks")

	require.NoError(t, a.Heartbeat(ctx))
	require.NoError(t, b.Heartbeat(ctx))

	reset := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, a.UpdateQuota(ctx, Quota{Limit: 5000, Remaining: 10, Reset: reset}))

	// Two live replicas split the 10 remaining calls 5/5.
	for i := 0; i < 5; i++ {
		assert.True(t, a.TakeToken(), "token %d", i)
	}
	assert.False(t, a.TakeToken(), "share spent until the next snapshot")

	// The next snapshot resizes the bucket.
	require.NoError(t, a.UpdateQuota(ctx, Quota{Limit: 5000, Remaining: 6, Reset: reset}))
	assert.True(t, a.TakeToken())

	t.Run("rolled window lets the refresh through", func(t *testing.T) {
		require.NoError(t, a.UpdateQuota(ctx, Quota{Limit: 5000, Remaining: 0, Reset: time.Now().Add(-time.Second)}))
		assert.True(t, a.TakeToken())
	})
}
