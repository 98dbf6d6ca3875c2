package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis keys for the shared rate-limit state. All pollers coordinate
// through these so replicas do not independently burn the quota.
const (
	quotaKey    = "forgewatch:ratelimit:quota"
	circuitKey  = "forgewatch:ratelimit:circuit"
	failuresKey = "forgewatch:ratelimit:failures"
	slotsKey    = "forgewatch:ratelimit:slots"
	pollersKey  = "forgewatch:ratelimit:pollers"
)

// A poller replica that has not heartbeated within this window no
// longer counts toward the quota split.
const pollerTTL = 90 * time.Second

// ErrCircuitOpen indicates the upstream circuit breaker is open and
// polling should pause.
var ErrCircuitOpen = errors.New("upstream circuit breaker open")

// RateLimiter coordinates the shared upstream quota across poller
// replicas through Redis: quota snapshots, a failure-count circuit
// breaker, and a concurrency slot semaphore.
type RateLimiter struct {
	rdb              *redis.Client
	instanceID       string
	failureThreshold int
	circuitTTL       time.Duration
	maxSlots         int64
	logger           *slog.Logger

	// Local token bucket, sized to this replica's share of the shared
	// quota on every snapshot. Guards against replicas collectively
	// overspending between snapshots.
	mu          sync.Mutex
	tokens      int
	bucketSized bool
	bucketReset time.Time
}

// NewRateLimiter creates a rate limiter on the given Redis client.
func NewRateLimiter(rdb *redis.Client, failureThreshold int, circuitTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:              rdb,
		instanceID:       uuid.New().String(),
		failureThreshold: failureThreshold,
		circuitTTL:       circuitTTL,
		maxSlots:         4,
		logger:           slog.Default(),
	}
}

// Heartbeat registers this replica in the shared poller registry. Each
// poll cycle refreshes the entry; entries older than pollerTTL are
// pruned so dead replicas stop diluting the per-poller budget.
func (r *RateLimiter) Heartbeat(ctx context.Context) error {
	now := time.Now()
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, pollersKey, redis.Z{Score: float64(now.Unix()), Member: r.instanceID})
		pipe.ZRemRangeByScore(ctx, pollersKey, "-inf", strconv.FormatInt(now.Add(-pollerTTL).Unix(), 10))
		pipe.Expire(ctx, pollersKey, 2*pollerTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("poller heartbeat: %w", err)
	}
	return nil
}

// ActivePollers counts the replicas with a live heartbeat. Always at
// least 1: this replica is calling.
func (r *RateLimiter) ActivePollers(ctx context.Context) (int, error) {
	cutoff := strconv.FormatInt(time.Now().Add(-pollerTTL).Unix(), 10)
	n, err := r.rdb.ZCount(ctx, pollersKey, cutoff, "+inf").Result()
	if err != nil {
		return 1, fmt.Errorf("count active pollers: %w", err)
	}
	if n < 1 {
		n = 1
	}
	return int(n), nil
}

// TakeToken consumes one request token from the local bucket. Before
// the first quota snapshot, and after the quota window has rolled over,
// requests are allowed through so the next snapshot can resize the
// bucket.
func (r *RateLimiter) TakeToken() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.bucketSized || time.Now().After(r.bucketReset) {
		return true
	}
	if r.tokens <= 0 {
		return false
	}
	r.tokens--
	return true
}

// resizeBucket splits the remaining quota evenly across the live
// replicas and makes the share this replica's token budget.
func (r *RateLimiter) resizeBucket(ctx context.Context, q Quota) {
	active, err := r.ActivePollers(ctx)
	if err != nil {
		r.logger.Warn("Failed to count active pollers, assuming one", "error", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = q.Remaining / active
	r.bucketSized = true
	r.bucketReset = q.Reset
}

// UpdateQuota records the latest quota snapshot. Writers race across
// replicas; the snapshot with the newest reset time wins, and within the
// same reset window the lowest remaining count wins.
func (r *RateLimiter) UpdateQuota(ctx context.Context, q Quota) error {
	err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.HGetAll(ctx, quotaKey).Result()
		if err != nil && err != redis.Nil {
			return err
		}

		if len(cur) > 0 {
			curReset, _ := strconv.ParseInt(cur["reset"], 10, 64)
			curRemaining, _ := strconv.Atoi(cur["remaining"])
			if curReset > q.Reset.Unix() {
				return nil // stale snapshot, keep the newer window
			}
			if curReset == q.Reset.Unix() && curRemaining <= q.Remaining {
				return nil // another replica already saw a lower count
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, quotaKey, map[string]any{
				"limit":     q.Limit,
				"remaining": q.Remaining,
				"reset":     q.Reset.Unix(),
			})
			pipe.Expire(ctx, quotaKey, 2*time.Hour)
			return nil
		})
		return err
	}, quotaKey)
	if err != nil {
		return fmt.Errorf("update quota: %w", err)
	}

	if q.Limit > 0 {
		r.resizeBucket(ctx, q)
	}
	return nil
}

// Quota returns the last recorded quota snapshot. A missing snapshot
// returns a zero Quota without error.
func (r *RateLimiter) Quota(ctx context.Context) (Quota, error) {
	cur, err := r.rdb.HGetAll(ctx, quotaKey).Result()
	if err != nil {
		return Quota{}, fmt.Errorf("read quota: %w", err)
	}
	if len(cur) == 0 {
		return Quota{}, nil
	}

	q := Quota{}
	q.Limit, _ = strconv.Atoi(cur["limit"])
	q.Remaining, _ = strconv.Atoi(cur["remaining"])
	if reset, err := strconv.ParseInt(cur["reset"], 10, 64); err == nil {
		q.Reset = time.Unix(reset, 0).UTC()
	}
	return q, nil
}

// SleepFor maps the remaining quota onto an adaptive poll delay: full
// quota polls at base cadence, a draining quota stretches the interval
// up to five minutes.
func (r *RateLimiter) SleepFor(q Quota, base time.Duration) time.Duration {
	if q.Limit == 0 {
		return base
	}
	frac := float64(q.Remaining) / float64(q.Limit)
	switch {
	case frac > 0.5:
		return base
	case frac > 0.25:
		return maxDuration(base, 30*time.Second)
	case frac > 0.10:
		return maxDuration(base, 60*time.Second)
	case frac > 0.05:
		return maxDuration(base, 120*time.Second)
	default:
		return maxDuration(base, 300*time.Second)
	}
}

// RecordFailure increments the consecutive upstream failure count and
// trips the circuit breaker at the threshold. Returns true if the
// circuit tripped on this call.
func (r *RateLimiter) RecordFailure(ctx context.Context) (bool, error) {
	n, err := r.rdb.Incr(ctx, failuresKey).Result()
	if err != nil {
		return false, fmt.Errorf("record failure: %w", err)
	}
	// Stale counts decay if nothing fails for a while.
	r.rdb.Expire(ctx, failuresKey, 10*time.Minute)

	if n < int64(r.failureThreshold) {
		return false, nil
	}

	set, err := r.rdb.SetNX(ctx, circuitKey, time.Now().UTC().Format(time.RFC3339), r.circuitTTL).Result()
	if err != nil {
		return false, fmt.Errorf("trip circuit: %w", err)
	}
	if set {
		r.logger.Warn("Upstream circuit breaker tripped",
			"failures", n,
			"open_for", r.circuitTTL)
	}
	return set, nil
}

// RecordSuccess resets the consecutive failure count.
func (r *RateLimiter) RecordSuccess(ctx context.Context) error {
	if err := r.rdb.Del(ctx, failuresKey).Err(); err != nil {
		return fmt.Errorf("reset failures: %w", err)
	}
	return nil
}

// CircuitOpen reports whether the circuit breaker is currently open.
func (r *RateLimiter) CircuitOpen(ctx context.Context) (bool, error) {
	n, err := r.rdb.Exists(ctx, circuitKey).Result()
	if err != nil {
		return false, fmt.Errorf("check circuit: %w", err)
	}
	return n > 0, nil
}

// AcquireSlot claims one of the bounded concurrent API call slots.
// Returns false when all slots are taken.
func (r *RateLimiter) AcquireSlot(ctx context.Context) (bool, error) {
	n, err := r.rdb.Incr(ctx, slotsKey).Result()
	if err != nil {
		return false, fmt.Errorf("acquire slot: %w", err)
	}
	// Safety net if a holder dies without releasing.
	r.rdb.Expire(ctx, slotsKey, 5*time.Minute)

	if n > r.maxSlots {
		if err := r.rdb.Decr(ctx, slotsKey).Err(); err != nil {
			return false, fmt.Errorf("release overflow slot: %w", err)
		}
		return false, nil
	}
	return true, nil
}

// ReleaseSlot returns a previously acquired slot.
func (r *RateLimiter) ReleaseSlot(ctx context.Context) error {
	n, err := r.rdb.Decr(ctx, slotsKey).Result()
	if err != nil {
		return fmt.Errorf("release slot: %w", err)
	}
	if n < 0 {
		// Unbalanced release, clamp rather than go negative.
		r.rdb.Set(ctx, slotsKey, 0, 5*time.Minute)
	}
	return nil
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
