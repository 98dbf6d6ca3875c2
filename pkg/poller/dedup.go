package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupKeyPrefix = "forgewatch:seen:"

// Deduper suppresses events already ingested by any poller replica.
// Event ids are remembered in Redis with a TTL; the upstream feed pages
// overlap between polls, so most polls re-deliver a tail of known ids.
type Deduper struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDeduper creates a deduper with the given id retention TTL.
func NewDeduper(rdb *redis.Client, ttl time.Duration) *Deduper {
	return &Deduper{rdb: rdb, ttl: ttl}
}

// Seen marks an event id as seen and reports whether it was already
// known. The check-and-mark is a single SETNX, so concurrent replicas
// cannot both claim first sight.
func (d *Deduper) Seen(ctx context.Context, eventID string) (bool, error) {
	set, err := d.rdb.SetNX(ctx, dedupKeyPrefix+eventID, 1, d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check for event %s: %w", eventID, err)
	}
	return !set, nil
}

// Forget releases an id previously marked by Seen. Called when
// persistence fails after the mark, so the next poll can retry the
// event instead of losing it for the full TTL.
func (d *Deduper) Forget(ctx context.Context, eventID string) error {
	if err := d.rdb.Del(ctx, dedupKeyPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("dedup release for event %s: %w", eventID, err)
	}
	return nil
}
