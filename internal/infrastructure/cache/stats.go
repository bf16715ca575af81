package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/waste3d/mindwell-api/internal/dashboard"

	"github.com/redis/go-redis/v9"
)

// StatsCache keeps the computed dashboard per user. Entries are keyed by a
// generation counter; Invalidate bumps it, so older entries are never read again
// and expire by TTL.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func generationKey(userID string) string {
	return "dashboard_stats_gen:" + userID
}

func statsKey(userID string, gen int64) string {
	return "dashboard_stats:" + userID + ":" + strconv.FormatInt(gen, 10)
}

// Generation returns 0 until the first invalidation.
func (c *StatsCache) Generation(ctx context.Context, userID string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get reports a miss as (nil, nil).
func (c *StatsCache) Get(ctx context.Context, userID string, gen int64) (*dashboard.Stats, error) {
	val, err := c.client.Get(ctx, statsKey(userID, gen)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats dashboard.Stats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, userID string, gen int64, stats dashboard.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(userID, gen), data, c.ttl).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Incr(ctx, generationKey(userID)).Err()
}
