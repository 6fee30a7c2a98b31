package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"queryhub.app/api/internal/model"
)

const trendingKey = "tags:trending"

// TrendingCache holds the computed trending-tag view. Only derived read
// views are cached; toggle state is never cached, every toggle reads the
// store.
type TrendingCache interface {
	Get(ctx context.Context) ([]model.TagStat, bool)
	Set(ctx context.Context, stats []model.TagStat)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) TrendingCache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context) ([]model.TagStat, bool) {
	raw, err := c.client.Get(ctx, trendingKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "trending cache read failed", "error", err)
		}
		return nil, false
	}

	var stats []model.TagStat
	if err := json.Unmarshal(raw, &stats); err != nil {
		slog.WarnContext(ctx, "trending cache entry corrupt", "error", err)
		return nil, false
	}
	return stats, true
}

func (c *redisCache) Set(ctx context.Context, stats []model.TagStat) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, trendingKey, raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "trending cache write failed", "error", err)
	}
}

// NewRedisClient parses a redis URL and verifies connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

type noopCache struct{}

// NewNoop returns a cache that never hits. Used when Redis is not
// configured; trending is then recomputed on every request.
func NewNoop() TrendingCache {
	return noopCache{}
}

func (noopCache) Get(context.Context) ([]model.TagStat, bool) { return nil, false }

func (noopCache) Set(context.Context, []model.TagStat) {}
