// Package cache keeps hot destination rating stats in Redis so catalog and
// stats reads skip the aggregate query. The cache is advisory: every entry
// has a TTL and is dropped whenever the aggregate is rewritten.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

// RatingStats is the cached aggregate snapshot for one destination.
type RatingStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

// RatingCache is what services depend on. Services treat a nil cache as
// disabled, so Redis stays optional.
type RatingCache interface {
	Get(ctx context.Context, destinationID string) (*RatingStats, bool, error)
	Set(ctx context.Context, destinationID string, stats *RatingStats) error
	Invalidate(ctx context.Context, destinationID string) error
}

type RedisRatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ RatingCache = (*RedisRatingCache)(nil)

func NewRedisRatingCache(client *redis.Client, ttl time.Duration) *RedisRatingCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisRatingCache{client: client, ttl: ttl}
}

func ratingKey(destinationID string) string {
	return "rating:" + destinationID
}

func (c *RedisRatingCache) Get(ctx context.Context, destinationID string) (*RatingStats, bool, error) {
	raw, err := c.client.Get(ctx, ratingKey(destinationID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var stats RatingStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, false, err
	}
	return &stats, true, nil
}

func (c *RedisRatingCache) Set(ctx context.Context, destinationID string, stats *RatingStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ratingKey(destinationID), raw, c.ttl).Err()
}

func (c *RedisRatingCache) Invalidate(ctx context.Context, destinationID string) error {
	return c.client.Del(ctx, ratingKey(destinationID)).Err()
}
