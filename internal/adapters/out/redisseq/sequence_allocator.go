// Package redisseq implements the daily sequence allocator on Redis.
// One counter key exists per calendar day; concurrent callers across all
// process instances observe strictly increasing values.
package redisseq

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix namespaces the daily counter keys.
	keyPrefix = "workorder:code:"

	// keyTTL keeps yesterday's counters from accumulating forever.
	// A day's counter is never read again after the day ends.
	keyTTL = 24 * time.Hour
)

// RedisSequenceAllocator implements SequenceAllocator using a Redis counter
// per day. The first caller of a day claims sequence 1 with an atomic SETNX;
// every later caller increments the counter with INCR. Both operations are
// atomic on the server, so no two callers ever receive the same value even
// when the first allocation of the day races.
type RedisSequenceAllocator struct {
	client *redis.Client
}

// NewRedisSequenceAllocator creates an allocator backed by the given client.
func NewRedisSequenceAllocator(client *redis.Client) *RedisSequenceAllocator {
	return &RedisSequenceAllocator{client: client}
}

// Next returns the next sequence number for the given date.
func (a *RedisSequenceAllocator) Next(ctx context.Context, date time.Time) (int64, error) {
	key := fmt.Sprintf("%s%s", keyPrefix, date.Format("20060102"))

	claimed, err := a.client.SetNX(ctx, key, 1, keyTTL).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to initialize sequence %s: %w", key, err)
	}
	if claimed {
		return 1, nil
	}

	seq, err := a.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence %s: %w", key, err)
	}

	return seq, nil
}
