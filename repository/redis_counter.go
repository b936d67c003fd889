package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindowCounter keeps window counters in Redis so that several service
// instances share one budget per client.
type RedisWindowCounter struct {
	client *redis.Client
	prefix string
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisWindowCounter(client *redis.Client, prefix string) *RedisWindowCounter {
	return &RedisWindowCounter{
		client: client,
		prefix: prefix,
	}
}

// Increment bumps the counter for the window that contains now. The key
// expires with its window.
func (r *RedisWindowCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	bucket := time.Now().UnixNano() / int64(window)
	k := fmt.Sprintf("%s:%s:%d", r.prefix, key, bucket)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis window increment: %w", err)
	}
	return incr.Val(), nil
}

// Ping checks connectivity.
func (r *RedisWindowCounter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisWindowCounter) Close() error {
	return r.client.Close()
}
