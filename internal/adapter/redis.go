package adapter

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter defines the distributed rate limiting operations backed by Redis
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisLimiter=MockRedisLimiter
type RedisLimiter interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// Allow consumes one token from the GCRA bucket stored under key
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)

	// Close closes the Redis connection
	Close() error
}

// RealRedisLimiter wraps a go-redis client and a redis_rate limiter sharing it
type RealRedisLimiter struct {
	client  *redis.Client
	limiter *redis_rate.Limiter
}

// NewRedisLimiter connects lazily to the Redis server at addr
func NewRedisLimiter(addr, password string, db int) RedisLimiter {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RealRedisLimiter{
		client:  client,
		limiter: redis_rate.NewLimiter(client),
	}
}

func (r *RealRedisLimiter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RealRedisLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return r.limiter.Allow(ctx, key, limit)
}

func (r *RealRedisLimiter) Close() error {
	return r.client.Close()
}
