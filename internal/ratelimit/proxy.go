package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-game-pricer/internal/adapter"
	"github.com/feral-file/ff-game-pricer/internal/config"
	"github.com/feral-file/ff-game-pricer/internal/logger"
)

// ErrProxyClosed is returned for requests submitted after Close
var ErrProxyClosed = errors.New("proxy is closed")

// RequestFunc is a function that performs the actual upstream request
type RequestFunc func(ctx context.Context) (interface{}, error)

// Proxy defines the interface for rate-limiting proxy
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request blocks until the provider budget allows a call, then runs fn
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close releases the Redis connection if one is used
	Close() error
}

// proxy is the concrete implementation of the rate-limiting proxy
type proxy struct {
	config    config.RateLimiterConfig
	limiters  map[string]*providerLimiter
	redis     adapter.RedisLimiter
	clock     adapter.Clock
	closed    atomic.Bool
	closeOnce sync.Once

	mu              sync.Mutex
	redisAvailable  bool
	redisDisabledAt time.Time
}

// providerLimiter holds the rate limiting state for a single provider
type providerLimiter struct {
	name         string
	config       config.RateLimitConfig
	localLimiter *rate.Limiter
}

// NewProxy creates a new rate-limiting proxy
// rl may be nil, in which case only the in-process limiter is used
func NewProxy(cfg config.RateLimiterConfig, rl adapter.RedisLimiter, clock adapter.Clock) (Proxy, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	limiters := make(map[string]*providerLimiter, len(cfg.Providers))
	for name, providerConfig := range cfg.Providers {
		limiters[name] = &providerLimiter{
			name:         name,
			config:       providerConfig,
			localLimiter: rate.NewLimiter(rate.Limit(providerConfig.RequestsPerSecond), providerConfig.Burst),
		}
	}

	p := &proxy{
		config:   cfg,
		limiters: limiters,
		redis:    rl,
		clock:    clock,
	}

	if rl != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rl.Ping(ctx); err != nil {
			logger.Warn("Redis unavailable, using local rate limiter", zap.Error(err))
			p.redisDisabledAt = clock.Now()
		} else {
			p.redisAvailable = true
		}
	}

	logger.Info("Rate limit proxy initialized",
		zap.Int("providers", len(cfg.Providers)),
		zap.Bool("distributed", p.redisAvailable),
	)

	return p, nil
}

// Request runs fn through the proxy and returns the result with type safety
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// Request acquires a token for the provider and executes fn
// Waiting is bounded by the provider's max queue time and by ctx
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, ErrProxyClosed
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not configured", providerName)
	}

	queueCtx, cancel := context.WithTimeout(ctx, limiter.config.MaxQueueTime)
	err := p.acquireToken(queueCtx, limiter)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire rate limit token for %s: %w", providerName, err)
	}

	return fn(ctx)
}

// acquireToken blocks until a token is available from Redis or the local limiter
func (p *proxy) acquireToken(ctx context.Context, limiter *providerLimiter) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !p.useRedis() {
			return limiter.localLimiter.Wait(ctx)
		}

		res, err := p.redis.Allow(ctx, p.config.RedisKeyPrefix+limiter.name, redis_rate.Limit{
			Rate:   limiter.config.RequestsPerSecond,
			Burst:  limiter.config.Burst,
			Period: time.Second,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.disableRedis(err, limiter.name)
			continue
		}

		if res.Allowed > 0 {
			return nil
		}

		// Spread retries over 50-150% of the advertised wait
		wait := time.Duration(float64(res.RetryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
		logger.Debug("Rate limit token unavailable, waiting",
			zap.String("provider", limiter.name),
			zap.Duration("retry_after", wait),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.clock.After(wait):
		}
	}
}

// useRedis reports whether the distributed limiter should be tried
// A disabled Redis is retried once the reprobe interval has passed
func (p *proxy) useRedis() bool {
	if p.redis == nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.redisAvailable && p.clock.Since(p.redisDisabledAt) >= p.config.RedisReprobe {
		p.redisAvailable = true
	}
	return p.redisAvailable
}

func (p *proxy) disableRedis(err error, provider string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.redisAvailable = false
	p.redisDisabledAt = p.clock.Now()
	logger.Warn("Redis rate limiter error, falling back to local",
		zap.String("provider", provider),
		zap.Error(err),
	)
}

// Close marks the proxy closed and releases the Redis connection
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		if p.redis != nil {
			if closeErr := p.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimiterConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	for name, provider := range cfg.Providers {
		if provider.RequestsPerSecond <= 0 {
			return fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}
		if provider.Burst <= 0 {
			provider.Burst = provider.RequestsPerSecond
		}
		if provider.MaxQueueTime <= 0 {
			provider.MaxQueueTime = time.Minute
		}
		cfg.Providers[name] = provider
	}

	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "ff:pricer:limiter:"
	}
	if cfg.RedisReprobe <= 0 {
		cfg.RedisReprobe = 30 * time.Second
	}

	return nil
}
