package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-game-pricer/internal/config"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/mocks"
	"github.com/feral-file/ff-game-pricer/internal/ratelimit"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testProxyMocks contains all the mocks needed for testing the proxy
type testProxyMocks struct {
	ctrl  *gomock.Controller
	redis *mocks.MockRedisLimiter
	clock *mocks.MockClock
}

// setupTestProxy creates all the mocks for testing
func setupTestProxy(t *testing.T) *testProxyMocks {
	ctrl := gomock.NewController(t)

	return &testProxyMocks{
		ctrl:  ctrl,
		redis: mocks.NewMockRedisLimiter(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
}

// tearDownTestProxy cleans up the test mocks
func tearDownTestProxy(mocks *testProxyMocks) {
	mocks.ctrl.Finish()
}

func testConfig() config.RateLimiterConfig {
	return config.RateLimiterConfig{
		RedisKeyPrefix: "test:limiter:",
		RedisReprobe:   time.Minute,
		Providers: map[string]config.RateLimitConfig{
			"test-provider": {
				RequestsPerSecond: 100,
				Burst:             100,
				MaxQueueTime:      time.Second,
			},
		},
	}
}

func closedTimeChan() <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func TestNewProxy_NoProviders(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	_, err := ratelimit.NewProxy(config.RateLimiterConfig{}, nil, mocks.clock)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least one provider")
}

func TestNewProxy_InvalidRate(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	cfg := config.RateLimiterConfig{
		Providers: map[string]config.RateLimitConfig{
			"test-provider": {RequestsPerSecond: 0},
		},
	}

	_, err := ratelimit.NewProxy(cfg, nil, mocks.clock)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requests_per_second must be positive")
}

func TestRequest_LocalOnly(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	proxy, err := ratelimit.NewProxy(testConfig(), nil, mocks.clock)
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	result, err := ratelimit.Request(context.Background(), proxy, "test-provider", func(ctx context.Context) (string, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestRequest_PropagatesError(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	proxy, err := ratelimit.NewProxy(testConfig(), nil, mocks.clock)
	require.NoError(t, err)

	upstreamErr := errors.New("upstream failed")
	_, err = ratelimit.Request(context.Background(), proxy, "test-provider", func(ctx context.Context) (int, error) {
		return 0, upstreamErr
	})
	assert.ErrorIs(t, err, upstreamErr)
}

func TestRequest_UnknownProvider(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	proxy, err := ratelimit.NewProxy(testConfig(), nil, mocks.clock)
	require.NoError(t, err)

	called := false
	_, err = proxy.Request(context.Background(), "other", func(ctx context.Context) (interface{}, error) {
		called = true
		return nil, nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
	assert.False(t, called)
}

func TestRequest_NilProxyCallsThrough(t *testing.T) {
	result, err := ratelimit.Request(context.Background(), nil, "test-provider", func(ctx context.Context) (int, error) {
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestRequest_LocalQueueTimeout(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	cfg := config.RateLimiterConfig{
		Providers: map[string]config.RateLimitConfig{
			"slow": {
				RequestsPerSecond: 1,
				Burst:             1,
				MaxQueueTime:      10 * time.Millisecond,
			},
		},
	}
	proxy, err := ratelimit.NewProxy(cfg, nil, mocks.clock)
	require.NoError(t, err)

	fn := func(ctx context.Context) (interface{}, error) { return nil, nil }

	_, err = proxy.Request(context.Background(), "slow", fn)
	require.NoError(t, err)

	// The bucket is empty and refills after a second, past the queue budget
	_, err = proxy.Request(context.Background(), "slow", fn)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to acquire rate limit token")
}

func TestRequest_RedisAllowed(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	mocks.redis.EXPECT().Ping(gomock.Any()).Return(nil)
	mocks.redis.EXPECT().
		Allow(gomock.Any(), "test:limiter:test-provider", redis_rate.Limit{Rate: 100, Burst: 100, Period: time.Second}).
		Return(&redis_rate.Result{Allowed: 1, Remaining: 99}, nil)

	proxy, err := ratelimit.NewProxy(testConfig(), mocks.redis, mocks.clock)
	require.NoError(t, err)

	result, err := ratelimit.Request(context.Background(), proxy, "test-provider", func(ctx context.Context) (string, error) {
		return "distributed", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "distributed", result)
}

func TestRequest_RedisDeniedThenAllowed(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	mocks.redis.EXPECT().Ping(gomock.Any()).Return(nil)
	gomock.InOrder(
		mocks.redis.EXPECT().
			Allow(gomock.Any(), "test:limiter:test-provider", gomock.Any()).
			Return(&redis_rate.Result{Allowed: 0, RetryAfter: 200 * time.Millisecond}, nil),
		mocks.redis.EXPECT().
			Allow(gomock.Any(), "test:limiter:test-provider", gomock.Any()).
			Return(&redis_rate.Result{Allowed: 1}, nil),
	)
	mocks.clock.EXPECT().
		After(gomock.Any()).
		DoAndReturn(func(d time.Duration) <-chan time.Time {
			assert.GreaterOrEqual(t, d, 100*time.Millisecond)
			assert.LessOrEqual(t, d, 300*time.Millisecond)
			return closedTimeChan()
		})

	proxy, err := ratelimit.NewProxy(testConfig(), mocks.redis, mocks.clock)
	require.NoError(t, err)

	_, err = proxy.Request(context.Background(), "test-provider", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.NoError(t, err)
}

func TestRequest_RedisErrorFallsBackToLocal(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mocks.redis.EXPECT().Ping(gomock.Any()).Return(nil)
	mocks.redis.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset")).
		Times(1)
	mocks.clock.EXPECT().Now().Return(now)
	// Every later request checks whether the reprobe interval has passed
	mocks.clock.EXPECT().Since(now).Return(time.Second).Times(2)

	proxy, err := ratelimit.NewProxy(testConfig(), mocks.redis, mocks.clock)
	require.NoError(t, err)

	fn := func(ctx context.Context) (interface{}, error) { return "local", nil }

	result, err := proxy.Request(context.Background(), "test-provider", fn)
	assert.NoError(t, err)
	assert.Equal(t, "local", result)

	result, err = proxy.Request(context.Background(), "test-provider", fn)
	assert.NoError(t, err)
	assert.Equal(t, "local", result)
}

func TestRequest_RedisReprobedAfterInterval(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mocks.redis.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	mocks.clock.EXPECT().Now().Return(now)
	mocks.clock.EXPECT().Since(now).Return(2 * time.Minute)
	mocks.redis.EXPECT().
		Allow(gomock.Any(), "test:limiter:test-provider", gomock.Any()).
		Return(&redis_rate.Result{Allowed: 1}, nil)

	proxy, err := ratelimit.NewProxy(testConfig(), mocks.redis, mocks.clock)
	require.NoError(t, err)

	_, err = proxy.Request(context.Background(), "test-provider", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.NoError(t, err)
}

func TestClose(t *testing.T) {
	mocks := setupTestProxy(t)
	defer tearDownTestProxy(mocks)

	mocks.redis.EXPECT().Ping(gomock.Any()).Return(nil)
	mocks.redis.EXPECT().Close().Return(nil).Times(1)

	proxy, err := ratelimit.NewProxy(testConfig(), mocks.redis, mocks.clock)
	require.NoError(t, err)

	assert.NoError(t, proxy.Close())
	// Closing twice is a no-op
	assert.NoError(t, proxy.Close())

	_, err = proxy.Request(context.Background(), "test-provider", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, ratelimit.ErrProxyClosed)
}
