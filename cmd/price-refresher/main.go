package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-game-pricer/internal/adapter"
	"github.com/feral-file/ff-game-pricer/internal/catalog"
	"github.com/feral-file/ff-game-pricer/internal/config"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/pricehistory"
	"github.com/feral-file/ff-game-pricer/internal/ratelimit"
	"github.com/feral-file/ff-game-pricer/internal/refresher"
	"github.com/feral-file/ff-game-pricer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	batchSize  = flag.Int("batch-size", 0, "Number of games to refresh, overrides refresher.batch_size")
	dryRun     = flag.Bool("dry-run", false, "List the games that would be refreshed without fetching prices")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadPriceRefresherConfig(*configFile, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Canceled on SIGINT/SIGTERM, the batch stops after the current game
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug || *verbose,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "price-refresher",
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(ctx, cancel, cfg))
}

// run wires the job and returns the process exit code
func run(ctx context.Context, cancel context.CancelFunc, cfg *config.PriceRefresherConfig) int {
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting price refresher")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to connect to database: %w", err))
		return 1
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to configure connection pool: %w", err))
		return 1
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Catalog.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()

	// Redis is optional, without it the budget is per process
	var redisLimiter adapter.RedisLimiter
	if cfg.RateLimiter.RedisAddr != "" {
		redisLimiter = adapter.NewRedisLimiter(cfg.RateLimiter.RedisAddr, cfg.RateLimiter.RedisPassword, cfg.RateLimiter.RedisDB)
	}
	proxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisLimiter, clock)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to create rate limiter: %w", err))
		return 1
	}
	defer func() { _ = proxy.Close() }()

	catalogClient, err := catalog.NewClient(cfg.Catalog, httpClient, proxy, clock, jsonAdapter)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to create catalog client: %w", err))
		return 1
	}

	scheduler := refresher.NewScheduler(cfg.Refresher, dataStore, catalogClient, pricehistory.NewWriter(dataStore), clock)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	var summary *refresher.Summary
	if *dryRun || cfg.Refresher.DryRun {
		summary, err = scheduler.DryRun(ctx, *batchSize)
	} else {
		summary, err = scheduler.BatchRefresh(ctx, *batchSize)
	}

	if summary != nil {
		fmt.Println(summary.String())
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(ctx, err)
		return 1
	}
	if summary == nil {
		return 1
	}
	return summary.ExitCode()
}
