package main

import (
	"context"
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
	"github.com/feral-file/ff-game-pricer/internal/api/server"
	"github.com/feral-file/ff-game-pricer/internal/catalog"
	"github.com/feral-file/ff-game-pricer/internal/collection"
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
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Canceled on shutdown, interrupts a running batch refresh
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting game pricer API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
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

	var redisLimiter adapter.RedisLimiter
	if cfg.RateLimiter.RedisAddr != "" {
		redisLimiter = adapter.NewRedisLimiter(cfg.RateLimiter.RedisAddr, cfg.RateLimiter.RedisPassword, cfg.RateLimiter.RedisDB)
	} else {
		logger.WarnCtx(ctx, "Redis not configured, catalog rate limit is per process")
	}
	proxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisLimiter, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	defer func() { _ = proxy.Close() }()

	catalogClient, err := catalog.NewClient(cfg.Catalog, httpClient, proxy, clock, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create catalog client", zap.Error(err))
	}

	writer := pricehistory.NewWriter(dataStore)
	service := collection.NewService(catalogClient, dataStore, writer, clock)

	// Batch refreshes triggered over HTTP run one at a time
	scheduler := refresher.NewScheduler(cfg.Refresher, dataStore, catalogClient, writer, clock)
	queue := refresher.NewQueue(ctx, scheduler, cfg.BatchQueueSize)

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	// Create and start server
	srv := server.New(serverConfig, service, queue)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	// Interrupt the running batch and drain the queue
	cancel()
	queue.Stop()

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
