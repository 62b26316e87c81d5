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

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/config"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/metrics"
	"github.com/henrymaxel/platform-mvp-sub000/internal/providers/alchemy"
	"github.com/henrymaxel/platform-mvp-sub000/internal/providers/jetstream"
	"github.com/henrymaxel/platform-mvp-sub000/internal/royalty"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
	"github.com/henrymaxel/platform-mvp-sub000/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Level:           cfg.LogLevel,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := store.Open(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	dataStore := store.NewStore(db)

	gateway, err := alchemy.NewGateway(cfg.Alchemy, cfg.Ownership.SpamRegistryPath, adapter.NewFileSystem(), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize chain gateway", zap.Error(err))
	}

	publisher, err := jetstream.Connect(ctx, cfg.NATS, "sweeper", adapter.NewNatsJetStream())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	ownershipSweeper := sweeper.NewOwnershipSweeper(sweeper.Config{
		Schedule:     cfg.OwnershipSweeper.Schedule,
		RunOnStart:   cfg.OwnershipSweeper.RunOnStart,
		BatchSize:    cfg.OwnershipSweeper.BatchSize,
		PoolSize:     cfg.OwnershipSweeper.Worker.WorkerPoolSize,
		AssetTimeout: cfg.OwnershipSweeper.AssetTimeout,
	}, dataStore, gateway, royalty.NewReconciler(dataStore), publisher, adapter.NewClock())

	logger.InfoCtx(ctx, "Initialized ownership sweeper",
		zap.String("schedule", cfg.OwnershipSweeper.Schedule),
		zap.Bool("run_on_start", cfg.OwnershipSweeper.RunOnStart),
		zap.Int("batch_size", cfg.OwnershipSweeper.BatchSize),
		zap.Int("worker_pool_size", cfg.OwnershipSweeper.Worker.WorkerPoolSize),
	)

	errChan := make(chan error, 2)
	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.ListenAddr); err != nil {
				errChan <- err
			}
		}()
	}

	go func() {
		if err := ownershipSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	cancel()

	// In-flight sweeps get a bounded window to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := ownershipSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.Info("Sweeper stopped")
}
