package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/api/middleware"
	"github.com/henrymaxel/platform-mvp-sub000/internal/api/rest"
	"github.com/henrymaxel/platform-mvp-sub000/internal/api/server"
	"github.com/henrymaxel/platform-mvp-sub000/internal/asset"
	"github.com/henrymaxel/platform-mvp-sub000/internal/config"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ownership"
	"github.com/henrymaxel/platform-mvp-sub000/internal/providers/alchemy"
	"github.com/henrymaxel/platform-mvp-sub000/internal/providers/jetstream"
	temporal "github.com/henrymaxel/platform-mvp-sub000/internal/providers/temporal"
	"github.com/henrymaxel/platform-mvp-sub000/internal/royalty"
	"github.com/henrymaxel/platform-mvp-sub000/internal/signature"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
	"github.com/henrymaxel/platform-mvp-sub000/internal/sweeper"
	"github.com/henrymaxel/platform-mvp-sub000/internal/wallet"
	"github.com/henrymaxel/platform-mvp-sub000/internal/workflows"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Level:           cfg.LogLevel,
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
	logger.InfoCtx(ctx, "Starting wallet ownership API")

	// Connect to database
	db, err := store.Open(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)
	dataStore := store.NewStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	gateway, err := alchemy.NewGateway(cfg.Alchemy, cfg.Ownership.SpamRegistryPath, fs, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize chain gateway", zap.Error(err))
	}

	synchronizer := ownership.NewSynchronizer(dataStore, gateway, clock, ownership.NewTrackedContracts(cfg.Ownership.TrackedContracts))

	// Post-connect synchronization runs either in process or on the temporal sync worker
	var dispatcher ownership.Dispatcher
	switch cfg.Sync.Dispatcher {
	case config.DispatcherTemporal:
		temporalClient, err := client.Dial(client.Options{
			HostPort:  cfg.Temporal.HostPort,
			Namespace: cfg.Temporal.Namespace,
			Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
		}
		defer temporalClient.Close()
		logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

		dispatcher = workflows.NewTemporalDispatcher(temporalClient, cfg.Temporal.SyncTaskQueue, cfg.Sync.Timeout)
	default:
		dispatcher = ownership.NewLocalDispatcher(ownership.LocalDispatcherConfig{
			PoolSize:  cfg.Sync.Worker.WorkerPoolSize,
			QueueSize: cfg.Sync.Worker.WorkerQueueSize,
			Timeout:   cfg.Sync.Timeout,
		}, synchronizer)
	}
	defer dispatcher.Close()
	logger.InfoCtx(ctx, "Initialized sync dispatcher", zap.String("dispatcher", cfg.Sync.Dispatcher))

	publisher, err := jetstream.Connect(ctx, cfg.NATS, "api-server", adapter.NewNatsJetStream())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	// The API only runs sweeps on demand; the sweeper program owns the schedule
	ownershipSweeper := sweeper.NewOwnershipSweeper(sweeper.Config{
		BatchSize:    cfg.OwnershipSweeper.BatchSize,
		PoolSize:     cfg.OwnershipSweeper.Worker.WorkerPoolSize,
		AssetTimeout: cfg.OwnershipSweeper.AssetTimeout,
	}, dataStore, gateway, royalty.NewReconciler(dataStore), publisher, clock)

	handler := rest.NewHandler(
		wallet.NewRegistry(dataStore, signature.NewVerifier(clock, cfg.Signature.MaxAge), dispatcher, clock),
		asset.NewService(dataStore, cfg.Subscription),
		ownershipSweeper,
		clock,
		cfg.OwnershipSweeper.TriggerTimeout,
	)

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			SweepSecret:  cfg.Auth.SweepSecret,
		},
	}, handler)

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
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("message", "Server forced to shutdown"))
	}

	logger.Info("API server stopped")
}
