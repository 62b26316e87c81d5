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
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/config"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ownership"
	"github.com/henrymaxel/platform-mvp-sub000/internal/providers/alchemy"
	temporal "github.com/henrymaxel/platform-mvp-sub000/internal/providers/temporal"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
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
	cfg, err := config.LoadSyncWorkerConfig(*configFile, *envPath)
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
			"service": "sync-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting sync worker")

	// Connect to database
	db, err := store.Open(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	logger.Info("Connected to database")
	dataStore := store.NewStore(db)

	gateway, err := alchemy.NewGateway(cfg.Alchemy, cfg.Ownership.SpamRegistryPath, adapter.NewFileSystem(), adapter.NewJSON())
	if err != nil {
		logger.Fatal("Failed to initialize chain gateway", zap.Error(err))
	}

	synchronizer := ownership.NewSynchronizer(dataStore, gateway, adapter.NewClock(), ownership.NewTrackedContracts(cfg.Ownership.TrackedContracts))

	// Initialize executor for activities
	executor := workflows.NewExecutor(synchronizer, adapter.NewActivity(), 0)

	// Connect to Temporal
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.Fatal("Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.Info("Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.SyncTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})
	logger.Info("Created Temporal worker", zap.String("taskQueue", cfg.Temporal.SyncTaskQueue))

	workerSync := workflows.NewWorkerSync(executor, workflows.WorkerSyncConfig{
		ActivityTimeout: cfg.Sync.Timeout,
		MaxAttempts:     cfg.Sync.MaxAttempts,
	})

	temporalWorker.RegisterWorkflow(workerSync.WalletSync)
	temporalWorker.RegisterActivity(executor.SyncWallet)
	logger.Info("Registered workflows and activities")

	err = temporalWorker.Start()
	if err != nil {
		logger.Fatal("Failed to start worker", zap.Error(err))
	}
	logger.Info("Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
