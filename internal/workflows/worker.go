package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"
)

// WorkerSync defines the workflows run by the sync worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_sync.go -package=mocks -mock_names=WorkerSync=MockWorkerSync
type WorkerSync interface {
	// WalletSync synchronizes a connected wallet's holdings
	WalletSync(ctx workflow.Context, walletID uint64) error
}

type WorkerSyncConfig struct {
	// ActivityTimeout bounds a single synchronization attempt
	ActivityTimeout time.Duration
	// MaxAttempts is the maximum number of synchronization attempts, 0 means unlimited
	MaxAttempts int32
}

// workerSync is the concrete implementation of WorkerSync
type workerSync struct {
	config   WorkerSyncConfig
	executor Executor
}

// NewWorkerSync creates a new sync worker instance
func NewWorkerSync(executor Executor, config WorkerSyncConfig) WorkerSync {
	if config.ActivityTimeout <= 0 {
		config.ActivityTimeout = 2 * time.Minute
	}
	return &workerSync{
		config:   config,
		executor: executor,
	}
}
