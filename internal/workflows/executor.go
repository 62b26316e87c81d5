package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/chain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ownership"
)

// Error types that stop Temporal from retrying an activity
const (
	ErrTypeWalletNotFound = "WalletNotFound"
	ErrTypePermanent      = "PermanentGatewayError"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_sync.go -package=mocks -mock_names=Executor=MockSyncExecutor
type Executor interface {
	// SyncWallet synchronizes the wallet's holdings into owned assets
	SyncWallet(ctx context.Context, walletID uint64) (*ownership.SyncResult, error)
}

// SyncHeartbeatTimeout is how long a sync activity may go without a heartbeat before Temporal retries it
const SyncHeartbeatTimeout = time.Minute

type executor struct {
	synchronizer      ownership.Synchronizer
	activity          adapter.Activity
	heartbeatInterval time.Duration
}

// NewExecutor creates a new activity executor. A non-positive heartbeatInterval
// heartbeats three times per SyncHeartbeatTimeout.
func NewExecutor(synchronizer ownership.Synchronizer, activity adapter.Activity, heartbeatInterval time.Duration) Executor {
	if heartbeatInterval <= 0 {
		heartbeatInterval = SyncHeartbeatTimeout / 3
	}
	return &executor{
		synchronizer:      synchronizer,
		activity:          activity,
		heartbeatInterval: heartbeatInterval,
	}
}

// keepAlive heartbeats until the returned stop func is called. stop waits for the last heartbeat.
func (e *executor) keepAlive(ctx context.Context, walletID uint64) (stop func()) {
	e.activity.RecordHeartbeat(ctx, walletID)

	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(e.heartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.activity.RecordHeartbeat(ctx, walletID)
			}
		}
	}()

	return func() {
		close(quit)
		<-done
	}
}

// SyncWallet runs one synchronization attempt
func (e *executor) SyncWallet(ctx context.Context, walletID uint64) (*ownership.SyncResult, error) {
	attempt := e.activity.GetAttempt(ctx)
	logger.InfoCtx(ctx, "Syncing wallet holdings",
		zap.Uint64("wallet_id", walletID),
		zap.Int32("attempt", attempt),
	)
	stop := e.keepAlive(ctx, walletID)
	result, err := e.synchronizer.SyncWallet(ctx, walletID)
	stop()
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWalletNotFound):
			// Disconnected before the sync ran
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeWalletNotFound, err)
		case chain.IsPermanent(err):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypePermanent, err)
		default:
			return nil, fmt.Errorf("failed to sync wallet %d: %w", walletID, err)
		}
	}

	return result, nil
}
