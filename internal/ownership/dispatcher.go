package ownership

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/metrics"
)

var (
	// ErrQueueFull is returned when the sync queue cannot take another wallet
	ErrQueueFull = errors.New("sync queue is full")

	// ErrDispatcherClosed is returned when dispatching after Close
	ErrDispatcherClosed = errors.New("sync dispatcher is closed")
)

// Dispatcher schedules wallet synchronizations without blocking the caller
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// DispatchWalletSync enqueues a synchronization of the wallet.
	// It returns once the work is queued, never after it ran.
	DispatchWalletSync(ctx context.Context, walletID uint64) error

	// Close stops accepting work and waits for queued synchronizations
	Close()
}

// LocalDispatcherConfig holds configuration for the in-process dispatcher
type LocalDispatcherConfig struct {
	PoolSize  int
	QueueSize int
	// Timeout bounds a single synchronization, zero means unbounded
	Timeout time.Duration
}

type localDispatcher struct {
	synchronizer Synchronizer
	pool         pond.Pool
	timeout      time.Duration
	closed       atomic.Bool
}

// NewLocalDispatcher creates a dispatcher running synchronizations on a bounded worker pool
func NewLocalDispatcher(cfg LocalDispatcherConfig, synchronizer Synchronizer) Dispatcher {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 1
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = poolSize
	}

	return &localDispatcher{
		synchronizer: synchronizer,
		pool:         pond.NewPool(poolSize, pond.WithQueueSize(queueSize)),
		timeout:      cfg.Timeout,
	}
}

// DispatchWalletSync enqueues the synchronization on the pool
func (d *localDispatcher) DispatchWalletSync(ctx context.Context, walletID uint64) error {
	if d.closed.Load() {
		return ErrDispatcherClosed
	}

	// The sync outlives the request that triggered it
	taskCtx := context.WithoutCancel(ctx)

	_, ok := d.pool.TrySubmit(func() {
		d.run(taskCtx, walletID)
	})
	if !ok {
		metrics.SyncDispatchDropped.Inc()
		return fmt.Errorf("%w: wallet %d", ErrQueueFull, walletID)
	}

	logger.DebugCtx(ctx, "Wallet sync queued", zap.Uint64("wallet_id", walletID))
	return nil
}

// run executes a single synchronization, recovering panics so one bad wallet cannot kill a worker
func (d *localDispatcher) run(ctx context.Context, walletID uint64) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("wallet sync panicked: %v", r), zap.Uint64("wallet_id", walletID))
		}
	}()

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if _, err := d.synchronizer.SyncWallet(ctx, walletID); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("wallet sync failed: %w", err), zap.Uint64("wallet_id", walletID))
	}
}

// Close stops the pool after draining queued work
func (d *localDispatcher) Close() {
	if !d.closed.CompareAndSwap(false, true) {
		return
	}
	d.pool.StopAndWait()
}
