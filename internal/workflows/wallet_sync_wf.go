package workflows

import (
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ownership"
)

// WalletSync synchronizes a connected wallet's holdings
func (w *workerSync) WalletSync(ctx workflow.Context, walletID uint64) error {
	logger.InfoWf(ctx, "Starting wallet sync", zap.Uint64("wallet_id", walletID))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.ActivityTimeout,
		HeartbeatTimeout:    SyncHeartbeatTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        5 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        5 * time.Minute,
			MaximumAttempts:        w.config.MaxAttempts,
			NonRetryableErrorTypes: []string{ErrTypeWalletNotFound, ErrTypePermanent},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var result ownership.SyncResult
	err := workflow.ExecuteActivity(ctx, w.executor.SyncWallet, walletID).Get(ctx, &result)
	if err != nil {
		var appErr *temporal.ApplicationError
		if errors.As(err, &appErr) && appErr.Type() == ErrTypeWalletNotFound {
			logger.WarnWf(ctx, "Wallet disconnected before sync, skipping", zap.Uint64("wallet_id", walletID))
			return nil
		}

		logger.ErrorWf(ctx, fmt.Errorf("failed to sync wallet"),
			zap.Error(err),
			zap.Uint64("wallet_id", walletID),
		)
		return err
	}

	logger.InfoWf(ctx, "Wallet sync completed",
		zap.Uint64("wallet_id", walletID),
		zap.Int("discovered", result.Discovered),
		zap.Int("upserted", result.Upserted),
		zap.Int("failed", result.Failed),
	)

	return nil
}
