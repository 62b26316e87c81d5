package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/metrics"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ownership"
	"github.com/henrymaxel/platform-mvp-sub000/internal/providers/temporal"
)

// WalletSyncWorkflowType is the registered name of the WalletSync workflow
const WalletSyncWorkflowType = "WalletSync"

// WalletSyncWorkflowID returns the workflow id of a wallet's sync. A wallet has at most one running sync.
func WalletSyncWorkflowID(walletID uint64) string {
	return fmt.Sprintf("wallet-sync-%d", walletID)
}

type temporalDispatcher struct {
	starter   temporal.WorkflowStarter
	taskQueue string
	timeout   time.Duration
}

// NewTemporalDispatcher creates a dispatcher that starts a WalletSync workflow per request
func NewTemporalDispatcher(starter temporal.WorkflowStarter, taskQueue string, timeout time.Duration) ownership.Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	return &temporalDispatcher{
		starter:   starter,
		taskQueue: taskQueue,
		timeout:   timeout,
	}
}

// DispatchWalletSync starts the sync workflow, joining the running one if there is one
func (d *temporalDispatcher) DispatchWalletSync(ctx context.Context, walletID uint64) error {
	w := NewWorkerSync(nil, WorkerSyncConfig{})
	options := client.StartWorkflowOptions{
		ID:                       WalletSyncWorkflowID(walletID),
		TaskQueue:                d.taskQueue,
		WorkflowExecutionTimeout: d.timeout,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		WorkflowIDConflictPolicy: enums.WORKFLOW_ID_CONFLICT_POLICY_USE_EXISTING,
	}

	run, err := d.starter.ExecuteWorkflow(ctx, options, w.WalletSync, walletID)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			logger.InfoCtx(ctx, "Wallet sync already running", zap.Uint64("wallet_id", walletID))
			return nil
		}
		metrics.SyncDispatchDropped.Inc()
		return fmt.Errorf("failed to start wallet sync workflow: %w", err)
	}

	fields := []zap.Field{zap.Uint64("wallet_id", walletID)}
	if run != nil {
		fields = append(fields, zap.String("workflow_id", run.GetID()), zap.String("run_id", run.GetRunID()))
	}
	logger.InfoCtx(ctx, "Wallet sync workflow started", fields...)

	return nil
}

// Close is a no-op, the Temporal client is owned by the caller
func (d *temporalDispatcher) Close() {}
