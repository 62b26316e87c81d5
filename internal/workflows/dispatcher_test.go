package workflows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/mocks"
	"github.com/henrymaxel/platform-mvp-sub000/internal/workflows"
)

func TestTemporalDispatcher_DispatchWalletSync(t *testing.T) {
	_ = logger.Initialize(logger.Config{Debug: false})
	ctx := context.Background()

	t.Run("starts the workflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		starter := mocks.NewMockWorkflowStarter(ctrl)
		dispatcher := workflows.NewTemporalDispatcher(starter, "wallet-sync", time.Minute)

		starter.EXPECT().ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), uint64(5)).
			DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
				assert.Equal(t, "wallet-sync-5", options.ID)
				assert.Equal(t, "wallet-sync", options.TaskQueue)
				assert.Equal(t, time.Minute, options.WorkflowExecutionTimeout)
				assert.Equal(t, enums.WORKFLOW_ID_CONFLICT_POLICY_USE_EXISTING, options.WorkflowIDConflictPolicy)
				return nil, nil
			})

		require.NoError(t, dispatcher.DispatchWalletSync(ctx, 5))
		dispatcher.Close()
	})

	t.Run("already running counts as dispatched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		starter := mocks.NewMockWorkflowStarter(ctrl)
		dispatcher := workflows.NewTemporalDispatcher(starter, "wallet-sync", 0)

		starter.EXPECT().ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), uint64(5)).
			Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", "run-1"))

		require.NoError(t, dispatcher.DispatchWalletSync(ctx, 5))
	})

	t.Run("start failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		starter := mocks.NewMockWorkflowStarter(ctrl)
		dispatcher := workflows.NewTemporalDispatcher(starter, "wallet-sync", 0)

		starter.EXPECT().ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), uint64(5)).
			Return(nil, errors.New("frontend unavailable"))

		err := dispatcher.DispatchWalletSync(ctx, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start wallet sync workflow")
	})
}

func TestWalletSyncWorkflowID(t *testing.T) {
	assert.Equal(t, "wallet-sync-42", workflows.WalletSyncWorkflowID(42))
}
