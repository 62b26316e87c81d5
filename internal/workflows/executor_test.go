package workflows_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/henrymaxel/platform-mvp-sub000/internal/chain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/mocks"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ownership"
	"github.com/henrymaxel/platform-mvp-sub000/internal/workflows"
)

func TestExecutor_SyncWallet(t *testing.T) {
	_ = logger.Initialize(logger.Config{Debug: false})
	ctx := context.Background()

	tests := []struct {
		name        string
		syncErr     error
		wantErrType string
		wantRetry   bool
	}{
		{name: "success"},
		{
			name:        "wallet disconnected",
			syncErr:     fmt.Errorf("%w: 7", domain.ErrWalletNotFound),
			wantErrType: workflows.ErrTypeWalletNotFound,
		},
		{
			name:        "permanent gateway error",
			syncErr:     fmt.Errorf("failed to fetch owned tokens: %w", chain.Permanent(errors.New("401 unauthorized"))),
			wantErrType: workflows.ErrTypePermanent,
		},
		{
			name:      "transient gateway error",
			syncErr:   chain.Transient(errors.New("503")),
			wantRetry: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			synchronizer := mocks.NewMockSynchronizer(ctrl)
			activity := mocks.NewMockActivity(ctrl)
			executor := workflows.NewExecutor(synchronizer, activity, time.Hour)

			activity.EXPECT().GetAttempt(ctx).Return(int32(1))
			activity.EXPECT().RecordHeartbeat(ctx, uint64(7))

			if tt.syncErr == nil {
				synchronizer.EXPECT().SyncWallet(ctx, uint64(7)).Return(&ownership.SyncResult{WalletID: 7, Upserted: 2}, nil)
				result, err := executor.SyncWallet(ctx, 7)
				require.NoError(t, err)
				assert.Equal(t, 2, result.Upserted)
				return
			}

			synchronizer.EXPECT().SyncWallet(ctx, uint64(7)).Return(nil, tt.syncErr)
			_, err := executor.SyncWallet(ctx, 7)
			require.Error(t, err)

			var appErr *temporal.ApplicationError
			if tt.wantRetry {
				assert.False(t, errors.As(err, &appErr))
				assert.ErrorIs(t, err, tt.syncErr)
				return
			}
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantErrType, appErr.Type())
			assert.True(t, appErr.NonRetryable())
		})
	}
}

func TestExecutor_SyncWallet_HeartbeatsWhileSyncing(t *testing.T) {
	_ = logger.Initialize(logger.Config{Debug: false})
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	synchronizer := mocks.NewMockSynchronizer(ctrl)
	activity := mocks.NewMockActivity(ctrl)
	executor := workflows.NewExecutor(synchronizer, activity, 10*time.Millisecond)

	var heartbeats atomic.Int32
	activity.EXPECT().GetAttempt(ctx).Return(int32(1))
	activity.EXPECT().RecordHeartbeat(ctx, uint64(7)).
		Do(func(context.Context, ...interface{}) { heartbeats.Add(1) }).
		MinTimes(3)
	synchronizer.EXPECT().SyncWallet(ctx, uint64(7)).
		DoAndReturn(func(context.Context, uint64) (*ownership.SyncResult, error) {
			time.Sleep(200 * time.Millisecond)
			return &ownership.SyncResult{WalletID: 7}, nil
		})

	_, err := executor.SyncWallet(ctx, 7)
	require.NoError(t, err)

	// No heartbeat after the activity returned
	after := heartbeats.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, heartbeats.Load())
}
