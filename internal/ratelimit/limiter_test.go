package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrymaxel/platform-mvp-sub000/internal/mocks"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ratelimit"
)

func TestLimiter_Wait(t *testing.T) {
	t.Run("burst is granted immediately", func(t *testing.T) {
		l := ratelimit.NewLimiter("test", 1, 3)
		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, l.Wait(context.Background()))
		}
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("waits once the burst is spent", func(t *testing.T) {
		l := ratelimit.NewLimiter("test", 20, 1)
		require.NoError(t, l.Wait(context.Background()))

		start := time.Now()
		require.NoError(t, l.Wait(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("context cancellation while waiting", func(t *testing.T) {
		l := ratelimit.NewLimiter("test", 0.1, 1)
		require.NoError(t, l.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := l.Wait(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("non positive rate is unlimited", func(t *testing.T) {
		l := ratelimit.NewLimiter("test", 0, 0)
		for i := 0; i < 100; i++ {
			require.NoError(t, l.Wait(context.Background()))
		}
	})
}

func TestRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("runs fn after wait", func(t *testing.T) {
		l := mocks.NewMockRateLimiter(ctrl)
		l.EXPECT().Wait(gomock.Any()).Return(nil)

		got, err := ratelimit.Request(context.Background(), l, func(ctx context.Context) (int, error) {
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("wait error skips fn", func(t *testing.T) {
		l := mocks.NewMockRateLimiter(ctrl)
		l.EXPECT().Wait(gomock.Any()).Return(errors.New("canceled"))

		called := false
		_, err := ratelimit.Request(context.Background(), l, func(ctx context.Context) (string, error) {
			called = true
			return "", nil
		})
		assert.Error(t, err)
		assert.False(t, called)
	})
}
