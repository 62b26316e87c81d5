package adapter

import (
	"context"

	"go.temporal.io/sdk/activity"
)

// Activity exposes the temporal activity context calls used by the sync executor
//
//go:generate mockgen -source=temporal.go -destination=../mocks/temporal.go -package=mocks -mock_names=Activity=MockActivity
type Activity interface {
	// GetAttempt returns the current attempt of the running activity, starting at 1
	GetAttempt(ctx context.Context) int32

	// RecordHeartbeat records a heartbeat for the running activity
	RecordHeartbeat(ctx context.Context, details ...interface{})
}

type sdkActivity struct{}

// NewActivity returns an Activity that must only be called inside a running activity
func NewActivity() Activity {
	return sdkActivity{}
}

func (sdkActivity) GetAttempt(ctx context.Context) int32 {
	return activity.GetInfo(ctx).Attempt
}

func (sdkActivity) RecordHeartbeat(ctx context.Context, details ...interface{}) {
	activity.RecordHeartbeat(ctx, details...)
}
