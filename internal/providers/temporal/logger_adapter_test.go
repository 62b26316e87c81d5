package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/henrymaxel/platform-mvp-sub000/internal/providers/temporal"
)

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	adapter := temporal.NewZapLoggerAdapter(zap.New(core))

	adapter.Info("worker started", "TaskQueue", "wallet-sync", "WorkerID", 7)
	adapter.Warn("dangling", "Namespace")
	adapter.Error("bad key", 42, "value", "Attempt", 3)

	with, ok := adapter.(log.WithLogger)
	require.True(t, ok)
	with.With("WorkflowID", "wallet-sync-1").Debug("polling")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "worker started", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"TaskQueue": "wallet-sync", "WorkerID": int64(7)}, entries[0].ContextMap())

	assert.Equal(t, map[string]interface{}{"Namespace": nil}, entries[1].ContextMap())

	assert.Equal(t, map[string]interface{}{"Attempt": int64(3)}, entries[2].ContextMap())

	assert.Equal(t, zap.DebugLevel, entries[3].Level)
	assert.Equal(t, map[string]interface{}{"WorkflowID": "wallet-sync-1"}, entries[3].ContextMap())
}
