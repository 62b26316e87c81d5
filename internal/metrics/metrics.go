package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
)

// Ownership counters, partitioned by chain id where it applies.

var (
	// Sweep
	SweepRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "sweep",
		Name:      "runs_total",
		Help:      "Total ownership sweeps",
	}, []string{"trigger"})

	SweepAssetsVerified = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "sweep",
		Name:      "assets_verified_total",
		Help:      "Total assets whose ownership check completed",
	}, []string{"chain"})

	SweepAssetsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "sweep",
		Name:      "assets_failed_total",
		Help:      "Total assets whose ownership check failed",
	}, []string{"chain", "reason"})

	SweepTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "sweep",
		Name:      "transitions_total",
		Help:      "Total ownership state transitions",
	}, []string{"chain", "transition"})

	SweepLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wallet_sync",
		Subsystem: "sweep",
		Name:      "duration_seconds",
		Help:      "Ownership sweep duration",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
	})

	// Sync
	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "sync",
		Name:      "runs_total",
		Help:      "Total wallet synchronizations by outcome",
	}, []string{"chain", "status"})

	SyncAssetsUpserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "sync",
		Name:      "assets_upserted_total",
		Help:      "Total owned assets written by wallet synchronization",
	}, []string{"chain"})

	SyncDispatchDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "sync",
		Name:      "dispatch_dropped_total",
		Help:      "Total synchronizations that could not be dispatched",
	})

	// Royalty
	RoyaltyReconciled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "royalty",
		Name:      "reconciled_total",
		Help:      "Total royalty records reconciled by action",
	}, []string{"action"})

	RoyaltyFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "royalty",
		Name:      "failed_total",
		Help:      "Total royalty reconciliations that failed",
	})

	// Chain gateway
	GatewayCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "gateway",
		Name:      "calls_total",
		Help:      "Total chain gateway calls by method and status",
	}, []string{"provider", "method", "status"})

	GatewayRateLimitWaits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "gateway",
		Name:      "rate_limit_waits_total",
		Help:      "Total requests delayed by the client side rate limiter",
	}, []string{"provider"})

	// Events
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_sync",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Total ownership events published by outcome",
	}, []string{"status"})
)

// Serve exposes /metrics on addr until ctx is done
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Metrics server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("Metrics server started", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
