package royalty

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/metrics"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
)

// Result aggregates one reconciliation pass
type Result struct {
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

// Total returns the number of pairs processed
func (r *Result) Total() int {
	return r.Created + r.Updated + r.Unchanged + r.Failed
}

// Reconciler keeps royalty payees aligned with the ownership state of bound assets
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/royalty_reconciler.go -package=mocks -mock_names=Reconciler=MockRoyaltyReconciler
type Reconciler interface {
	// ReconcileAll reconciles every (published publication, bound asset) pair
	ReconcileAll(ctx context.Context) (*Result, error)

	// ReconcileAsset reconciles the pairs bound to a single asset
	ReconcileAsset(ctx context.Context, assetID uint64) (*Result, error)
}

type reconciler struct {
	store store.Store
}

// NewReconciler creates a new royalty reconciler
func NewReconciler(st store.Store) Reconciler {
	return &reconciler{store: st}
}

// ReconcileAll reconciles every pair
func (r *reconciler) ReconcileAll(ctx context.Context) (*Result, error) {
	return r.reconcile(ctx, nil)
}

// ReconcileAsset reconciles the pairs of one asset
func (r *reconciler) ReconcileAsset(ctx context.Context, assetID uint64) (*Result, error) {
	return r.reconcile(ctx, &assetID)
}

func (r *reconciler) reconcile(ctx context.Context, assetID *uint64) (*Result, error) {
	targets, err := r.store.ListRoyaltyTargets(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list royalty targets: %w", err)
	}

	result := &Result{}
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		// Each pair is its own transaction; one failure never rolls back another
		res, err := r.store.ReconcileRoyalty(ctx, target.PublicationID, target.AssetID)
		if err != nil {
			result.Failed++
			metrics.RoyaltyFailed.Inc()
			logger.ErrorCtx(ctx, fmt.Errorf("failed to reconcile royalty: %w", err),
				zap.Uint64("publication_id", target.PublicationID),
				zap.Uint64("asset_id", target.AssetID))
			continue
		}

		metrics.RoyaltyReconciled.WithLabelValues(string(res.Action)).Inc()
		switch res.Action {
		case store.RoyaltyActionCreated:
			result.Created++
		case store.RoyaltyActionUpdated:
			result.Updated++
		default:
			result.Unchanged++
		}
	}

	if result.Created > 0 || result.Updated > 0 || result.Failed > 0 {
		fields := []zap.Field{
			zap.Int("created", result.Created),
			zap.Int("updated", result.Updated),
			zap.Int("unchanged", result.Unchanged),
			zap.Int("failed", result.Failed),
		}
		if assetID != nil {
			fields = append(fields, zap.Uint64("asset_id", *assetID))
		}
		logger.InfoCtx(ctx, "Royalties reconciled", fields...)
	}

	return result, nil
}
