package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store/schema"
)

const (
	// maxUniqueRetries bounds retries of transactions that lost a race on a unique index
	maxUniqueRetries = 3

	defaultNotificationLimit = 50
)

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a new store instance backed by gorm (PostgreSQL or SQLite)
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) now() time.Time {
	return time.Now().UTC()
}

// lockForUpdate is ignored by dialects without row-level locking (sqlite)
func lockForUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// isUniqueViolation reports whether err is a unique constraint violation on any dialect
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "unique constraint failed")
}

// nullableUUID converts an optional uuid into a column value, untyped nil for NULL
func nullableUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

func sameUser(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// lockUserWallets locks every wallet row of the user and returns them oldest first.
// Holding these locks serializes wallet and binding mutations of a single user.
func lockUserWallets(tx *gorm.DB, userID uuid.UUID) ([]schema.Wallet, error) {
	var wallets []schema.Wallet
	err := tx.Clauses(lockForUpdate()).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock user wallets: %w", err)
	}
	return wallets, nil
}

// detachAssets clears royalty attribution and removes bindings of assets about to be deleted
func detachAssets(tx *gorm.DB, assetIDs []uint64, now time.Time) error {
	if len(assetIDs) == 0 {
		return nil
	}

	err := tx.Model(&schema.Royalty{}).
		Where("asset_id IN ?", assetIDs).
		Updates(map[string]interface{}{
			"asset_id":   nil,
			"user_id":    nil,
			"updated_at": now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to detach royalties: %w", err)
	}

	if err := tx.Where("owned_asset_id IN ?", assetIDs).Delete(&schema.AssetBinding{}).Error; err != nil {
		return fmt.Errorf("failed to delete asset bindings: %w", err)
	}

	return nil
}

// =============================================================================
// Wallets
// =============================================================================

// UpsertWallet inserts the wallet if absent, refreshing it otherwise
func (s *gormStore) UpsertWallet(ctx context.Context, input UpsertWalletInput) (*UpsertWalletResult, error) {
	var result *UpsertWalletResult
	var err error
	for attempt := 1; attempt <= maxUniqueRetries; attempt++ {
		result, err = s.upsertWallet(ctx, input)
		if !isUniqueViolation(err) {
			break
		}
		// A concurrent connect for the same user won the race, the next attempt sees its row
		logger.DebugCtx(ctx, "Retrying wallet upsert after unique violation",
			zap.String("user_id", input.UserID.String()),
			zap.String("address", input.Address),
			zap.Int("attempt", attempt))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert wallet: %w", err)
	}
	return result, nil
}

func (s *gormStore) upsertWallet(ctx context.Context, input UpsertWalletInput) (*UpsertWalletResult, error) {
	result := &UpsertWalletResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallets, err := lockUserWallets(tx, input.UserID)
		if err != nil {
			return err
		}

		now := s.now()
		hasPrimary := false
		for i := range wallets {
			w := &wallets[i]
			if w.IsPrimary {
				hasPrimary = true
			}
			if w.WalletAddress != input.Address || w.ChainID != input.ChainID {
				continue
			}

			err := tx.Model(&schema.Wallet{}).
				Where("id = ?", w.ID).
				Updates(map[string]interface{}{
					"wallet_type": input.WalletType,
					"updated_at":  now,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to refresh wallet: %w", err)
			}
			w.WalletType = input.WalletType
			w.UpdatedAt = now
			result.Wallet = w
			return nil
		}

		wallet := schema.Wallet{
			UserID:        input.UserID,
			WalletAddress: input.Address,
			ChainID:       input.ChainID,
			WalletType:    input.WalletType,
			IsPrimary:     !hasPrimary,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Create(&wallet).Error; err != nil {
			return err
		}
		result.Wallet = &wallet
		result.Created = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetWalletByID retrieves a wallet by id
func (s *gormStore) GetWalletByID(ctx context.Context, walletID uint64) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).Where("id = ?", walletID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// GetWalletForUser retrieves a wallet owned by the user
func (s *gormStore) GetWalletForUser(ctx context.Context, userID uuid.UUID, walletID uint64) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", walletID, userID).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// ListWalletsByUser lists the user's wallets ordered by creation
func (s *gormStore) ListWalletsByUser(ctx context.Context, userID uuid.UUID) ([]schema.Wallet, error) {
	var wallets []schema.Wallet
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

// DeleteWallet removes the wallet with its owned assets and re-promotes a primary wallet
func (s *gormStore) DeleteWallet(ctx context.Context, userID uuid.UUID, walletID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallets, err := lockUserWallets(tx, userID)
		if err != nil {
			return err
		}

		var target *schema.Wallet
		var successor *schema.Wallet
		for i := range wallets {
			if wallets[i].ID == walletID {
				target = &wallets[i]
			} else if successor == nil {
				successor = &wallets[i]
			}
		}
		if target == nil {
			return domain.ErrWalletNotFound
		}

		now := s.now()
		var assetIDs []uint64
		if err := tx.Model(&schema.OwnedAsset{}).Where("wallet_id = ?", walletID).Pluck("id", &assetIDs).Error; err != nil {
			return fmt.Errorf("failed to list wallet assets: %w", err)
		}
		if err := detachAssets(tx, assetIDs, now); err != nil {
			return err
		}
		if err := tx.Where("wallet_id = ?", walletID).Delete(&schema.OwnedAsset{}).Error; err != nil {
			return fmt.Errorf("failed to delete wallet assets: %w", err)
		}
		if err := tx.Where("id = ?", walletID).Delete(&schema.Wallet{}).Error; err != nil {
			return fmt.Errorf("failed to delete wallet: %w", err)
		}

		if target.IsPrimary && successor != nil {
			err := tx.Model(&schema.Wallet{}).
				Where("id = ?", successor.ID).
				Updates(map[string]interface{}{
					"is_primary": true,
					"updated_at": now,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to promote wallet: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	return nil
}

// SetPrimaryWallet clears the primary flag on all of the user's wallets and sets it on the target
func (s *gormStore) SetPrimaryWallet(ctx context.Context, userID uuid.UUID, walletID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallets, err := lockUserWallets(tx, userID)
		if err != nil {
			return err
		}

		found := false
		for _, w := range wallets {
			if w.ID == walletID {
				found = true
				if w.IsPrimary {
					return nil
				}
			}
		}
		if !found {
			return domain.ErrWalletNotFound
		}

		now := s.now()
		// Clear first so the partial unique index on primary wallets never sees two rows
		err = tx.Model(&schema.Wallet{}).
			Where("user_id = ? AND is_primary = ?", userID, true).
			Updates(map[string]interface{}{
				"is_primary": false,
				"updated_at": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to clear primary wallet: %w", err)
		}

		err = tx.Model(&schema.Wallet{}).
			Where("id = ?", walletID).
			Updates(map[string]interface{}{
				"is_primary": true,
				"updated_at": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to set primary wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return err
		}
		return fmt.Errorf("failed to set primary wallet: %w", err)
	}
	return nil
}

// =============================================================================
// Collections and owned assets
// =============================================================================

// GetCollection retrieves a collection by contract address and chain
func (s *gormStore) GetCollection(ctx context.Context, address string, chainID domain.ChainID) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).
		Where("address = ? AND chain_id = ?", address, chainID).
		First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// EnsureCollection creates the collection if absent and returns the stored row
func (s *gormStore) EnsureCollection(ctx context.Context, input EnsureCollectionInput) (*schema.Collection, error) {
	now := s.now()
	collection := schema.Collection{
		Address:          input.Address,
		ChainID:          input.ChainID,
		Name:             input.Name,
		TokenStandard:    input.TokenStandard,
		ContractMetadata: datatypes.NewJSONType(input.Metadata),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Use ON CONFLICT DO NOTHING to handle concurrent first sightings
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}, {Name: "chain_id"}},
			DoNothing: true,
		}).
		Create(&collection).Error
	if err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}

	stored, err := s.GetCollection(ctx, input.Address, input.ChainID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("collection %s on chain %d missing after insert", input.Address, input.ChainID)
	}
	return stored, nil
}

// UpdateCollectionMetadata replaces a collection's display data
func (s *gormStore) UpdateCollectionMetadata(ctx context.Context, collectionID uint64, input EnsureCollectionInput) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Collection{}).
		Where("id = ?", collectionID).
		Updates(map[string]interface{}{
			"name":              input.Name,
			"token_standard":    input.TokenStandard,
			"contract_metadata": datatypes.NewJSONType(input.Metadata),
			"updated_at":        s.now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update collection metadata: %w", err)
	}
	return nil
}

// UpsertOwnedAsset inserts or refreshes the asset keyed by (user, collection, token id).
// The ownership_lost flag is owned by the verification sweep and is left untouched.
func (s *gormStore) UpsertOwnedAsset(ctx context.Context, input UpsertOwnedAssetInput) (*schema.OwnedAsset, error) {
	now := s.now()
	asset := schema.OwnedAsset{
		UserID:         input.UserID,
		CollectionID:   input.CollectionID,
		WalletID:       input.WalletID,
		TokenID:        input.TokenID,
		TokenMetadata:  datatypes.NewJSONType(input.Metadata),
		LastVerifiedAt: input.VerifiedAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "collection_id"}, {Name: "token_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"wallet_id",
				"token_metadata",
				"last_verified_at",
				"updated_at",
			}),
		}).
		Create(&asset).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert owned asset: %w", err)
	}

	var stored schema.OwnedAsset
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND collection_id = ? AND token_id = ?", input.UserID, input.CollectionID, input.TokenID).
		First(&stored).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load owned asset: %w", err)
	}
	return &stored, nil
}

// GetOwnedAssetForUser retrieves an owned asset owned by the user
func (s *gormStore) GetOwnedAssetForUser(ctx context.Context, userID uuid.UUID, assetID uint64) (*schema.OwnedAsset, error) {
	var asset schema.OwnedAsset
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", assetID, userID).
		First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owned asset: %w", err)
	}
	return &asset, nil
}

const ownedAssetViewColumns = `owned_assets.id, owned_assets.user_id, owned_assets.wallet_id,
	wallets.wallet_address, nft_collections.chain_id, owned_assets.collection_id,
	nft_collections.address AS collection_address, nft_collections.name AS collection_name,
	nft_collections.token_standard, owned_assets.token_id, owned_assets.token_metadata,
	owned_assets.last_verified_at, owned_assets.ownership_lost, owned_assets.created_at`

// ListOwnedAssetsByUser lists the user's owned assets with wallet and collection details
func (s *gormStore) ListOwnedAssetsByUser(ctx context.Context, userID uuid.UUID) ([]OwnedAssetView, error) {
	var views []OwnedAssetView
	err := s.db.WithContext(ctx).
		Table("owned_assets").
		Select(ownedAssetViewColumns).
		Joins("JOIN wallets ON wallets.id = owned_assets.wallet_id").
		Joins("JOIN nft_collections ON nft_collections.id = owned_assets.collection_id").
		Where("owned_assets.user_id = ?", userID).
		Order("owned_assets.id ASC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list owned assets: %w", err)
	}
	return views, nil
}

// DeleteOwnedAsset removes an owned asset owned by the user
func (s *gormStore) DeleteOwnedAsset(ctx context.Context, userID uuid.UUID, assetID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset schema.OwnedAsset
		err := tx.Clauses(lockForUpdate()).
			Where("id = ? AND user_id = ?", assetID, userID).
			First(&asset).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAssetNotFound
			}
			return fmt.Errorf("failed to lock owned asset: %w", err)
		}

		if err := detachAssets(tx, []uint64{asset.ID}, s.now()); err != nil {
			return err
		}
		if err := tx.Where("id = ?", asset.ID).Delete(&schema.OwnedAsset{}).Error; err != nil {
			return fmt.Errorf("failed to delete owned asset: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete owned asset: %w", err)
	}
	return nil
}

// =============================================================================
// Ownership verification
// =============================================================================

// ListAssetsForVerification pages through all owned assets using keyset pagination on id
func (s *gormStore) ListAssetsForVerification(ctx context.Context, afterID uint64, limit int) ([]VerificationTarget, error) {
	var targets []VerificationTarget
	err := s.db.WithContext(ctx).
		Table("owned_assets").
		Select(`owned_assets.id AS asset_id, owned_assets.user_id, owned_assets.wallet_id,
			wallets.wallet_address, nft_collections.chain_id,
			nft_collections.address AS collection_address, nft_collections.name AS collection_name,
			owned_assets.token_id, owned_assets.ownership_lost`).
		Joins("JOIN wallets ON wallets.id = owned_assets.wallet_id").
		Joins("JOIN nft_collections ON nft_collections.id = owned_assets.collection_id").
		Where("owned_assets.id > ?", afterID).
		Order("owned_assets.id ASC").
		Limit(limit).
		Scan(&targets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for verification: %w", err)
	}
	return targets, nil
}

// ApplyVerification records a verification result under a row lock so that
// overlapping sweeps agree on a single transition
func (s *gormStore) ApplyVerification(ctx context.Context, input ApplyVerificationInput) (domain.OwnershipTransition, error) {
	transition := domain.TransitionNone
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset schema.OwnedAsset
		err := tx.Clauses(lockForUpdate()).Where("id = ?", input.AssetID).First(&asset).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAssetNotFound
			}
			return fmt.Errorf("failed to lock owned asset: %w", err)
		}

		lost := !input.Owned
		switch {
		case !asset.OwnershipLost && lost:
			transition = domain.TransitionLost
		case asset.OwnershipLost && !lost:
			transition = domain.TransitionRegained
		default:
			transition = domain.TransitionNone
		}

		now := s.now()
		err = tx.Model(&schema.OwnedAsset{}).
			Where("id = ?", asset.ID).
			Updates(map[string]interface{}{
				"ownership_lost":   lost,
				"last_verified_at": input.VerifiedAt,
				"updated_at":       now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update ownership state: %w", err)
		}

		if transition == domain.TransitionLost {
			notification := schema.Notification{
				UserID:    asset.UserID,
				Type:      domain.NotificationTypeOwnershipLost,
				Message:   input.LossMessage,
				CreatedAt: now,
			}
			if err := tx.Create(&notification).Error; err != nil {
				return fmt.Errorf("failed to create notification: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			return domain.TransitionNone, err
		}
		return domain.TransitionNone, fmt.Errorf("failed to apply verification: %w", err)
	}
	return transition, nil
}

// =============================================================================
// Royalties
// =============================================================================

// ListRoyaltyTargets lists (publication, asset) pairs of published works with bound assets
func (s *gormStore) ListRoyaltyTargets(ctx context.Context, assetID *uint64) ([]RoyaltyTarget, error) {
	var targets []RoyaltyTarget
	q := s.db.WithContext(ctx).
		Table("publications").
		Select("DISTINCT publications.id AS publication_id, asset_bindings.owned_asset_id AS asset_id").
		Joins("JOIN asset_bindings ON asset_bindings.project_id = publications.project_id").
		Where("publications.published_at IS NOT NULL")
	if assetID != nil {
		q = q.Where("asset_bindings.owned_asset_id = ?", *assetID)
	}

	err := q.Order("publication_id ASC, asset_id ASC").Scan(&targets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list royalty targets: %w", err)
	}
	return targets, nil
}

// ReconcileRoyalty creates or aligns the royalty record of the pair. The asset row lock
// serializes concurrent reconciliations of the same asset.
func (s *gormStore) ReconcileRoyalty(ctx context.Context, publicationID uint64, assetID uint64) (*ReconcileRoyaltyResult, error) {
	result := &ReconcileRoyaltyResult{Action: RoyaltyActionUnchanged}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset schema.OwnedAsset
		err := tx.Clauses(lockForUpdate()).Where("id = ?", assetID).First(&asset).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAssetNotFound
			}
			return fmt.Errorf("failed to lock owned asset: %w", err)
		}

		var payee *uuid.UUID
		if !asset.OwnershipLost {
			owner := asset.UserID
			payee = &owner
		}

		now := s.now()
		var royalty schema.Royalty
		err = tx.Clauses(lockForUpdate()).
			Where("publication_id = ? AND asset_id = ?", publicationID, assetID).
			First(&royalty).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to lock royalty: %w", err)
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			id := assetID
			royalty = schema.Royalty{
				PublicationID:   publicationID,
				AssetID:         &id,
				UserID:          payee,
				SplitPercentage: decimal.RequireFromString(domain.DEFAULT_ROYALTY_SPLIT),
				Status:          domain.RoyaltyStatusPending,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := tx.Create(&royalty).Error; err != nil {
				return fmt.Errorf("failed to create royalty: %w", err)
			}
			result.Royalty = &royalty
			result.Action = RoyaltyActionCreated
			return nil
		}

		if sameUser(royalty.UserID, payee) {
			result.Royalty = &royalty
			return nil
		}

		// Only the payee moves with ownership, split and status are left alone
		err = tx.Model(&schema.Royalty{}).
			Where("id = ?", royalty.ID).
			Updates(map[string]interface{}{
				"user_id":    nullableUUID(payee),
				"updated_at": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update royalty payee: %w", err)
		}
		royalty.UserID = payee
		royalty.UpdatedAt = now
		result.Royalty = &royalty
		result.Action = RoyaltyActionUpdated
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to reconcile royalty: %w", err)
	}
	return result, nil
}

// GetRoyalty retrieves the royalty record for the pair
func (s *gormStore) GetRoyalty(ctx context.Context, publicationID uint64, assetID uint64) (*schema.Royalty, error) {
	var royalty schema.Royalty
	err := s.db.WithContext(ctx).
		Where("publication_id = ? AND asset_id = ?", publicationID, assetID).
		First(&royalty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get royalty: %w", err)
	}
	return &royalty, nil
}

// =============================================================================
// Bindings and subscriptions
// =============================================================================

// GetSubscriptionTier returns the user's subscription tier
func (s *gormStore) GetSubscriptionTier(ctx context.Context, userID uuid.UUID) (string, error) {
	var subscription schema.Subscription
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get subscription: %w", err)
	}
	return subscription.Tier, nil
}

// CreateAssetBinding binds an owned asset to a character profile, enforcing the binding limit
func (s *gormStore) CreateAssetBinding(ctx context.Context, input CreateAssetBindingInput) (*schema.AssetBinding, error) {
	var binding schema.AssetBinding
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset schema.OwnedAsset
		err := tx.Clauses(lockForUpdate()).
			Where("id = ? AND user_id = ?", input.OwnedAssetID, input.UserID).
			First(&asset).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAssetNotFound
			}
			return fmt.Errorf("failed to lock owned asset: %w", err)
		}

		// Serialize concurrent bindings of the same user so the count below stays accurate
		if _, err := lockUserWallets(tx, input.UserID); err != nil {
			return err
		}

		if input.Limit >= 0 {
			var count int64
			if err := tx.Model(&schema.AssetBinding{}).Where("user_id = ?", input.UserID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to count asset bindings: %w", err)
			}
			if count >= int64(input.Limit) {
				return domain.ErrSubscriptionLimitExceeded
			}
		}

		binding = schema.AssetBinding{
			UserID:       input.UserID,
			OwnedAssetID: asset.ID,
			ProjectID:    input.ProjectID,
			ProfileName:  input.ProfileName,
			CreatedAt:    s.now(),
		}
		if err := tx.Create(&binding).Error; err != nil {
			return fmt.Errorf("failed to create asset binding: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) || errors.Is(err, domain.ErrSubscriptionLimitExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create asset binding: %w", err)
	}
	return &binding, nil
}

// =============================================================================
// Notifications
// =============================================================================

// ListNotifications lists the user's notifications, newest first
func (s *gormStore) ListNotifications(ctx context.Context, userID uuid.UUID, filter NotificationFilter) ([]schema.Notification, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var notifications []schema.Notification
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead marks a notification owned by the user as read
func (s *gormStore) MarkNotificationRead(ctx context.Context, userID uuid.UUID, notificationID uint64) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
