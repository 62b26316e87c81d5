package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const (
	testAddressA    = "0x1234567890123456789012345678901234567890"
	testAddressB    = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
	testContract    = "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"
	testLossMessage = "You no longer hold token 1 of Test Collection"
)

// rawDB exposes the underlying connection for seeding platform-owned tables
func rawDB(t *testing.T, store Store) *gorm.DB {
	s, ok := store.(*gormStore)
	require.True(t, ok)
	return s.db
}

func seedWallet(t *testing.T, store Store, userID uuid.UUID, address string) *schema.Wallet {
	result, err := store.UpsertWallet(context.Background(), UpsertWalletInput{
		UserID:     userID,
		Address:    address,
		ChainID:    domain.ChainEthereumMainnet,
		WalletType: domain.WalletTypeMetaMask,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result.Wallet
}

func seedCollection(t *testing.T, store Store) *schema.Collection {
	collection, err := store.EnsureCollection(context.Background(), EnsureCollectionInput{
		Address:       testContract,
		ChainID:       domain.ChainEthereumMainnet,
		Name:          "Test Collection",
		TokenStandard: domain.StandardERC721,
		Metadata:      schema.ContractMetadata{Name: "Test Collection", Symbol: "TEST", TokenType: "ERC721"},
	})
	require.NoError(t, err)
	return collection
}

func seedAsset(t *testing.T, store Store, wallet *schema.Wallet, collection *schema.Collection, tokenID string) *schema.OwnedAsset {
	asset, err := store.UpsertOwnedAsset(context.Background(), UpsertOwnedAssetInput{
		UserID:       wallet.UserID,
		CollectionID: collection.ID,
		WalletID:     wallet.ID,
		TokenID:      tokenID,
		Metadata:     schema.TokenMetadata{Name: "Token #" + tokenID},
		VerifiedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	return asset
}

func seedPublication(t *testing.T, store Store, projectID uint64, published bool) *schema.Publication {
	publication := schema.Publication{
		ProjectID: projectID,
		AuthorID:  uuid.New(),
		Title:     "A Story",
		CreatedAt: time.Now().UTC(),
	}
	if published {
		now := time.Now().UTC()
		publication.PublishedAt = &now
	}
	require.NoError(t, rawDB(t, store).Create(&publication).Error)
	return &publication
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

// =============================================================================
// Wallets
// =============================================================================

func testUpsertWallet(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first wallet becomes primary", func(t *testing.T) {
		result, err := store.UpsertWallet(ctx, UpsertWalletInput{
			UserID:     userID,
			Address:    testAddressA,
			ChainID:    domain.ChainEthereumMainnet,
			WalletType: domain.WalletTypeMetaMask,
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.True(t, result.Wallet.IsPrimary)
		assert.Equal(t, testAddressA, result.Wallet.WalletAddress)
	})

	t.Run("reconnect is idempotent", func(t *testing.T) {
		first, err := store.ListWalletsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, first, 1)

		result, err := store.UpsertWallet(ctx, UpsertWalletInput{
			UserID:     userID,
			Address:    testAddressA,
			ChainID:    domain.ChainEthereumMainnet,
			WalletType: domain.WalletTypeCoinbase,
		})
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, first[0].ID, result.Wallet.ID)
		assert.Equal(t, domain.WalletTypeCoinbase, result.Wallet.WalletType)
		assert.True(t, result.Wallet.IsPrimary)

		wallets, err := store.ListWalletsByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, wallets, 1)
	})

	t.Run("second wallet is not primary", func(t *testing.T) {
		result, err := store.UpsertWallet(ctx, UpsertWalletInput{
			UserID:     userID,
			Address:    testAddressB,
			ChainID:    domain.ChainEthereumMainnet,
			WalletType: domain.WalletTypeOther,
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.False(t, result.Wallet.IsPrimary)
	})

	t.Run("same address on another chain is a separate wallet", func(t *testing.T) {
		result, err := store.UpsertWallet(ctx, UpsertWalletInput{
			UserID:     userID,
			Address:    testAddressA,
			ChainID:    domain.ChainPolygon,
			WalletType: domain.WalletTypeMetaMask,
		})
		require.NoError(t, err)
		assert.True(t, result.Created)

		wallets, err := store.ListWalletsByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, wallets, 3)
	})

	t.Run("same address for another user", func(t *testing.T) {
		other := uuid.New()
		result, err := store.UpsertWallet(ctx, UpsertWalletInput{
			UserID:     other,
			Address:    testAddressA,
			ChainID:    domain.ChainEthereumMainnet,
			WalletType: domain.WalletTypeMetaMask,
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.True(t, result.Wallet.IsPrimary)
	})
}

func testGetWallet(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()
	wallet := seedWallet(t, store, userID, testAddressA)

	got, err := store.GetWalletByID(ctx, wallet.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)

	got, err = store.GetWalletForUser(ctx, userID, wallet.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = store.GetWalletForUser(ctx, uuid.New(), wallet.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.GetWalletByID(ctx, wallet.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testSetPrimaryWallet(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()
	first := seedWallet(t, store, userID, testAddressA)
	second := seedWallet(t, store, userID, testAddressB)
	require.True(t, first.IsPrimary)
	require.False(t, second.IsPrimary)

	require.NoError(t, store.SetPrimaryWallet(ctx, userID, second.ID))

	wallets, err := store.ListWalletsByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, wallets, 2)
	assert.False(t, wallets[0].IsPrimary)
	assert.True(t, wallets[1].IsPrimary)

	// Already primary is a no-op
	require.NoError(t, store.SetPrimaryWallet(ctx, userID, second.ID))

	err = store.SetPrimaryWallet(ctx, uuid.New(), first.ID)
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)

	err = store.SetPrimaryWallet(ctx, userID, second.ID+1000)
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func testDeleteWallet(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()
	primary := seedWallet(t, store, userID, testAddressA)
	secondary := seedWallet(t, store, userID, testAddressB)
	collection := seedCollection(t, store)
	asset := seedAsset(t, store, primary, collection, "1")
	kept := seedAsset(t, store, secondary, collection, "2")

	publication := seedPublication(t, store, 7, true)
	_, err := store.CreateAssetBinding(ctx, CreateAssetBindingInput{
		UserID:       userID,
		OwnedAssetID: asset.ID,
		ProjectID:    uint64Ptr(7),
		ProfileName:  "Hero",
		Limit:        -1,
	})
	require.NoError(t, err)
	_, err = store.ReconcileRoyalty(ctx, publication.ID, asset.ID)
	require.NoError(t, err)

	t.Run("not owned", func(t *testing.T) {
		err := store.DeleteWallet(ctx, uuid.New(), primary.ID)
		assert.ErrorIs(t, err, domain.ErrWalletNotFound)
	})

	t.Run("removes wallet and assets and promotes successor", func(t *testing.T) {
		require.NoError(t, store.DeleteWallet(ctx, userID, primary.ID))

		wallets, err := store.ListWalletsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Equal(t, secondary.ID, wallets[0].ID)
		assert.True(t, wallets[0].IsPrimary)

		assets, err := store.ListOwnedAssetsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, kept.ID, assets[0].ID)

		var bindings int64
		require.NoError(t, rawDB(t, store).Model(&schema.AssetBinding{}).Where("owned_asset_id = ?", asset.ID).Count(&bindings).Error)
		assert.Equal(t, int64(0), bindings)

		var royalty schema.Royalty
		require.NoError(t, rawDB(t, store).Where("publication_id = ?", publication.ID).First(&royalty).Error)
		assert.Nil(t, royalty.AssetID)
		assert.Nil(t, royalty.UserID)
	})

	t.Run("deleting the last wallet", func(t *testing.T) {
		require.NoError(t, store.DeleteWallet(ctx, userID, secondary.ID))

		wallets, err := store.ListWalletsByUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, wallets)
	})
}

// =============================================================================
// Collections and owned assets
// =============================================================================

func testEnsureCollection(t *testing.T, store Store) {
	ctx := context.Background()

	first := seedCollection(t, store)
	second, err := store.EnsureCollection(ctx, EnsureCollectionInput{
		Address:       testContract,
		ChainID:       domain.ChainEthereumMainnet,
		Name:          domain.UNKNOWN_COLLECTION_NAME,
		TokenStandard: domain.StandardUnknown,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Test Collection", second.Name)
	assert.Equal(t, "TEST", second.ContractMetadata.Data().Symbol)

	// Same contract on another chain is a separate collection
	polygon, err := store.EnsureCollection(ctx, EnsureCollectionInput{
		Address:       testContract,
		ChainID:       domain.ChainPolygon,
		Name:          domain.UNKNOWN_COLLECTION_NAME,
		TokenStandard: domain.StandardUnknown,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, polygon.ID)
	assert.True(t, polygon.HasPlaceholderName())

	err = store.UpdateCollectionMetadata(ctx, polygon.ID, EnsureCollectionInput{
		Name:          "Polygon Collection",
		TokenStandard: domain.StandardERC1155,
		Metadata:      schema.ContractMetadata{Name: "Polygon Collection", TokenType: "ERC1155"},
	})
	require.NoError(t, err)

	updated, err := store.GetCollection(ctx, testContract, domain.ChainPolygon)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Polygon Collection", updated.Name)
	assert.Equal(t, domain.StandardERC1155, updated.TokenStandard)
	assert.False(t, updated.HasPlaceholderName())

	missing, err := store.GetCollection(ctx, testAddressA, domain.ChainEthereumMainnet)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testUpsertOwnedAsset(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()
	walletA := seedWallet(t, store, userID, testAddressA)
	walletB := seedWallet(t, store, userID, testAddressB)
	collection := seedCollection(t, store)

	first := seedAsset(t, store, walletA, collection, "42")
	assert.False(t, first.OwnershipLost)

	// Token moved between the user's own wallets: same row, new wallet
	moved, err := store.UpsertOwnedAsset(ctx, UpsertOwnedAssetInput{
		UserID:       userID,
		CollectionID: collection.ID,
		WalletID:     walletB.ID,
		TokenID:      "42",
		Metadata:     schema.TokenMetadata{Name: "Renamed"},
		VerifiedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, moved.ID)
	assert.Equal(t, walletB.ID, moved.WalletID)
	assert.Equal(t, "Renamed", moved.TokenMetadata.Data().Name)

	// Sync does not clear a lost flag
	_, err = store.ApplyVerification(ctx, ApplyVerificationInput{AssetID: first.ID, Owned: false, VerifiedAt: time.Now().UTC(), LossMessage: testLossMessage})
	require.NoError(t, err)
	again := seedAsset(t, store, walletB, collection, "42")
	assert.True(t, again.OwnershipLost)

	views, err := store.ListOwnedAssetsByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, testAddressB, views[0].WalletAddress)
	assert.Equal(t, testContract, views[0].CollectionAddress)
	assert.Equal(t, "Test Collection", views[0].CollectionName)
	assert.Equal(t, domain.StandardERC721, views[0].TokenStandard)
	assert.Equal(t, domain.ChainEthereumMainnet, views[0].ChainID)
	assert.Equal(t, "42", views[0].TokenID)
	assert.True(t, views[0].OwnershipLost)

	got, err := store.GetOwnedAssetForUser(ctx, userID, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = store.GetOwnedAssetForUser(ctx, uuid.New(), first.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testDeleteOwnedAsset(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()
	wallet := seedWallet(t, store, userID, testAddressA)
	collection := seedCollection(t, store)
	asset := seedAsset(t, store, wallet, collection, "1")

	err := store.DeleteOwnedAsset(ctx, uuid.New(), asset.ID)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)

	require.NoError(t, store.DeleteOwnedAsset(ctx, userID, asset.ID))

	assets, err := store.ListOwnedAssetsByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, assets)

	err = store.DeleteOwnedAsset(ctx, userID, asset.ID)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

// =============================================================================
// Ownership verification
// =============================================================================

func testListAssetsForVerification(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := seedWallet(t, store, uuid.New(), testAddressA)
	collection := seedCollection(t, store)
	seedAsset(t, store, wallet, collection, "1")
	seedAsset(t, store, wallet, collection, "2")
	seedAsset(t, store, wallet, collection, "3")

	page, err := store.ListAssetsForVerification(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "1", page[0].TokenID)
	assert.Equal(t, testAddressA, page[0].WalletAddress)
	assert.Equal(t, testContract, page[0].CollectionAddress)
	assert.Equal(t, "Test Collection", page[0].CollectionName)
	assert.Equal(t, domain.ChainEthereumMainnet, page[0].ChainID)
	assert.Less(t, page[0].AssetID, page[1].AssetID)

	rest, err := store.ListAssetsForVerification(ctx, page[1].AssetID, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "3", rest[0].TokenID)

	empty, err := store.ListAssetsForVerification(ctx, rest[0].AssetID, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testApplyVerification(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()
	wallet := seedWallet(t, store, userID, testAddressA)
	collection := seedCollection(t, store)
	asset := seedAsset(t, store, wallet, collection, "1")

	apply := func(owned bool) domain.OwnershipTransition {
		transition, err := store.ApplyVerification(ctx, ApplyVerificationInput{
			AssetID:     asset.ID,
			Owned:       owned,
			VerifiedAt:  time.Now().UTC(),
			LossMessage: testLossMessage,
		})
		require.NoError(t, err)
		return transition
	}

	assert.Equal(t, domain.TransitionNone, apply(true))
	assert.Equal(t, domain.TransitionLost, apply(false))
	assert.Equal(t, domain.TransitionNone, apply(false))

	notifications, err := store.ListNotifications(ctx, userID, NotificationFilter{})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, domain.NotificationTypeOwnershipLost, notifications[0].Type)
	assert.Equal(t, testLossMessage, notifications[0].Message)
	assert.False(t, notifications[0].IsRead)

	assert.Equal(t, domain.TransitionRegained, apply(true))

	// Regaining does not notify
	notifications, err = store.ListNotifications(ctx, userID, NotificationFilter{})
	require.NoError(t, err)
	assert.Len(t, notifications, 1)

	_, err = store.ApplyVerification(ctx, ApplyVerificationInput{AssetID: asset.ID + 1000, Owned: true, VerifiedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

// =============================================================================
// Royalties
// =============================================================================

func testReconcileRoyalty(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()
	wallet := seedWallet(t, store, userID, testAddressA)
	collection := seedCollection(t, store)
	asset := seedAsset(t, store, wallet, collection, "1")
	unbound := seedAsset(t, store, wallet, collection, "2")

	published := seedPublication(t, store, 7, true)
	seedPublication(t, store, 7, false)
	seedPublication(t, store, 8, true)

	_, err := store.CreateAssetBinding(ctx, CreateAssetBindingInput{
		UserID:       userID,
		OwnedAssetID: asset.ID,
		ProjectID:    uint64Ptr(7),
		ProfileName:  "Hero",
		Limit:        -1,
	})
	require.NoError(t, err)

	t.Run("targets only published works with bound assets", func(t *testing.T) {
		targets, err := store.ListRoyaltyTargets(ctx, nil)
		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, published.ID, targets[0].PublicationID)
		assert.Equal(t, asset.ID, targets[0].AssetID)

		targets, err = store.ListRoyaltyTargets(ctx, uint64Ptr(unbound.ID))
		require.NoError(t, err)
		assert.Empty(t, targets)
	})

	t.Run("creates record paid to the owner", func(t *testing.T) {
		result, err := store.ReconcileRoyalty(ctx, published.ID, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, RoyaltyActionCreated, result.Action)
		require.NotNil(t, result.Royalty.UserID)
		assert.Equal(t, userID, *result.Royalty.UserID)
		assert.Equal(t, domain.RoyaltyStatusPending, result.Royalty.Status)
		assert.Equal(t, "1", result.Royalty.SplitPercentage.String())
	})

	t.Run("second run is unchanged", func(t *testing.T) {
		result, err := store.ReconcileRoyalty(ctx, published.ID, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, RoyaltyActionUnchanged, result.Action)
	})

	t.Run("lost ownership clears the payee", func(t *testing.T) {
		_, err := store.ApplyVerification(ctx, ApplyVerificationInput{AssetID: asset.ID, Owned: false, VerifiedAt: time.Now().UTC(), LossMessage: testLossMessage})
		require.NoError(t, err)

		result, err := store.ReconcileRoyalty(ctx, published.ID, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, RoyaltyActionUpdated, result.Action)
		assert.Nil(t, result.Royalty.UserID)

		stored, err := store.GetRoyalty(ctx, published.ID, asset.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Nil(t, stored.UserID)
		assert.Equal(t, "1", stored.SplitPercentage.String())
	})

	t.Run("regained ownership restores the payee", func(t *testing.T) {
		_, err := store.ApplyVerification(ctx, ApplyVerificationInput{AssetID: asset.ID, Owned: true, VerifiedAt: time.Now().UTC()})
		require.NoError(t, err)

		result, err := store.ReconcileRoyalty(ctx, published.ID, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, RoyaltyActionUpdated, result.Action)

		stored, err := store.GetRoyalty(ctx, published.ID, asset.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.NotNil(t, stored.UserID)
		assert.Equal(t, userID, *stored.UserID)
	})

	t.Run("missing asset", func(t *testing.T) {
		_, err := store.ReconcileRoyalty(ctx, published.ID, asset.ID+1000)
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)

		missing, err := store.GetRoyalty(ctx, published.ID, unbound.ID)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Bindings and subscriptions
// =============================================================================

func testCreateAssetBinding(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()
	wallet := seedWallet(t, store, userID, testAddressA)
	collection := seedCollection(t, store)
	first := seedAsset(t, store, wallet, collection, "1")
	second := seedAsset(t, store, wallet, collection, "2")

	binding, err := store.CreateAssetBinding(ctx, CreateAssetBindingInput{
		UserID:       userID,
		OwnedAssetID: first.ID,
		ProfileName:  "Hero",
		Limit:        1,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, binding.OwnedAssetID)
	assert.Nil(t, binding.ProjectID)

	_, err = store.CreateAssetBinding(ctx, CreateAssetBindingInput{
		UserID:       userID,
		OwnedAssetID: second.ID,
		ProfileName:  "Villain",
		Limit:        1,
	})
	assert.ErrorIs(t, err, domain.ErrSubscriptionLimitExceeded)

	_, err = store.CreateAssetBinding(ctx, CreateAssetBindingInput{
		UserID:       userID,
		OwnedAssetID: second.ID,
		ProfileName:  "Villain",
		Limit:        -1,
	})
	require.NoError(t, err)

	_, err = store.CreateAssetBinding(ctx, CreateAssetBindingInput{
		UserID:       uuid.New(),
		OwnedAssetID: first.ID,
		ProfileName:  "Thief",
		Limit:        -1,
	})
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func testGetSubscriptionTier(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()

	tier, err := store.GetSubscriptionTier(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, tier)

	require.NoError(t, rawDB(t, store).Create(&schema.Subscription{
		UserID:    userID,
		Tier:      "pro",
		UpdatedAt: time.Now().UTC(),
	}).Error)

	tier, err = store.GetSubscriptionTier(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "pro", tier)
}

// =============================================================================
// Notifications
// =============================================================================

func testNotifications(t *testing.T, store Store) {
	ctx := context.Background()
	userID := uuid.New()
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, rawDB(t, store).Create(&schema.Notification{
			UserID:    userID,
			Type:      domain.NotificationTypeOwnershipLost,
			Message:   "lost",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	all, err := store.ListNotifications(ctx, userID, NotificationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt))

	limited, err := store.ListNotifications(ctx, userID, NotificationFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	require.NoError(t, store.MarkNotificationRead(ctx, userID, all[0].ID))

	unread, err := store.ListNotifications(ctx, userID, NotificationFilter{UnreadOnly: true})
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	err = store.MarkNotificationRead(ctx, uuid.New(), all[1].ID)
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

// =============================================================================
// Test Runner
// =============================================================================

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertWallet", testUpsertWallet},
		{"GetWallet", testGetWallet},
		{"SetPrimaryWallet", testSetPrimaryWallet},
		{"DeleteWallet", testDeleteWallet},
		{"EnsureCollection", testEnsureCollection},
		{"UpsertOwnedAsset", testUpsertOwnedAsset},
		{"DeleteOwnedAsset", testDeleteOwnedAsset},
		{"ListAssetsForVerification", testListAssetsForVerification},
		{"ApplyVerification", testApplyVerification},
		{"ReconcileRoyalty", testReconcileRoyalty},
		{"CreateAssetBinding", testCreateAssetBinding},
		{"GetSubscriptionTier", testGetSubscriptionTier},
		{"Notifications", testNotifications},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

// =============================================================================
// Concurrency
// =============================================================================

const (
	concurrentWorkers  = 8
	concurrentContract = "0x00000000000000000000000000000000c0ffee01"
)

// RunConcurrencyTests needs a store backed by a connection pool rather than a single transaction.
// Rows are committed, so each case removes what it created.
func RunConcurrencyTests(t *testing.T, store Store) {
	t.Run("concurrent connects leave one primary wallet", func(t *testing.T) {
		ctx := context.Background()
		userID := uuid.New()
		t.Cleanup(func() {
			rawDB(t, store).Where("user_id = ?", userID).Delete(&schema.Wallet{})
		})

		errs := make([]error, concurrentWorkers)
		var wg sync.WaitGroup
		for i := 0; i < concurrentWorkers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = store.UpsertWallet(ctx, UpsertWalletInput{
					UserID:     userID,
					Address:    fmt.Sprintf("0x%040x", i+1),
					ChainID:    domain.ChainEthereumMainnet,
					WalletType: domain.WalletTypeMetaMask,
				})
			}(i)
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		wallets, err := store.ListWalletsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, wallets, concurrentWorkers)
		primaries := 0
		for _, w := range wallets {
			if w.IsPrimary {
				primaries++
			}
		}
		assert.Equal(t, 1, primaries)
	})

	t.Run("concurrent syncs of one token keep one asset row", func(t *testing.T) {
		ctx := context.Background()
		userID := uuid.New()
		t.Cleanup(func() {
			db := rawDB(t, store)
			db.Where("user_id = ?", userID).Delete(&schema.OwnedAsset{})
			db.Where("user_id = ?", userID).Delete(&schema.Wallet{})
			db.Where("address = ?", concurrentContract).Delete(&schema.Collection{})
		})

		wallet := seedWallet(t, store, userID, testAddressB)
		collection, err := store.EnsureCollection(ctx, EnsureCollectionInput{
			Address:       concurrentContract,
			ChainID:       domain.ChainEthereumMainnet,
			Name:          "Concurrent Collection",
			TokenStandard: domain.StandardERC1155,
		})
		require.NoError(t, err)

		errs := make([]error, concurrentWorkers)
		var wg sync.WaitGroup
		for i := 0; i < concurrentWorkers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = store.UpsertOwnedAsset(ctx, UpsertOwnedAssetInput{
					UserID:       userID,
					CollectionID: collection.ID,
					WalletID:     wallet.ID,
					TokenID:      "1",
					Metadata:     schema.TokenMetadata{Name: fmt.Sprintf("Token #1 sync %d", i)},
					VerifiedAt:   time.Now().UTC(),
				})
			}(i)
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		assets, err := store.ListOwnedAssetsByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, assets, 1)
	})
}
