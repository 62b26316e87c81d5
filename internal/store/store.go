package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store/schema"
)

// UpsertWalletInput represents the input for connecting a wallet
type UpsertWalletInput struct {
	UserID     uuid.UUID
	Address    string
	ChainID    domain.ChainID
	WalletType domain.WalletType
}

// UpsertWalletResult is the wallet row after a connect plus whether it was newly inserted
type UpsertWalletResult struct {
	Wallet  *schema.Wallet
	Created bool
}

// EnsureCollectionInput represents the input for lazily creating a collection
type EnsureCollectionInput struct {
	Address       string
	ChainID       domain.ChainID
	Name          string
	TokenStandard domain.TokenStandard
	Metadata      schema.ContractMetadata
}

// UpsertOwnedAssetInput represents the input for synchronizing an owned asset
type UpsertOwnedAssetInput struct {
	UserID       uuid.UUID
	CollectionID uint64
	WalletID     uint64
	TokenID      string // canonical decimal
	Metadata     schema.TokenMetadata
	VerifiedAt   time.Time
}

// OwnedAssetView is an owned asset joined with its wallet and collection
type OwnedAssetView struct {
	ID                uint64                                   `gorm:"column:id" json:"id"`
	UserID            uuid.UUID                                `gorm:"column:user_id" json:"user_id"`
	WalletID          uint64                                   `gorm:"column:wallet_id" json:"wallet_id"`
	WalletAddress     string                                   `gorm:"column:wallet_address" json:"wallet_address"`
	ChainID           domain.ChainID                           `gorm:"column:chain_id" json:"chain_id"`
	CollectionID      uint64                                   `gorm:"column:collection_id" json:"collection_id"`
	CollectionAddress string                                   `gorm:"column:collection_address" json:"collection_address"`
	CollectionName    string                                   `gorm:"column:collection_name" json:"collection_name"`
	TokenStandard     domain.TokenStandard                     `gorm:"column:token_standard" json:"token_standard"`
	TokenID           string                                   `gorm:"column:token_id" json:"token_id"`
	TokenMetadata     datatypes.JSONType[schema.TokenMetadata] `gorm:"column:token_metadata" json:"token_metadata"`
	LastVerifiedAt    time.Time                                `gorm:"column:last_verified_at" json:"last_verified_at"`
	OwnershipLost     bool                                     `gorm:"column:ownership_lost" json:"ownership_lost"`
	CreatedAt         time.Time                                `gorm:"column:created_at" json:"created_at"`
}

// VerificationTarget is the minimal projection of an owned asset needed to re-check ownership
type VerificationTarget struct {
	AssetID           uint64         `gorm:"column:asset_id"`
	UserID            uuid.UUID      `gorm:"column:user_id"`
	WalletID          uint64         `gorm:"column:wallet_id"`
	WalletAddress     string         `gorm:"column:wallet_address"`
	ChainID           domain.ChainID `gorm:"column:chain_id"`
	CollectionAddress string         `gorm:"column:collection_address"`
	CollectionName    string         `gorm:"column:collection_name"`
	TokenID           string         `gorm:"column:token_id"`
	OwnershipLost     bool           `gorm:"column:ownership_lost"`
}

// ApplyVerificationInput represents the result of checking one asset against the chain
type ApplyVerificationInput struct {
	AssetID    uint64
	Owned      bool
	VerifiedAt time.Time
	// LossMessage is the notification text written on a verified to lost transition
	LossMessage string
}

// RoyaltyTarget is a (publication, bound asset) pair that must carry a royalty record
type RoyaltyTarget struct {
	PublicationID uint64 `gorm:"column:publication_id"`
	AssetID       uint64 `gorm:"column:asset_id"`
}

// RoyaltyAction describes what ReconcileRoyalty did to the record
type RoyaltyAction string

const (
	RoyaltyActionCreated   RoyaltyAction = "created"
	RoyaltyActionUpdated   RoyaltyAction = "updated"
	RoyaltyActionUnchanged RoyaltyAction = "unchanged"
)

// ReconcileRoyaltyResult is the outcome of reconciling a single royalty record
type ReconcileRoyaltyResult struct {
	Royalty *schema.Royalty
	Action  RoyaltyAction
}

// CreateAssetBindingInput represents the input for binding an owned asset to a character profile
type CreateAssetBindingInput struct {
	UserID       uuid.UUID
	OwnedAssetID uint64
	ProjectID    *uint64
	ProfileName  string
	// Limit is the maximum number of bindings the user may hold; negative means unlimited
	Limit int
}

// NotificationFilter filters notifications listings
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Wallets
	// =============================================================================

	// UpsertWallet inserts the wallet if absent, refreshing it otherwise. The first
	// wallet of a user becomes primary.
	UpsertWallet(ctx context.Context, input UpsertWalletInput) (*UpsertWalletResult, error)
	// GetWalletByID retrieves a wallet by id, nil if absent
	GetWalletByID(ctx context.Context, walletID uint64) (*schema.Wallet, error)
	// GetWalletForUser retrieves a wallet owned by the user, nil if absent or not owned
	GetWalletForUser(ctx context.Context, userID uuid.UUID, walletID uint64) (*schema.Wallet, error)
	// ListWalletsByUser lists the user's wallets ordered by creation
	ListWalletsByUser(ctx context.Context, userID uuid.UUID) ([]schema.Wallet, error)
	// DeleteWallet removes the wallet and its owned assets, promoting the oldest remaining
	// wallet when the removed one was primary. Returns domain.ErrWalletNotFound if not owned.
	DeleteWallet(ctx context.Context, userID uuid.UUID, walletID uint64) error
	// SetPrimaryWallet makes the wallet the user's only primary wallet.
	// Returns domain.ErrWalletNotFound if not owned.
	SetPrimaryWallet(ctx context.Context, userID uuid.UUID, walletID uint64) error

	// =============================================================================
	// Collections and owned assets
	// =============================================================================

	// GetCollection retrieves a collection by contract address and chain, nil if absent
	GetCollection(ctx context.Context, address string, chainID domain.ChainID) (*schema.Collection, error)
	// EnsureCollection creates the collection if absent and returns the stored row
	EnsureCollection(ctx context.Context, input EnsureCollectionInput) (*schema.Collection, error)
	// UpdateCollectionMetadata replaces a collection's name, standard and cached metadata
	UpdateCollectionMetadata(ctx context.Context, collectionID uint64, input EnsureCollectionInput) error
	// UpsertOwnedAsset inserts or refreshes the asset keyed by (user, collection, token id)
	UpsertOwnedAsset(ctx context.Context, input UpsertOwnedAssetInput) (*schema.OwnedAsset, error)
	// GetOwnedAssetForUser retrieves an owned asset owned by the user, nil if absent
	GetOwnedAssetForUser(ctx context.Context, userID uuid.UUID, assetID uint64) (*schema.OwnedAsset, error)
	// ListOwnedAssetsByUser lists the user's owned assets with wallet and collection details
	ListOwnedAssetsByUser(ctx context.Context, userID uuid.UUID) ([]OwnedAssetView, error)
	// DeleteOwnedAsset removes an owned asset. Returns domain.ErrAssetNotFound if not owned.
	DeleteOwnedAsset(ctx context.Context, userID uuid.UUID, assetID uint64) error

	// =============================================================================
	// Ownership verification
	// =============================================================================

	// ListAssetsForVerification pages through all owned assets ordered by id, after the given id
	ListAssetsForVerification(ctx context.Context, afterID uint64, limit int) ([]VerificationTarget, error)
	// ApplyVerification records a verification result for an asset and returns the
	// resulting transition. A loss notification is written in the same transaction.
	ApplyVerification(ctx context.Context, input ApplyVerificationInput) (domain.OwnershipTransition, error)

	// =============================================================================
	// Royalties
	// =============================================================================

	// ListRoyaltyTargets lists (publication, asset) pairs of published works with bound
	// assets, restricted to one asset when assetID is not nil
	ListRoyaltyTargets(ctx context.Context, assetID *uint64) ([]RoyaltyTarget, error)
	// ReconcileRoyalty aligns the royalty record of the pair with the asset's ownership
	// state in a single transaction
	ReconcileRoyalty(ctx context.Context, publicationID uint64, assetID uint64) (*ReconcileRoyaltyResult, error)
	// GetRoyalty retrieves the royalty record for the pair, nil if absent
	GetRoyalty(ctx context.Context, publicationID uint64, assetID uint64) (*schema.Royalty, error)

	// =============================================================================
	// Bindings and subscriptions
	// =============================================================================

	// GetSubscriptionTier returns the user's tier, empty if the user has no subscription row
	GetSubscriptionTier(ctx context.Context, userID uuid.UUID) (string, error)
	// CreateAssetBinding binds an owned asset to a profile, enforcing the binding limit.
	// Returns domain.ErrAssetNotFound or domain.ErrSubscriptionLimitExceeded.
	CreateAssetBinding(ctx context.Context, input CreateAssetBindingInput) (*schema.AssetBinding, error)

	// =============================================================================
	// Notifications
	// =============================================================================

	// ListNotifications lists the user's notifications, newest first
	ListNotifications(ctx context.Context, userID uuid.UUID, filter NotificationFilter) ([]schema.Notification, error)
	// MarkNotificationRead marks a notification read. Returns domain.ErrNotificationNotFound if not owned.
	MarkNotificationRead(ctx context.Context, userID uuid.UUID, notificationID uint64) error
}
