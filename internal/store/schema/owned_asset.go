package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Attribute is a single token trait
type Attribute struct {
	TraitType   string `json:"trait_type,omitempty"`
	Value       string `json:"value,omitempty"`
	DisplayType string `json:"display_type,omitempty"`
}

// TokenMetadata is the cached token metadata from the chain indexer
type TokenMetadata struct {
	Name         string      `json:"name,omitempty"`
	Description  string      `json:"description,omitempty"`
	Image        string      `json:"image,omitempty"`
	AnimationURL string      `json:"animation_url,omitempty"`
	ExternalURL  string      `json:"external_url,omitempty"`
	TokenURI     string      `json:"token_uri,omitempty"`
	Attributes   []Attribute `json:"attributes,omitempty"`
}

// OwnedAsset represents the owned_assets table - a token tracked as held by one of a user's wallets
type OwnedAsset struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// UserID references the owning user
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;uniqueIndex:uq_owned_assets_user_collection_token,priority:1" json:"user_id"`
	// CollectionID references nft_collections
	CollectionID uint64 `gorm:"column:collection_id;not null;uniqueIndex:uq_owned_assets_user_collection_token,priority:2" json:"collection_id"`
	// WalletID references the wallet currently holding the token
	WalletID uint64 `gorm:"column:wallet_id;not null;index:idx_owned_assets_wallet_id" json:"wallet_id"`
	// TokenID is the canonical decimal token id
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:uq_owned_assets_user_collection_token,priority:3" json:"token_id"`
	// TokenMetadata caches the indexer's token metadata
	TokenMetadata datatypes.JSONType[TokenMetadata] `gorm:"column:token_metadata" json:"token_metadata"`
	// LastVerifiedAt is when ownership was last confirmed or checked
	LastVerifiedAt time.Time `gorm:"column:last_verified_at;not null" json:"last_verified_at"`
	// OwnershipLost is set when the latest sweep did not find the wallet among the owners
	OwnershipLost bool      `gorm:"column:ownership_lost;not null;default:false" json:"ownership_lost"`
	CreatedAt     time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for the OwnedAsset model
func (OwnedAsset) TableName() string {
	return "owned_assets"
}
