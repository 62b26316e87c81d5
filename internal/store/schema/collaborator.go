package schema

import (
	"time"

	"github.com/google/uuid"
)

// The tables below are owned by the writing platform. This service only reads
// publications and subscriptions, and writes asset_bindings on behalf of the user.

// Publication represents the publications table
type Publication struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectID uint64    `gorm:"column:project_id;not null;index:idx_publications_project_id" json:"project_id"`
	AuthorID  uuid.UUID `gorm:"column:author_id;not null;type:uuid" json:"author_id"`
	Title     string    `gorm:"column:title;not null;type:text" json:"title"`
	// PublishedAt is nil while the work is still a draft
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for the Publication model
func (Publication) TableName() string {
	return "publications"
}

// AssetBinding represents the asset_bindings table - links an owned asset to a
// user-authored character profile and optionally to a project
type AssetBinding struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID `gorm:"column:user_id;not null;type:uuid;index:idx_asset_bindings_user_id" json:"user_id"`
	OwnedAssetID uint64    `gorm:"column:owned_asset_id;not null;index:idx_asset_bindings_owned_asset_id" json:"owned_asset_id"`
	ProjectID    *uint64   `gorm:"column:project_id;index:idx_asset_bindings_project_id" json:"project_id"`
	ProfileName  string    `gorm:"column:profile_name;not null;type:text" json:"profile_name"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for the AssetBinding model
func (AssetBinding) TableName() string {
	return "asset_bindings"
}

// Subscription represents the subscriptions table
type Subscription struct {
	UserID    uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid" json:"user_id"`
	Tier      string    `gorm:"column:tier;not null;type:text" json:"tier"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for the Subscription model
func (Subscription) TableName() string {
	return "subscriptions"
}

// Models lists every table model, in dependency order, for auto migration
var Models = []interface{}{
	&Wallet{},
	&Collection{},
	&OwnedAsset{},
	&Publication{},
	&AssetBinding{},
	&Subscription{},
	&Royalty{},
	&Notification{},
}
