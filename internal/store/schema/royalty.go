package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

// Royalty represents the royalties table - payout attribution of a publication to a bound asset's owner
type Royalty struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// PublicationID references the published work
	PublicationID uint64 `gorm:"column:publication_id;not null;uniqueIndex:uq_royalties_publication_asset,priority:1" json:"publication_id"`
	// AssetID references the bound owned asset; nil once the asset has been removed
	AssetID *uint64 `gorm:"column:asset_id;uniqueIndex:uq_royalties_publication_asset,priority:2" json:"asset_id"`
	// UserID is the payee; nil while the bound asset's ownership is lost
	UserID *uuid.UUID `gorm:"column:user_id;type:uuid" json:"user_id"`
	// SplitPercentage is the fraction of the royalty attributed to the payee (1 = 100%)
	SplitPercentage decimal.Decimal `gorm:"column:split_percentage;not null;type:numeric(5,4)" json:"split_percentage"`
	// Status is the payout status
	Status    domain.RoyaltyStatus `gorm:"column:status;not null;type:text" json:"status"`
	CreatedAt time.Time            `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time            `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for the Royalty model
func (Royalty) TableName() string {
	return "royalties"
}
