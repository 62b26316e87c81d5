package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

// Wallet represents the wallets table - addresses a user has proven control of
type Wallet struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// UserID references the user owning the wallet
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;uniqueIndex:uq_wallets_user_address_chain,priority:1" json:"user_id"`
	// WalletAddress is the lowercase hex address
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;uniqueIndex:uq_wallets_user_address_chain,priority:2" json:"wallet_address"`
	// ChainID is the EVM chain the address was proven on
	ChainID domain.ChainID `gorm:"column:chain_id;not null;uniqueIndex:uq_wallets_user_address_chain,priority:3" json:"chain_id"`
	// WalletType tags the wallet software used to connect
	WalletType domain.WalletType `gorm:"column:wallet_type;not null;type:text" json:"wallet_type"`
	// IsPrimary marks the user's primary wallet; at most one per user
	IsPrimary bool `gorm:"column:is_primary;not null;default:false" json:"is_primary"`
	// CreatedAt is when the wallet was first connected
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	// UpdatedAt is refreshed on every reconnect
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}
