package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

// ContractMetadata is the cached contract metadata from the chain indexer
type ContractMetadata struct {
	Name        string `json:"name,omitempty"`
	Symbol      string `json:"symbol,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	TotalSupply string `json:"total_supply,omitempty"`
}

// Collection represents the nft_collections table - one row per observed contract
type Collection struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Address is the lowercase contract address
	Address string `gorm:"column:address;not null;type:text;uniqueIndex:uq_nft_collections_address_chain,priority:1" json:"address"`
	// ChainID is the chain the contract lives on
	ChainID domain.ChainID `gorm:"column:chain_id;not null;uniqueIndex:uq_nft_collections_address_chain,priority:2" json:"chain_id"`
	// Name is the display name, a placeholder when metadata was unavailable
	Name string `gorm:"column:name;not null;type:text" json:"name"`
	// TokenStandard is erc721, erc1155 or unknown
	TokenStandard domain.TokenStandard `gorm:"column:token_standard;not null;type:text" json:"token_standard"`
	// ContractMetadata caches the indexer's contract metadata
	ContractMetadata datatypes.JSONType[ContractMetadata] `gorm:"column:contract_metadata" json:"contract_metadata"`
	CreatedAt        time.Time                            `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt        time.Time                            `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "nft_collections"
}

// HasPlaceholderName reports whether the collection was created without contract metadata
func (c *Collection) HasPlaceholderName() bool {
	return c.Name == domain.UNKNOWN_COLLECTION_NAME
}
