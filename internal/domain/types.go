package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// ChainID represents an EVM chain identifier (e.g. 1 for Ethereum mainnet)
type ChainID int64

const (
	ChainEthereumMainnet ChainID = 1
	ChainOptimism        ChainID = 10
	ChainPolygon         ChainID = 137
	ChainBase            ChainID = 8453
	ChainArbitrum        ChainID = 42161
	ChainPolygonAmoy     ChainID = 80002
	ChainEthereumSepolia ChainID = 11155111
)

var chainNetworks = map[ChainID]string{
	ChainEthereumMainnet: "eth-mainnet",
	ChainOptimism:        "opt-mainnet",
	ChainPolygon:         "polygon-mainnet",
	ChainBase:            "base-mainnet",
	ChainArbitrum:        "arb-mainnet",
	ChainPolygonAmoy:     "polygon-amoy",
	ChainEthereumSepolia: "eth-sepolia",
}

// IsValidChain checks if a chain is supported
func IsValidChain(chainID ChainID) bool {
	_, ok := chainNetworks[chainID]
	return ok
}

// Network returns the indexer network slug for the chain, e.g. "eth-mainnet"
func (c ChainID) Network() (string, bool) {
	network, ok := chainNetworks[c]
	return network, ok
}

// String returns the decimal representation of the chain id
func (c ChainID) String() string {
	return fmt.Sprintf("%d", int64(c))
}

// TokenStandard represents an NFT token standard
type TokenStandard string

const (
	StandardERC721  TokenStandard = "erc721"
	StandardERC1155 TokenStandard = "erc1155"
	StandardUnknown TokenStandard = "unknown"
)

// ParseTokenStandard maps an indexer token type (e.g. "ERC721") to a TokenStandard
func ParseTokenStandard(tokenType string) TokenStandard {
	switch strings.ToLower(strings.TrimSpace(tokenType)) {
	case "erc721":
		return StandardERC721
	case "erc1155":
		return StandardERC1155
	default:
		return StandardUnknown
	}
}

// WalletType tags the wallet software used to connect an address
type WalletType string

const (
	WalletTypeMetaMask      WalletType = "metamask"
	WalletTypeWalletConnect WalletType = "walletconnect"
	WalletTypeCoinbase      WalletType = "coinbase"
	WalletTypeOther         WalletType = "other"
)

// ParseWalletType returns the wallet type for the given tag, falling back to WalletTypeOther
func ParseWalletType(tag string) WalletType {
	switch WalletType(strings.ToLower(strings.TrimSpace(tag))) {
	case WalletTypeMetaMask:
		return WalletTypeMetaMask
	case WalletTypeWalletConnect:
		return WalletTypeWalletConnect
	case WalletTypeCoinbase:
		return WalletTypeCoinbase
	default:
		return WalletTypeOther
	}
}

// OwnershipTransition is the outcome of applying a verification result to an owned asset
type OwnershipTransition string

const (
	// TransitionNone means the asset stayed in its previous state
	TransitionNone OwnershipTransition = "none"
	// TransitionLost means the asset moved from verified to ownership lost
	TransitionLost OwnershipTransition = "lost"
	// TransitionRegained means the asset moved from ownership lost back to verified
	TransitionRegained OwnershipTransition = "regained"
)

// Changed reports whether the transition flips the ownership state
func (t OwnershipTransition) Changed() bool {
	return t == TransitionLost || t == TransitionRegained
}

// NotificationType tags a user notification
type NotificationType string

const (
	NotificationTypeOwnershipLost NotificationType = "ownership_lost"
)

// RoyaltyStatus is the payout status of a royalty record
type RoyaltyStatus string

const (
	RoyaltyStatusPending RoyaltyStatus = "pending"
	RoyaltyStatusPaid    RoyaltyStatus = "paid"
)

// OwnershipChangedEvent is published whenever a sweep flips an asset's ownership state
type OwnershipChangedEvent struct {
	AssetID         uint64              `json:"asset_id"`
	UserID          uuid.UUID           `json:"user_id"`
	WalletAddress   string              `json:"wallet_address"`
	ChainID         ChainID             `json:"chain_id"`
	ContractAddress string              `json:"contract_address"`
	TokenID         string              `json:"token_id"`
	Transition      OwnershipTransition `json:"transition"`
	SweepID         string              `json:"sweep_id"`
	Timestamp       time.Time           `json:"timestamp"`
}

// NormalizeAddress validates an EVM address and returns its lowercase hex form
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return strings.ToLower(common.HexToAddress(address).Hex()), nil
}

// NormalizeAddresses lowercases a list of addresses, dropping invalid entries
func NormalizeAddresses(addresses []string) []string {
	normalized := make([]string, 0, len(addresses))
	for _, address := range addresses {
		a, err := NormalizeAddress(address)
		if err != nil {
			continue
		}
		normalized = append(normalized, a)
	}
	return normalized
}

// NormalizeTokenID converts a token id given in hex ("0x" prefixed) or decimal
// form into its canonical decimal string
func NormalizeTokenID(tokenID string) (string, error) {
	raw := strings.TrimSpace(tokenID)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidTokenID)
	}

	n := new(big.Int)
	var ok bool
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		digits := raw[2:]
		if digits == "" {
			return "", fmt.Errorf("%w: %q", ErrInvalidTokenID, tokenID)
		}
		_, ok = n.SetString(digits, 16)
	} else {
		_, ok = n.SetString(raw, 10)
	}
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTokenID, tokenID)
	}

	return n.String(), nil
}
