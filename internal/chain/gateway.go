package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

// Attribute is a single token trait as reported by the indexer
type Attribute struct {
	TraitType   string
	Value       string
	DisplayType string
}

// TokenMetadata is the token metadata reported by the indexer.
// Every field is optional.
type TokenMetadata struct {
	Name         string
	Description  string
	Image        string
	AnimationURL string
	ExternalURL  string
	TokenURI     string
	Attributes   []Attribute
}

// OwnedToken is a token held by a wallet
type OwnedToken struct {
	// ContractAddress is the lowercase contract address
	ContractAddress string
	// TokenIDHex is the token id as returned by the indexer, usually 0x prefixed hex
	TokenIDHex string
	// TokenType is the indexer's token type, e.g. ERC721
	TokenType string
	Metadata  TokenMetadata
}

// ContractMetadata is the contract metadata reported by the indexer
type ContractMetadata struct {
	Name        string
	Symbol      string
	TokenType   string
	TotalSupply string
}

// Gateway answers ownership queries against an external chain indexer.
// Every error returned wraps either domain.ErrChainGatewayTransient or
// domain.ErrChainGatewayPermanent.
//
//go:generate mockgen -source=gateway.go -destination=../mocks/chain_gateway.go -package=mocks -mock_names=Gateway=MockChainGateway
type Gateway interface {
	// GetOwnedTokens lists the tokens held by address, restricted to contractFilter when
	// it is not empty. Collections flagged as spam are excluded.
	GetOwnedTokens(ctx context.Context, address string, chainID domain.ChainID, contractFilter []string) ([]OwnedToken, error)

	// GetContractMetadata fetches contract metadata. Best effort: callers fall back to a
	// placeholder on error.
	GetContractMetadata(ctx context.Context, contractAddress string, chainID domain.ChainID) (*ContractMetadata, error)

	// GetCurrentOwners lists the lowercase addresses currently holding the token
	GetCurrentOwners(ctx context.Context, contractAddress string, tokenID string, chainID domain.ChainID) ([]string, error)
}

// Transient wraps err as a retryable gateway failure
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrChainGatewayTransient, err)
}

// Permanent wraps err as a gateway failure that will not succeed on retry
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrChainGatewayPermanent, err)
}

// IsTransient reports whether err is a retryable gateway failure
func IsTransient(err error) bool {
	return errors.Is(err, domain.ErrChainGatewayTransient)
}

// IsPermanent reports whether err is a non-retryable gateway failure
func IsPermanent(err error) bool {
	return errors.Is(err, domain.ErrChainGatewayPermanent)
}
