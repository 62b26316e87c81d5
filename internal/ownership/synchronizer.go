package ownership

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/chain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/config"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/metrics"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store/schema"
)

// TrackedContracts is the per chain allow-list of contracts a wallet sync queries
type TrackedContracts map[domain.ChainID][]string

// NewTrackedContracts builds the allow-list from configuration, dropping invalid and duplicate addresses
func NewTrackedContracts(cfgs []config.TrackedContractsConfig) TrackedContracts {
	tracked := make(TrackedContracts)
	seen := make(map[string]struct{})
	for _, cfg := range cfgs {
		for _, address := range domain.NormalizeAddresses(cfg.Contracts) {
			key := fmt.Sprintf("%d:%s", cfg.ChainID, address)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tracked[cfg.ChainID] = append(tracked[cfg.ChainID], address)
		}
	}
	return tracked
}

// SyncResult summarizes one wallet synchronization
type SyncResult struct {
	WalletID   uint64 `json:"wallet_id"`
	Discovered int    `json:"discovered"`
	Upserted   int    `json:"upserted"`
	Failed     int    `json:"failed"`
}

// Synchronizer pulls a wallet's holdings from the chain gateway into owned assets
//
//go:generate mockgen -source=synchronizer.go -destination=../mocks/synchronizer.go -package=mocks -mock_names=Synchronizer=MockSynchronizer
type Synchronizer interface {
	// SyncWallet upserts every tracked token currently held by the wallet.
	// Per token failures are counted in the result, not returned.
	SyncWallet(ctx context.Context, walletID uint64) (*SyncResult, error)
}

type synchronizer struct {
	store   store.Store
	gateway chain.Gateway
	clock   adapter.Clock
	tracked TrackedContracts
}

// NewSynchronizer creates a new ownership synchronizer
func NewSynchronizer(st store.Store, gateway chain.Gateway, clock adapter.Clock, tracked TrackedContracts) Synchronizer {
	return &synchronizer{
		store:   st,
		gateway: gateway,
		clock:   clock,
		tracked: tracked,
	}
}

// SyncWallet synchronizes the wallet's holdings
func (s *synchronizer) SyncWallet(ctx context.Context, walletID uint64) (*SyncResult, error) {
	wallet, err := s.store.GetWalletByID(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrWalletNotFound, walletID)
	}

	result := &SyncResult{WalletID: walletID}
	chainLabel := wallet.ChainID.String()

	contracts := s.tracked[wallet.ChainID]
	if len(contracts) == 0 {
		logger.DebugCtx(ctx, "No tracked contracts for chain, skipping sync",
			zap.Uint64("wallet_id", walletID),
			zap.Int64("chain_id", int64(wallet.ChainID)))
		metrics.SyncRunsTotal.WithLabelValues(chainLabel, "skipped").Inc()
		return result, nil
	}

	tokens, err := s.gateway.GetOwnedTokens(ctx, wallet.WalletAddress, wallet.ChainID, contracts)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues(chainLabel, "failed").Inc()
		return nil, fmt.Errorf("failed to get owned tokens: %w", err)
	}
	result.Discovered = len(tokens)

	collections := make(map[string]*schema.Collection)
	for _, token := range tokens {
		if err := ctx.Err(); err != nil {
			metrics.SyncRunsTotal.WithLabelValues(chainLabel, "canceled").Inc()
			return result, err
		}

		if err := s.syncToken(ctx, wallet, token, collections); err != nil {
			result.Failed++
			logger.WarnCtx(ctx, "Failed to sync owned token",
				zap.Error(err),
				zap.Uint64("wallet_id", walletID),
				zap.String("contract", token.ContractAddress),
				zap.String("token_id", token.TokenIDHex))
			continue
		}
		result.Upserted++
	}

	metrics.SyncAssetsUpserted.WithLabelValues(chainLabel).Add(float64(result.Upserted))
	metrics.SyncRunsTotal.WithLabelValues(chainLabel, "ok").Inc()

	logger.InfoCtx(ctx, "Wallet synchronized",
		zap.Uint64("wallet_id", walletID),
		zap.Int("discovered", result.Discovered),
		zap.Int("upserted", result.Upserted),
		zap.Int("failed", result.Failed))

	return result, nil
}

func (s *synchronizer) syncToken(ctx context.Context, wallet *schema.Wallet, token chain.OwnedToken, collections map[string]*schema.Collection) error {
	tokenID, err := domain.NormalizeTokenID(token.TokenIDHex)
	if err != nil {
		return err
	}

	collection, ok := collections[token.ContractAddress]
	if !ok {
		collection, err = s.resolveCollection(ctx, wallet.ChainID, token)
		if err != nil {
			return err
		}
		collections[token.ContractAddress] = collection
	}

	_, err = s.store.UpsertOwnedAsset(ctx, store.UpsertOwnedAssetInput{
		UserID:       wallet.UserID,
		CollectionID: collection.ID,
		WalletID:     wallet.ID,
		TokenID:      tokenID,
		Metadata:     toSchemaMetadata(token.Metadata),
		VerifiedAt:   s.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert owned asset: %w", err)
	}
	return nil
}

// resolveCollection returns the stored collection, creating it on first sight.
// A collection stored with the placeholder name gets another metadata attempt.
func (s *synchronizer) resolveCollection(ctx context.Context, chainID domain.ChainID, token chain.OwnedToken) (*schema.Collection, error) {
	existing, err := s.store.GetCollection(ctx, token.ContractAddress, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	if existing != nil && !existing.HasPlaceholderName() {
		return existing, nil
	}

	input := s.collectionInput(ctx, chainID, token)

	if existing != nil {
		if input.Name == domain.UNKNOWN_COLLECTION_NAME {
			return existing, nil
		}
		if err := s.store.UpdateCollectionMetadata(ctx, existing.ID, input); err != nil {
			// The asset can still be linked to the placeholder row
			logger.WarnCtx(ctx, "Failed to refresh collection metadata",
				zap.Error(err),
				zap.Uint64("collection_id", existing.ID))
		}
		return existing, nil
	}

	collection, err := s.store.EnsureCollection(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}
	return collection, nil
}

// collectionInput fetches contract metadata, degrading to the placeholder name on failure
func (s *synchronizer) collectionInput(ctx context.Context, chainID domain.ChainID, token chain.OwnedToken) store.EnsureCollectionInput {
	input := store.EnsureCollectionInput{
		Address:       token.ContractAddress,
		ChainID:       chainID,
		Name:          domain.UNKNOWN_COLLECTION_NAME,
		TokenStandard: domain.ParseTokenStandard(token.TokenType),
	}

	md, err := s.gateway.GetContractMetadata(ctx, token.ContractAddress, chainID)
	if err != nil {
		logger.WarnCtx(ctx, "Contract metadata unavailable, using placeholder name",
			zap.Error(err),
			zap.String("contract", token.ContractAddress),
			zap.Int64("chain_id", int64(chainID)))
		return input
	}

	if md.Name != "" {
		input.Name = md.Name
	}
	if standard := domain.ParseTokenStandard(md.TokenType); standard != domain.StandardUnknown {
		input.TokenStandard = standard
	}
	input.Metadata = schema.ContractMetadata{
		Name:        md.Name,
		Symbol:      md.Symbol,
		TokenType:   md.TokenType,
		TotalSupply: md.TotalSupply,
	}
	return input
}

func toSchemaMetadata(md chain.TokenMetadata) schema.TokenMetadata {
	out := schema.TokenMetadata{
		Name:         md.Name,
		Description:  md.Description,
		Image:        md.Image,
		AnimationURL: md.AnimationURL,
		ExternalURL:  md.ExternalURL,
		TokenURI:     md.TokenURI,
	}
	for _, attr := range md.Attributes {
		out.Attributes = append(out.Attributes, schema.Attribute{
			TraitType:   attr.TraitType,
			Value:       attr.Value,
			DisplayType: attr.DisplayType,
		})
	}
	return out
}
