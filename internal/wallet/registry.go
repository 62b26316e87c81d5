package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ownership"
	"github.com/henrymaxel/platform-mvp-sub000/internal/signature"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store/schema"
)

// ConnectInput is a wallet connect request together with its ownership proof
type ConnectInput struct {
	UserID     uuid.UUID
	Address    string
	ChainID    domain.ChainID
	WalletType string
	Message    string
	Signature  string
	// Timestamp is the challenge timestamp in unix milliseconds
	Timestamp int64
}

// Challenge is the message a user signs to prove control of an address
type Challenge struct {
	Address   string         `json:"address"`
	ChainID   domain.ChainID `json:"chain_id"`
	Message   string         `json:"message"`
	Timestamp int64          `json:"timestamp"`
}

// Registry owns the wallets of each user
//
//go:generate mockgen -source=registry.go -destination=../mocks/wallet_registry.go -package=mocks -mock_names=Registry=MockWalletRegistry
type Registry interface {
	// Challenge builds a fresh challenge for the address
	Challenge(address string, chainID domain.ChainID) (*Challenge, error)

	// Connect verifies the proof, stores the wallet and schedules its synchronization
	Connect(ctx context.Context, input ConnectInput) (*schema.Wallet, error)

	// Disconnect removes the wallet and its owned assets
	Disconnect(ctx context.Context, userID uuid.UUID, walletID uint64) error

	// SetPrimary makes the wallet the user's primary wallet
	SetPrimary(ctx context.Context, userID uuid.UUID, walletID uint64) error

	// List lists the user's wallets ordered by creation
	List(ctx context.Context, userID uuid.UUID) ([]schema.Wallet, error)

	// Refresh schedules another synchronization of an owned wallet
	Refresh(ctx context.Context, userID uuid.UUID, walletID uint64) error
}

type registry struct {
	store      store.Store
	verifier   signature.Verifier
	dispatcher ownership.Dispatcher
	clock      adapter.Clock
}

// NewRegistry creates a new wallet registry
func NewRegistry(st store.Store, verifier signature.Verifier, dispatcher ownership.Dispatcher, clock adapter.Clock) Registry {
	return &registry{
		store:      st,
		verifier:   verifier,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

// Challenge builds the challenge message for the address at the current time
func (r *registry) Challenge(address string, chainID domain.ChainID) (*Challenge, error) {
	normalized, err := validate(address, chainID)
	if err != nil {
		return nil, err
	}

	timestamp := r.clock.Now().UnixMilli()
	return &Challenge{
		Address:   normalized,
		ChainID:   chainID,
		Message:   signature.ChallengeMessage(normalized, chainID, timestamp),
		Timestamp: timestamp,
	}, nil
}

// Connect verifies the signed challenge and upserts the wallet
func (r *registry) Connect(ctx context.Context, input ConnectInput) (*schema.Wallet, error) {
	address, err := validate(input.Address, input.ChainID)
	if err != nil {
		return nil, err
	}

	if err := r.verifier.Verify(address, input.ChainID, input.Message, input.Signature, input.Timestamp); err != nil {
		logger.InfoCtx(ctx, "Wallet signature rejected",
			zap.String("user_id", input.UserID.String()),
			zap.String("address", address),
			zap.Error(err))
		return nil, err
	}

	result, err := r.store.UpsertWallet(ctx, store.UpsertWalletInput{
		UserID:     input.UserID,
		Address:    address,
		ChainID:    input.ChainID,
		WalletType: domain.ParseWalletType(input.WalletType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert wallet: %w", err)
	}

	logger.InfoCtx(ctx, "Wallet connected",
		zap.String("user_id", input.UserID.String()),
		zap.Uint64("wallet_id", result.Wallet.ID),
		zap.Bool("created", result.Created),
		zap.Bool("primary", result.Wallet.IsPrimary))

	r.dispatch(ctx, result.Wallet.ID)

	return result.Wallet, nil
}

// Disconnect removes an owned wallet
func (r *registry) Disconnect(ctx context.Context, userID uuid.UUID, walletID uint64) error {
	if err := r.store.DeleteWallet(ctx, userID, walletID); err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete wallet: %w", err)
	}

	logger.InfoCtx(ctx, "Wallet disconnected",
		zap.String("user_id", userID.String()),
		zap.Uint64("wallet_id", walletID))
	return nil
}

// SetPrimary reassigns the primary wallet
func (r *registry) SetPrimary(ctx context.Context, userID uuid.UUID, walletID uint64) error {
	if err := r.store.SetPrimaryWallet(ctx, userID, walletID); err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return err
		}
		return fmt.Errorf("failed to set primary wallet: %w", err)
	}
	return nil
}

// List lists the user's wallets
func (r *registry) List(ctx context.Context, userID uuid.UUID) ([]schema.Wallet, error) {
	wallets, err := r.store.ListWalletsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

// Refresh re-dispatches synchronization for an owned wallet
func (r *registry) Refresh(ctx context.Context, userID uuid.UUID, walletID uint64) error {
	wallet, err := r.store.GetWalletForUser(ctx, userID, walletID)
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet == nil {
		return domain.ErrWalletNotFound
	}

	r.dispatch(ctx, wallet.ID)
	return nil
}

// dispatch schedules a synchronization; failures are logged, never returned
func (r *registry) dispatch(ctx context.Context, walletID uint64) {
	if err := r.dispatcher.DispatchWalletSync(ctx, walletID); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to dispatch wallet sync: %w", err), zap.Uint64("wallet_id", walletID))
	}
}

func validate(address string, chainID domain.ChainID) (string, error) {
	if !domain.IsValidChain(chainID) {
		return "", fmt.Errorf("%w: %d", domain.ErrUnsupportedChain, int64(chainID))
	}
	return domain.NormalizeAddress(address)
}
