package dto

import (
	"strings"

	"github.com/google/uuid"

	apierrors "github.com/henrymaxel/platform-mvp-sub000/internal/api/shared/errors"
	"github.com/henrymaxel/platform-mvp-sub000/internal/asset"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/wallet"
)

// ChallengeRequest represents the request body for requesting a wallet challenge
type ChallengeRequest struct {
	Address string         `json:"address"`
	ChainID domain.ChainID `json:"chain_id"`
}

// Validate validates the request body
func (r *ChallengeRequest) Validate() error {
	if strings.TrimSpace(r.Address) == "" {
		return apierrors.NewValidationError("address is required")
	}
	if r.ChainID == 0 {
		return apierrors.NewValidationError("chain_id is required")
	}
	return nil
}

// ConnectWalletRequest represents the request body for connecting a wallet
type ConnectWalletRequest struct {
	Address    string         `json:"address"`
	ChainID    domain.ChainID `json:"chain_id"`
	WalletType string         `json:"wallet_type"`
	Message    string         `json:"message"`
	Signature  string         `json:"signature"`
	Timestamp  int64          `json:"timestamp"`
}

// Validate validates the request body
func (r *ConnectWalletRequest) Validate() error {
	if strings.TrimSpace(r.Address) == "" {
		return apierrors.NewValidationError("address is required")
	}
	if r.ChainID == 0 {
		return apierrors.NewValidationError("chain_id is required")
	}
	if r.Message == "" || r.Signature == "" {
		return apierrors.NewValidationError("message and signature are required")
	}
	if r.Timestamp <= 0 {
		return apierrors.NewValidationError("timestamp is required")
	}
	return nil
}

// ToInput converts the request into a registry input for the user
func (r *ConnectWalletRequest) ToInput(userID uuid.UUID) wallet.ConnectInput {
	return wallet.ConnectInput{
		UserID:     userID,
		Address:    r.Address,
		ChainID:    r.ChainID,
		WalletType: r.WalletType,
		Message:    r.Message,
		Signature:  r.Signature,
		Timestamp:  r.Timestamp,
	}
}

// BindAssetRequest represents the request body for binding an asset to a character profile
type BindAssetRequest struct {
	ProjectID   *uint64 `json:"project_id"`
	ProfileName string  `json:"profile_name"`
}

// Validate validates the request body
func (r *BindAssetRequest) Validate() error {
	if strings.TrimSpace(r.ProfileName) == "" {
		return apierrors.NewValidationError("profile_name is required")
	}
	return nil
}

// ToInput converts the request into a binding input for the user's asset
func (r *BindAssetRequest) ToInput(userID uuid.UUID, assetID uint64) asset.BindInput {
	return asset.BindInput{
		UserID:       userID,
		OwnedAssetID: assetID,
		ProjectID:    r.ProjectID,
		ProfileName:  r.ProfileName,
	}
}
