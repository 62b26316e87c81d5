package dto

import (
	"time"

	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store/schema"
)

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// WalletListResponse lists the user's wallets
type WalletListResponse struct {
	Wallets []schema.Wallet `json:"wallets"`
}

// AssetListResponse lists the user's owned assets
type AssetListResponse struct {
	Assets []store.OwnedAssetView `json:"assets"`
}

// NotificationListResponse lists the user's notifications
type NotificationListResponse struct {
	Notifications []schema.Notification `json:"notifications"`
}

// SuccessResponse acknowledges a state change with no body
type SuccessResponse struct {
	Success bool `json:"success"`
}

// VerifyOwnershipResponse is the aggregate of a triggered sweep
type VerifyOwnershipResponse struct {
	Success  bool   `json:"success"`
	Verified int    `json:"verified"`
	Failed   int    `json:"failed"`
	SweepID  string `json:"sweep_id,omitempty"`
	Lost     int    `json:"lost"`
	Regained int    `json:"regained"`
}
