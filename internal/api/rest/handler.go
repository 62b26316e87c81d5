package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/api/middleware"
	"github.com/henrymaxel/platform-mvp-sub000/internal/api/shared/dto"
	"github.com/henrymaxel/platform-mvp-sub000/internal/asset"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/sweeper"
	"github.com/henrymaxel/platform-mvp-sub000/internal/wallet"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RequestChallenge returns the message to sign for an address
	// POST /api/v1/wallets/challenge
	RequestChallenge(c *gin.Context)

	// ConnectWallet verifies a signed challenge and connects the wallet
	// POST /api/v1/wallets
	ConnectWallet(c *gin.Context)

	// ListWallets lists the user's wallets
	// GET /api/v1/wallets
	ListWallets(c *gin.Context)

	// DisconnectWallet removes a wallet and its owned assets
	// DELETE /api/v1/wallets/:id
	DisconnectWallet(c *gin.Context)

	// SetPrimaryWallet makes the wallet the user's primary wallet
	// PUT /api/v1/wallets/:id/primary
	SetPrimaryWallet(c *gin.Context)

	// RefreshWallet schedules another synchronization of the wallet
	// POST /api/v1/wallets/:id/refresh
	RefreshWallet(c *gin.Context)

	// ListAssets lists the user's owned assets
	// GET /api/v1/assets
	ListAssets(c *gin.Context)

	// RemoveAsset removes an owned asset
	// DELETE /api/v1/assets/:id
	RemoveAsset(c *gin.Context)

	// BindAsset binds an owned asset to a character profile
	// POST /api/v1/assets/:id/bindings
	BindAsset(c *gin.Context)

	// ListNotifications lists the user's notifications
	// GET /api/v1/notifications?unread=<bool>&limit=<limit>
	ListNotifications(c *gin.Context)

	// MarkNotificationRead marks a notification read
	// PUT /api/v1/notifications/:id/read
	MarkNotificationRead(c *gin.Context)

	// VerifyOwnership runs an ownership sweep followed by royalty reconciliation
	// POST /api/v1/internal/ownership/verify
	VerifyOwnership(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	wallets wallet.Registry
	assets  asset.Service
	sweeper sweeper.OwnershipSweeper
	clock   adapter.Clock

	sweepTimeout time.Duration
}

// sweepResponseGrace leaves room to write the result of a sweep that used its whole timeout
const sweepResponseGrace = 10 * time.Second

// NewHandler creates a new REST API handler.
// sweepTimeout bounds a triggered sweep and extends that response's write deadline; zero keeps the server's.
func NewHandler(wallets wallet.Registry, assets asset.Service, ownershipSweeper sweeper.OwnershipSweeper, clock adapter.Clock, sweepTimeout time.Duration) Handler {
	return &handler{
		wallets:      wallets,
		assets:       assets,
		sweeper:      ownershipSweeper,
		clock:        clock,
		sweepTimeout: sweepTimeout,
	}
}

func (h *handler) RequestChallenge(c *gin.Context) {
	var req dto.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	challenge, err := h.wallets.Challenge(req.Address, req.ChainID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

func (h *handler) ConnectWallet(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req dto.ConnectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	connected, err := h.wallets.Connect(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		respondError(c, err, zap.String("user_id", userID.String()))
		return
	}

	c.JSON(http.StatusOK, connected)
}

func (h *handler) ListWallets(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	wallets, err := h.wallets.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, zap.String("user_id", userID.String()))
		return
	}

	c.JSON(http.StatusOK, dto.WalletListResponse{Wallets: wallets})
}

func (h *handler) DisconnectWallet(c *gin.Context) {
	h.walletAction(c, h.wallets.Disconnect)
}

func (h *handler) SetPrimaryWallet(c *gin.Context) {
	h.walletAction(c, h.wallets.SetPrimary)
}

func (h *handler) RefreshWallet(c *gin.Context) {
	h.walletAction(c, h.wallets.Refresh)
}

// walletAction runs a registry call scoped to the user's wallet from the path
func (h *handler) walletAction(c *gin.Context, action func(ctx context.Context, userID uuid.UUID, walletID uint64) error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}
	walletID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := action(c.Request.Context(), userID, walletID); err != nil {
		respondError(c, err, zap.String("user_id", userID.String()), zap.Uint64("wallet_id", walletID))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *handler) ListAssets(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	assets, err := h.assets.ListOwned(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, zap.String("user_id", userID.String()))
		return
	}

	c.JSON(http.StatusOK, dto.AssetListResponse{Assets: assets})
}

func (h *handler) RemoveAsset(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.assets.Remove(c.Request.Context(), userID, assetID); err != nil {
		respondError(c, err, zap.String("user_id", userID.String()), zap.Uint64("asset_id", assetID))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *handler) BindAsset(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req dto.BindAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	binding, err := h.assets.Bind(c.Request.Context(), req.ToInput(userID, assetID))
	if err != nil {
		respondError(c, err, zap.String("user_id", userID.String()), zap.Uint64("asset_id", assetID))
		return
	}

	c.JSON(http.StatusCreated, binding)
}

func (h *handler) ListNotifications(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	params, err := ParseListNotificationsQuery(c)
	if err != nil {
		respondValidationError(c, err)
		return
	}

	notifications, err := h.assets.Notifications(c.Request.Context(), userID, params.UnreadOnly, params.Limit)
	if err != nil {
		respondError(c, err, zap.String("user_id", userID.String()))
		return
	}

	c.JSON(http.StatusOK, dto.NotificationListResponse{Notifications: notifications})
}

func (h *handler) MarkNotificationRead(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}
	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.assets.MarkNotificationRead(c.Request.Context(), userID, notificationID); err != nil {
		respondError(c, err, zap.String("user_id", userID.String()))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *handler) VerifyOwnership(c *gin.Context) {
	// A disconnecting caller does not abort a sweep that already started
	ctx := context.WithoutCancel(c.Request.Context())
	if h.sweepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.sweepTimeout)
		defer cancel()

		// The socket deadline is wall clock time
		deadline := time.Now().Add(h.sweepTimeout + sweepResponseGrace)
		if err := http.NewResponseController(c.Writer).SetWriteDeadline(deadline); err != nil {
			logger.WarnCtx(ctx, "Cannot extend write deadline for ownership sweep", zap.Error(err))
		}
	}

	result, err := h.sweeper.Run(ctx, sweeper.TriggerManual)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("trigger", sweeper.TriggerManual))
		response := dto.VerifyOwnershipResponse{Success: false}
		if result != nil && result.Sweep != nil {
			response.Verified = result.Sweep.Verified
			response.Failed = result.Sweep.Failed
		}
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyOwnershipResponse{
		Success:  true,
		Verified: result.Sweep.Verified,
		Failed:   result.Sweep.Failed,
		SweepID:  result.Sweep.SweepID,
		Lost:     result.Sweep.Lost,
		Regained: result.Sweep.Regained,
	})
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: h.clock.Now(),
	})
}
