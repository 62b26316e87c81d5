package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/henrymaxel/platform-mvp-sub000/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authenticator *middleware.Authenticator, sweepSecret string) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	// User routes (JWT)
	user := v1.Group("", middleware.Auth(authenticator))
	{
		user.POST("/wallets/challenge", handler.RequestChallenge)
		user.POST("/wallets", handler.ConnectWallet)
		user.GET("/wallets", handler.ListWallets)
		user.DELETE("/wallets/:id", handler.DisconnectWallet)
		user.PUT("/wallets/:id/primary", handler.SetPrimaryWallet)
		user.POST("/wallets/:id/refresh", handler.RefreshWallet)

		user.GET("/assets", handler.ListAssets)
		user.DELETE("/assets/:id", handler.RemoveAsset)
		user.POST("/assets/:id/bindings", handler.BindAsset)

		user.GET("/notifications", handler.ListNotifications)
		user.PUT("/notifications/:id/read", handler.MarkNotificationRead)
	}

	// Collaborator routes (shared secret)
	internal := v1.Group("/internal", middleware.SweepSecret(sweepSecret))
	{
		internal.POST("/ownership/verify", handler.VerifyOwnership)
	}
}
