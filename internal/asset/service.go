package asset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/config"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store"
	"github.com/henrymaxel/platform-mvp-sub000/internal/store/schema"
)

// MaxNotificationLimit caps a single notifications listing
const MaxNotificationLimit = 100

// ErrInvalidProfileName is returned when a binding has no profile name
var ErrInvalidProfileName = errors.New("profile name is required")

// BindInput represents the input for binding an owned asset to a character profile
type BindInput struct {
	UserID       uuid.UUID
	OwnedAssetID uint64
	ProjectID    *uint64
	ProfileName  string
}

// Service exposes a user's owned assets, their bindings and ownership notifications
//
//go:generate mockgen -source=service.go -destination=../mocks/asset_service.go -package=mocks -mock_names=Service=MockAssetService
type Service interface {
	// ListOwned lists the user's owned assets, including those whose ownership was lost
	ListOwned(ctx context.Context, userID uuid.UUID) ([]store.OwnedAssetView, error)
	// Remove deletes an owned asset and detaches its royalty records
	Remove(ctx context.Context, userID uuid.UUID, assetID uint64) error
	// Bind binds an owned asset to a profile within the user's subscription limit
	Bind(ctx context.Context, input BindInput) (*schema.AssetBinding, error)
	// Notifications lists the user's notifications, newest first
	Notifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]schema.Notification, error)
	// MarkNotificationRead marks a notification read
	MarkNotificationRead(ctx context.Context, userID uuid.UUID, notificationID uint64) error
}

type service struct {
	store        store.Store
	subscription config.SubscriptionConfig
}

// NewService creates a new asset service
func NewService(st store.Store, subscription config.SubscriptionConfig) Service {
	return &service{
		store:        st,
		subscription: subscription,
	}
}

func (s *service) ListOwned(ctx context.Context, userID uuid.UUID) ([]store.OwnedAssetView, error) {
	assets, err := s.store.ListOwnedAssetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned assets: %w", err)
	}
	return assets, nil
}

func (s *service) Remove(ctx context.Context, userID uuid.UUID, assetID uint64) error {
	if err := s.store.DeleteOwnedAsset(ctx, userID, assetID); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Owned asset removed",
		zap.String("user_id", userID.String()),
		zap.Uint64("asset_id", assetID),
	)
	return nil
}

func (s *service) Bind(ctx context.Context, input BindInput) (*schema.AssetBinding, error) {
	profileName := strings.TrimSpace(input.ProfileName)
	if profileName == "" {
		return nil, ErrInvalidProfileName
	}

	limit, err := s.bindingLimit(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	binding, err := s.store.CreateAssetBinding(ctx, store.CreateAssetBindingInput{
		UserID:       input.UserID,
		OwnedAssetID: input.OwnedAssetID,
		ProjectID:    input.ProjectID,
		ProfileName:  profileName,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}
	return binding, nil
}

// bindingLimit resolves the user's tier to its configured limit
func (s *service) bindingLimit(ctx context.Context, userID uuid.UUID) (int, error) {
	tier, err := s.store.GetSubscriptionTier(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get subscription tier: %w", err)
	}
	if tier == "" {
		tier = s.subscription.DefaultTier
	}
	return s.subscription.BindingLimit(tier), nil
}

func (s *service) Notifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]schema.Notification, error) {
	if limit > MaxNotificationLimit {
		limit = MaxNotificationLimit
	}
	notifications, err := s.store.ListNotifications(ctx, userID, store.NotificationFilter{
		UnreadOnly: unreadOnly,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *service) MarkNotificationRead(ctx context.Context, userID uuid.UUID, notificationID uint64) error {
	return s.store.MarkNotificationRead(ctx, userID, notificationID)
}
