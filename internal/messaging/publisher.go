package messaging

import (
	"context"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

// Publisher defines the interface for publishing ownership events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishOwnershipChanged publishes an ownership transition
	PublishOwnershipChanged(ctx context.Context, event domain.OwnershipChangedEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishOwnershipChanged(ctx context.Context, event domain.OwnershipChangedEvent) error {
	return nil
}

func (noopPublisher) Close() {}
