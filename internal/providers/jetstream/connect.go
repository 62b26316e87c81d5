package jetstream

import (
	"context"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/config"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/messaging"
)

// Connect builds the ownership event publisher from configuration.
// An empty URL yields a publisher that drops every event.
func Connect(ctx context.Context, cfg config.NATSConfig, service string, natsJS adapter.NatsJetStream) (messaging.Publisher, error) {
	if cfg.URL == "" {
		logger.WarnCtx(ctx, "NATS URL not configured, ownership events will not be published")
		return messaging.NewNoopPublisher(), nil
	}

	connectionName := cfg.ConnectionName
	if connectionName == "" {
		connectionName = service
	}

	return NewPublisher(ctx, Config{
		URL:            cfg.URL,
		StreamName:     cfg.StreamName,
		SubjectPrefix:  cfg.SubjectPrefix,
		MaxReconnects:  cfg.MaxReconnects,
		ReconnectWait:  cfg.ReconnectWait,
		ConnectionName: connectionName,
	}, natsJS, adapter.NewJSON())
}
