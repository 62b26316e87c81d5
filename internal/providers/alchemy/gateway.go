package alchemy

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/chain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/config"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ratelimit"
	"github.com/henrymaxel/platform-mvp-sub000/internal/registry"
)

// NewGateway wires the Alchemy client with its HTTP client, rate limiter and the optional spam registry
func NewGateway(cfg config.AlchemyConfig, spamRegistryPath string, fs adapter.FileSystem, json adapter.JSON) (chain.Gateway, error) {
	var spam registry.SpamRegistry
	if spamRegistryPath != "" {
		loaded, err := registry.NewSpamRegistryLoader(fs, json).Load(spamRegistryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load spam registry: %w", err)
		}
		spam = loaded
		logger.Info("Loaded spam registry", zap.String("path", spamRegistryPath))
	} else {
		logger.Warn("Spam registry path not configured, no contracts will be filtered")
	}

	httpClient := adapter.NewHTTPClient(cfg.Timeout, adapter.RetryPolicy{})
	limiter := ratelimit.NewLimiter("alchemy", cfg.RequestsPerSecond, cfg.Burst)

	return NewClient(cfg, httpClient, limiter, spam), nil
}
