package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

// SpamRegistry defines the interface for spam collection lookups
//
//go:generate mockgen -source=spam.go -destination=../mocks/spam_registry.go -package=mocks -mock_names=SpamRegistry=MockSpamRegistry,SpamRegistryLoader=MockSpamRegistryLoader
type SpamRegistry interface {
	// IsSpam checks if a contract address is flagged as spam for a given chain
	IsSpam(chainID domain.ChainID, contractAddress string) bool
}

// SpamRegistryData represents the structure of the spam registry JSON file
// Key format: decimal chain id -> list of contract addresses
type SpamRegistryData map[string][]string

// spamRegistry is the internal implementation of SpamRegistry interface
type spamRegistry struct {
	// Fast lookup map: "chain:contract" -> true
	contracts map[string]bool
}

// SpamRegistryLoader defines the interface for loading spam registries from files
type SpamRegistryLoader interface {
	// Load loads the spam registry from a JSON file
	Load(filePath string) (SpamRegistry, error)
}

type spamRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewSpamRegistryLoader creates a new SpamRegistryLoader with injected dependencies
func NewSpamRegistryLoader(fs adapter.FileSystem, json adapter.JSON) SpamRegistryLoader {
	return &spamRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// Load loads the spam registry from a JSON file
func (l *spamRegistryLoader) Load(filePath string) (SpamRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spam registry file: %w", err)
	}

	var registryData SpamRegistryData
	if err := l.json.Unmarshal(data, &registryData); err != nil {
		return nil, fmt.Errorf("failed to parse spam registry JSON: %w", err)
	}

	return NewSpamRegistry(registryData)
}

// NewSpamRegistry builds a registry from already parsed data
func NewSpamRegistry(data SpamRegistryData) (SpamRegistry, error) {
	reg := &spamRegistry{
		contracts: make(map[string]bool),
	}

	for chain, addresses := range data {
		chainID, err := strconv.ParseInt(strings.TrimSpace(chain), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id %q in spam registry: %w", chain, err)
		}

		for _, addr := range addresses {
			reg.contracts[spamKey(domain.ChainID(chainID), addr)] = true
		}
	}

	return reg, nil
}

func spamKey(chainID domain.ChainID, contractAddress string) string {
	return fmt.Sprintf("%d:%s", int64(chainID), strings.ToLower(strings.TrimSpace(contractAddress)))
}

// IsSpam checks if a contract address is flagged as spam for a given chain
func (r *spamRegistry) IsSpam(chainID domain.ChainID, contractAddress string) bool {
	if r == nil {
		return false
	}
	return r.contracts[spamKey(chainID, contractAddress)]
}
