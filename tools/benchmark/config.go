package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileConfig is the optional connection file, read from -config or ~/.wallet-sync-report.json
type FileConfig struct {
	TemporalHost string `json:"temporal_host"`
	Namespace    string `json:"namespace"`
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// defaultConfigPath returns the per-user config path, or "" when it does not exist
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".wallet-sync-report.json")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
