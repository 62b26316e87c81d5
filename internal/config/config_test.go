package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9000
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
auth:
  jwt_public_key: "pem"
  sweep_secret: "s3cret"
alchemy:
  api_key: "alchemy-key"
  requests_per_second: 5
ownership:
  spam_registry_path: "config/spam.json"
  tracked_contracts:
    - chain_id: 1
      contracts:
        - "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"
    - chain_id: 137
      contracts:
        - "0x2953399124F0cBB46d2CbACD8A89cF0599974963"
signature:
  max_age: 10m
subscription:
  default_tier: free
  binding_limits:
    free: 1
    pro: 10
sync:
  dispatcher: temporal
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, DatabaseDriverPostgres, cfg.Database.Driver)
				assert.Equal(t, "s3cret", cfg.Auth.SweepSecret)
				assert.Equal(t, "alchemy-key", cfg.Alchemy.APIKey)
				assert.Equal(t, float64(5), cfg.Alchemy.RequestsPerSecond)
				assert.Equal(t, 10*time.Minute, cfg.Signature.MaxAge)
				assert.Equal(t, DispatcherTemporal, cfg.Sync.Dispatcher)

				require.Len(t, cfg.Ownership.TrackedContracts, 2)
				assert.Equal(t, domain.ChainEthereumMainnet, cfg.Ownership.TrackedContracts[0].ChainID)
				assert.Equal(t, []string{"0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"}, cfg.Ownership.TrackedContracts[0].Contracts)
				assert.Equal(t, domain.ChainPolygon, cfg.Ownership.TrackedContracts[1].ChainID)

				assert.Equal(t, 1, cfg.Subscription.BindingLimit("free"))
				assert.Equal(t, 10, cfg.Subscription.BindingLimit("PRO"))
				assert.Equal(t, 1, cfg.Subscription.BindingLimit("unknown"))
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, time.Duration(0), cfg.Signature.MaxAge)
				assert.Equal(t, DispatcherLocal, cfg.Sync.Dispatcher)
				assert.Equal(t, 10, cfg.Sync.Worker.WorkerPoolSize)
				assert.Equal(t, 15*time.Second, cfg.Alchemy.Timeout)
				assert.Equal(t, "https://%s.g.alchemy.com/nft/v2/%s", cfg.Alchemy.BaseURL)
				assert.Equal(t, "wallet-sync", cfg.Temporal.SyncTaskQueue)
				assert.Equal(t, 3, cfg.Subscription.BindingLimit("free"))
				assert.Equal(t, -1, cfg.Subscription.BindingLimit("studio"))
				assert.Equal(t, 20*time.Second, cfg.OwnershipSweeper.AssetTimeout)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SweeperConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: localhost
  dbname: testdb
ownership_sweeper:
  schedule: "0 */30 * * * *"
  batch_size: 50
  asset_timeout: 5s
  worker:
    pool_size: 4
    queue_size: 16
metrics:
  listen_addr: ":9100"
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, "0 */30 * * * *", cfg.OwnershipSweeper.Schedule)
				assert.Equal(t, 50, cfg.OwnershipSweeper.BatchSize)
				assert.Equal(t, 5*time.Second, cfg.OwnershipSweeper.AssetTimeout)
				assert.Equal(t, 4, cfg.OwnershipSweeper.Worker.WorkerPoolSize)
				assert.Equal(t, 16, cfg.OwnershipSweeper.Worker.WorkerQueueSize)
				assert.True(t, cfg.Metrics.Enabled)
				assert.Equal(t, ":9100", cfg.Metrics.ListenAddr)
				assert.Equal(t, 10, cfg.Database.MaxOpenConns)
				assert.Equal(t, "OWNERSHIP_EVENTS", cfg.NATS.StreamName)
			},
		},
		{
			name: "sqlite driver",
			configFile: `
database:
  driver: sqlite
  path: /tmp/wallets.db
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, DatabaseDriverSQLite, cfg.Database.Driver)
				assert.Equal(t, "/tmp/wallets.db", cfg.Database.DSN())
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "unsupported driver",
			configFile: `
database:
  driver: mysql
  host: localhost
  dbname: testdb
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadSweeperConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSyncWorkerConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(`
database:
  host: localhost
  dbname: testdb
temporal:
  host_port: "temporal:7233"
  sync_task_queue: "custom-sync"
`), 0600)
	require.NoError(t, err)

	cfg, err := LoadSyncWorkerConfig(configFile, tmpDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
	assert.Equal(t, "custom-sync", cfg.Temporal.SyncTaskQueue)
	assert.Equal(t, "default", cfg.Temporal.Namespace)
	assert.Equal(t, 2*time.Minute, cfg.Sync.Timeout)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
		{
			name: "sqlite",
			config: DatabaseConfig{
				Driver: DatabaseDriverSQLite,
				Path:   "file::memory:?cache=shared",
			},
			expected: "file::memory:?cache=shared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Viper uses the WALLET_SYNC_ prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `WALLET_SYNC_DATABASE_HOST=env-host
WALLET_SYNC_DATABASE_PORT=6543
WALLET_SYNC_AUTH_SWEEP_SECRET=env-secret
WALLET_SYNC_SIGNATURE_MAX_AGE=5m
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Unsetenv("WALLET_SYNC_DATABASE_HOST")
		_ = os.Unsetenv("WALLET_SYNC_DATABASE_PORT")
		_ = os.Unsetenv("WALLET_SYNC_AUTH_SWEEP_SECRET")
		_ = os.Unsetenv("WALLET_SYNC_SIGNATURE_MAX_AGE")
	})

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
database:
  host: file-host
  port: 5432
  dbname: file-db
auth:
  sweep_secret: file-secret
`
	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Values from the .env file override the config file
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "file-db", cfg.Database.DBName)
	assert.Equal(t, "env-secret", cfg.Auth.SweepSecret)
	assert.Equal(t, 5*time.Minute, cfg.Signature.MaxAge)
}
