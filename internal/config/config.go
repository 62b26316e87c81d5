package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

const (
	// DatabaseDriverPostgres selects the PostgreSQL gorm driver
	DatabaseDriverPostgres = "postgres"
	// DatabaseDriverSQLite selects the pure-Go SQLite gorm driver
	DatabaseDriverSQLite = "sqlite"

	// DispatcherLocal runs wallet synchronization in an in-process worker pool
	DispatcherLocal = "local"
	// DispatcherTemporal runs wallet synchronization as Temporal workflows
	DispatcherTemporal = "temporal"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	LogLevel  string `mapstructure:"log_level"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Path            string        `mapstructure:"path"`   // sqlite file path, ":memory:" for in-memory
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	SyncTaskQueue                      string  `mapstructure:"sync_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// AlchemyConfig holds the NFT indexer API configuration
type AlchemyConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"` // format string taking network and api key
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	PageSize          int           `mapstructure:"page_size"`
}

// TrackedContractsConfig lists the contracts synchronized for a chain
type TrackedContractsConfig struct {
	ChainID   domain.ChainID `mapstructure:"chain_id"`
	Contracts []string       `mapstructure:"contracts"`
}

// OwnershipConfig holds ownership synchronization configuration
type OwnershipConfig struct {
	TrackedContracts []TrackedContractsConfig `mapstructure:"tracked_contracts"`
	SpamRegistryPath string                   `mapstructure:"spam_registry_path"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins restricts CORS; empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string `mapstructure:"jwt_public_key"`
	SweepSecret  string `mapstructure:"sweep_secret"`
}

// SignatureConfig holds wallet signature verification configuration
type SignatureConfig struct {
	// MaxAge bounds how old a signed challenge timestamp may be. Zero disables the check.
	MaxAge time.Duration `mapstructure:"max_age"`
}

// SubscriptionConfig holds the per tier limits on asset bindings
type SubscriptionConfig struct {
	DefaultTier   string         `mapstructure:"default_tier"`
	BindingLimits map[string]int `mapstructure:"binding_limits"` // tier -> max bindings, negative means unlimited
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// SyncConfig holds post-connect synchronization configuration
type SyncConfig struct {
	Dispatcher string        `mapstructure:"dispatcher"` // local or temporal
	Worker     WorkerConfig  `mapstructure:"worker"`
	Timeout    time.Duration `mapstructure:"timeout"`
	// MaxAttempts caps temporal sync retries, 0 means unlimited
	MaxAttempts int32 `mapstructure:"max_attempts"`
}

// OwnershipSweeperConfig holds configuration for the ownership verification sweep
type OwnershipSweeperConfig struct {
	Schedule       string        `mapstructure:"schedule"` // cron expression with seconds
	RunOnStart     bool          `mapstructure:"run_on_start"`
	BatchSize      int           `mapstructure:"batch_size"`
	AssetTimeout   time.Duration `mapstructure:"asset_timeout"`
	TriggerTimeout time.Duration `mapstructure:"trigger_timeout"` // API triggered sweeps only
	Worker         WorkerConfig  `mapstructure:"worker"`
}

// MetricsConfig holds prometheus exporter configuration
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig       `mapstructure:",squash"`
	Server           ServerConfig           `mapstructure:"server"`
	Database         DatabaseConfig         `mapstructure:"database"`
	Auth             AuthConfig             `mapstructure:"auth"`
	Alchemy          AlchemyConfig          `mapstructure:"alchemy"`
	Ownership        OwnershipConfig        `mapstructure:"ownership"`
	Signature        SignatureConfig        `mapstructure:"signature"`
	Subscription     SubscriptionConfig     `mapstructure:"subscription"`
	Sync             SyncConfig             `mapstructure:"sync"`
	Temporal         TemporalConfig         `mapstructure:"temporal"`
	NATS             NATSConfig             `mapstructure:"nats"`
	OwnershipSweeper OwnershipSweeperConfig `mapstructure:"ownership_sweeper"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig       `mapstructure:",squash"`
	Database         DatabaseConfig         `mapstructure:"database"`
	Alchemy          AlchemyConfig          `mapstructure:"alchemy"`
	Ownership        OwnershipConfig        `mapstructure:"ownership"`
	NATS             NATSConfig             `mapstructure:"nats"`
	OwnershipSweeper OwnershipSweeperConfig `mapstructure:"ownership_sweeper"`
	Metrics          MetricsConfig          `mapstructure:"metrics"`
}

// SyncWorkerConfig holds configuration for the temporal sync worker
type SyncWorkerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Alchemy    AlchemyConfig   `mapstructure:"alchemy"`
	Ownership  OwnershipConfig `mapstructure:"ownership"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	Sync       SyncConfig      `mapstructure:"sync"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setAlchemyDefaults(v)
	setTemporalDefaults(v)
	setNATSDefaults(v)
	setSweeperDefaults(v)
	v.SetDefault("signature.max_age", "0s")
	v.SetDefault("subscription.default_tier", "free")
	v.SetDefault("subscription.binding_limits", map[string]int{"free": 3, "pro": 25, "studio": -1})
	v.SetDefault("sync.dispatcher", DispatcherLocal)
	v.SetDefault("sync.worker.pool_size", 10)
	v.SetDefault("sync.worker.queue_size", 1000)
	v.SetDefault("sync.timeout", "2m")
	v.SetDefault("sync.max_attempts", 10)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	setAlchemyDefaults(v)
	setNATSDefaults(v)
	setSweeperDefaults(v)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.listen_addr", ":9090")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	if cfg.OwnershipSweeper.Schedule == "" {
		return nil, errors.New("ownership_sweeper.schedule is required")
	}

	return &cfg, nil
}

// LoadSyncWorkerConfig loads configuration for the temporal sync worker
func LoadSyncWorkerConfig(configFile string, envPath string) (*SyncWorkerConfig, error) {
	v := configureViper("sync-worker", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setAlchemyDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("sync.timeout", "2m")
	v.SetDefault("sync.max_attempts", 10)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config SyncWorkerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DatabaseDriverPostgres)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setAlchemyDefaults(v *viper.Viper) {
	v.SetDefault("alchemy.base_url", "https://%s.g.alchemy.com/nft/v2/%s")
	v.SetDefault("alchemy.timeout", "15s")
	v.SetDefault("alchemy.requests_per_second", 20)
	v.SetDefault("alchemy.burst", 5)
	v.SetDefault("alchemy.page_size", 100)
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.sync_task_queue", "wallet-sync")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 20)
	v.SetDefault("temporal.worker_activities_per_second", 20)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 4)
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.stream_name", "OWNERSHIP_EVENTS")
	v.SetDefault("nats.subject_prefix", "ownership")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
}

func setSweeperDefaults(v *viper.Viper) {
	v.SetDefault("ownership_sweeper.schedule", "0 0 */6 * * *")
	v.SetDefault("ownership_sweeper.batch_size", 200)
	v.SetDefault("ownership_sweeper.asset_timeout", "20s")
	v.SetDefault("ownership_sweeper.trigger_timeout", "30m")
	v.SetDefault("ownership_sweeper.worker.pool_size", 8)
	v.SetDefault("ownership_sweeper.worker.queue_size", 400)
}

// readConfig reads the config file, tolerating a missing file so that
// environment variables alone can configure the service
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("WALLET_SYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"log_level",
		"sentry_dsn",
		// Database
		"database.driver",
		"database.path",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.sync_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Alchemy
		"alchemy.api_key",
		"alchemy.base_url",
		"alchemy.timeout",
		"alchemy.requests_per_second",
		"alchemy.burst",
		"alchemy.page_size",
		// Ownership
		"ownership.spam_registry_path",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.sweep_secret",
		// Signature
		"signature.max_age",
		// Subscription
		"subscription.default_tier",
		// Sync
		"sync.dispatcher",
		"sync.timeout",
		"sync.max_attempts",
		"sync.worker.pool_size",
		"sync.worker.queue_size",
		// Ownership sweeper
		"ownership_sweeper.schedule",
		"ownership_sweeper.run_on_start",
		"ownership_sweeper.batch_size",
		"ownership_sweeper.asset_timeout",
		"ownership_sweeper.trigger_timeout",
		"ownership_sweeper.worker.pool_size",
		"ownership_sweeper.worker.queue_size",
		// Metrics
		"metrics.enabled",
		"metrics.listen_addr",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// Validate checks the fields required by the selected driver
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DatabaseDriverSQLite:
		if c.Path == "" {
			return errors.New("database.path is required for sqlite")
		}
	case DatabaseDriverPostgres, "":
		if c.Host == "" {
			return errors.New("database.host is required")
		}
		if c.DBName == "" {
			return errors.New("database.dbname is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}
	return nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DatabaseDriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// BindingLimit returns the binding limit for a tier, falling back to the default tier.
// A negative limit means unlimited.
func (c *SubscriptionConfig) BindingLimit(tier string) int {
	if limit, ok := c.BindingLimits[strings.ToLower(tier)]; ok {
		return limit
	}
	if limit, ok := c.BindingLimits[strings.ToLower(c.DefaultTier)]; ok {
		return limit
	}
	return 0
}
