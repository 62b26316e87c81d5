package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// pgTestDB is nil when neither TEST_DB_HOST nor a container runtime is available
var pgTestDB *gorm.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, external := externalPGDSN()
	var container *postgres.PostgresContainer
	if !external {
		var err error
		container, dsn, err = startPGContainer(ctx)
		if err != nil {
			fmt.Printf("PostgreSQL container unavailable, running the SQLite suite only: %v\n", err)
			os.Exit(m.Run())
		}
	}

	terminate := func() {
		if container == nil {
			return
		}
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	db, err := openPGTestDB(dsn)
	if err != nil {
		fmt.Printf("Failed to prepare PostgreSQL test database: %v\n", err)
		terminate()
		os.Exit(1)
	}
	pgTestDB = db

	code := m.Run()
	terminate()
	os.Exit(code)
}

// externalPGDSN builds a DSN from TEST_DB_* variables, used by CI and local databases
func externalPGDSN() (string, bool) {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		return "", false
	}

	env := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	fmt.Printf("Using external PostgreSQL at %s\n", host)
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		env("TEST_DB_PORT", "5432"),
		env("TEST_DB_USER", "postgres"),
		env("TEST_DB_PASSWORD", "postgres"),
		env("TEST_DB_NAME", "wallet_sync_test"),
	), true
}

// recoverAsError runs fn and turns a panic into an error.
// testcontainers panics instead of returning an error when no docker host can be found.
func recoverAsError[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out, err = zero, fmt.Errorf("docker unavailable: %v", r)
		}
	}()
	return fn()
}

func startPGContainer(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	container, err := recoverAsError(func() (*postgres.PostgresContainer, error) {
		return postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("wallet_sync_test"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
	})
	if err != nil {
		return nil, "", err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to get connection string: %w", err)
	}

	return container, dsn, nil
}

// openPGTestDB connects and applies db/init_pg_db.sql, the schema production databases are created from
func openPGTestDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	schemaSQL, err := os.ReadFile(filepath.Join("..", "..", "db", "init_pg_db.sql")) //nolint:gosec,G304
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}

// initPGTestStore isolates each test in a transaction that is rolled back on cleanup
func initPGTestStore(t *testing.T) Store {
	tx := pgTestDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewStore(tx)
}

func TestRecoverAsError(t *testing.T) {
	_, err := recoverAsError(func() (*postgres.PostgresContainer, error) {
		panic("rootless Docker not found")
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "rootless Docker not found")

	out, err := recoverAsError(func() (int, error) { return 7, nil })
	require.NoError(t, err)
	require.Equal(t, 7, out)
}

func TestPostgreSQLStore(t *testing.T) {
	if pgTestDB == nil {
		t.Skip("PostgreSQL test database not available")
	}

	RunStoreTests(t, initPGTestStore, func(*testing.T) {})
}

func TestPostgreSQLStoreConcurrency(t *testing.T) {
	if pgTestDB == nil {
		t.Skip("PostgreSQL test database not available")
	}

	RunConcurrencyTests(t, NewStore(pgTestDB))
}
