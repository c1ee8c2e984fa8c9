package store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDBType represents the type of database to use for testing
type TestDBType string

const (
	TestDBTypePostgres TestDBType = "postgres"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
	dbType TestDBType
}

// SetupTestDB connects to the test Postgres described by TEST_DB_* and applies
// the embedded migrations. The test is skipped when TEST_DB_HOST is unset.
func SetupTestDB(t *testing.T, dbType TestDBType) *TestDB {
	t.Helper()

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database test")
	}
	if dbType == "" {
		dbType = TestDBTypePostgres
	}
	if dbType != TestDBTypePostgres {
		t.Fatalf("unsupported database type: %s", dbType)
	}

	logger := observability.NewNopLogger()

	db, err := setupPostgresDB(t)
	if err != nil {
		t.Fatalf("failed to setup test database: %v", err)
	}

	store := Store{db: db, logger: logger}
	if err := store.MigrateUp(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		db:     db,
		logger: logger,
		Store:  store,
		dbType: dbType,
	}
}

func setupPostgresDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := getenvDefault("TEST_DB_PORT", "5432")
	dbUser := getenvDefault("TEST_DB_USER", "spectra")
	dbPass := getenvDefault("TEST_DB_PASSWORD", "spectra")
	dbName := getenvDefault("TEST_DB_NAME", "spectra_test")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{
			"contact_throttles",
			"support_messages",
			"support_tickets",
			"billing_webhook_events",
			"checkout_charges",
			"subscribers",
			"cta_clicks",
			"leads",
			"users",
		}
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := tdb.db.Exec(query); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.db != nil {
		tdb.db.Close()
	}
}
