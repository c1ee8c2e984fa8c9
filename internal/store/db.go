package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/config"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a uniqueness guard rejected an insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrStaleState is returned when a guarded update matched no row because
	// another writer changed the row first.
	ErrStaleState = errors.New("row changed concurrently")
)

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

// New opens the process-wide connection pool. The returned Store is shared by
// every request; callers close it once on shutdown.
func New(cfg config.DatabaseConfig, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return Store{}, fmt.Errorf("failed to ping database: %w", err)
	}
	return Store{db: db, logger: logger}, nil
}

// NewFromDB wraps an existing pool.
func NewFromDB(db *sqlx.DB, logger *observability.Logger) Store {
	return Store{db: db, logger: logger}
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
