package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, email, password_hash, full_name, role, created_at`

const sqlCreateUser = `
INSERT INTO users (email, password_hash, full_name, role)
VALUES (LOWER($1), $2, $3, $4)
RETURNING ` + userColumns

// CreateUser returns ErrAlreadyExists when the email is taken.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash, fullName, role string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser, email, passwordHash, fullName, role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by email", err)
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by id", err)
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
