package processor

import (
	"context"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CreateUser(ctx context.Context, email, passwordHash, fullName, role string) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (store.User, error)
}
