package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrParseJWTToken      = errors.New("failed to parse jwt token")
	ErrFailedSignIn       = errors.New("failed to sign in")
	ErrInsufficientRole   = errors.New("insufficient role")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
)

const (
	tokenIssuer   = "spectra"
	tokenAudience = "spectra"
	tokenTTL      = 24 * time.Hour
)

func IsValidRole(role string) bool {
	return role == store.UserRoleAdmin || role == store.UserRoleSupport
}

type AuthProcessor struct {
	store     AuthStore
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(store AuthStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

type LoggedInUser struct {
	Token string     `json:"token"`
	User  store.User `json:"user"`
}

// Login checks an admin dashboard password and issues a token. Unknown
// emails and wrong passwords fail the same way.
func (p *AuthProcessor) Login(ctx context.Context, email string, password string) (LoggedInUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "login for unknown email")
			return LoggedInUser{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return LoggedInUser{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.logger.Info(ctx, "login with wrong password")
		return LoggedInUser{}, ErrInvalidCredentials
	}

	token, err := p.generateJWTToken(ctx, user)
	if err != nil {
		return LoggedInUser{}, err
	}
	return LoggedInUser{Token: token, User: user}, nil
}

// Authorize resolves a bearer token to a user holding one of roles. The user
// is reloaded so role changes apply before the token expires.
func (p *AuthProcessor) Authorize(ctx context.Context, token string, roles ...string) (store.User, error) {
	if token == "" {
		return store.User{}, ErrMissingToken
	}
	claims, err := p.ValidateJWTToken(ctx, token)
	if err != nil {
		return store.User{}, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return store.User{}, ErrInvalidJWTToken
	}

	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrInvalidJWTToken
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return store.User{}, err
	}

	if len(roles) > 0 && !slices.Contains(roles, user.Role) {
		p.logger.Warn(ctx, "role not allowed",
			observability.Field{Key: "user_id", Value: user.ID.String()},
			observability.Field{Key: "role", Value: user.Role},
		)
		return store.User{}, ErrInsufficientRole
	}
	return user, nil
}

func (p *AuthProcessor) GetUserByID(ctx context.Context, id uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return store.User{}, err
	}
	return user, nil
}

// CreateUser provisions a dashboard user. There is no self signup.
func (p *AuthProcessor) CreateUser(ctx context.Context, email, password, fullName, role string) (store.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	if !IsValidRole(role) {
		return store.User{}, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return store.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := p.store.CreateUser(ctx, email, string(hashedPassword), strings.TrimSpace(fullName), role)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.User{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to create user", err)
		return store.User{}, err
	}

	p.logger.Info(ctx, "user created", observability.Field{Key: "role", Value: role})
	return user, nil
}
