package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=mocks_test.go -package=handler

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/apierrors"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/auth/processor"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey   = "User-ID"
	userRoleKey = "User-Role"

	internalKeyHeader = "X-Internal-Key"
)

// AuthService is the subset of AuthProcessor the HTTP layer calls.
type AuthService interface {
	Login(ctx context.Context, email string, password string) (processor.LoggedInUser, error)
	Authorize(ctx context.Context, token string, roles ...string) (store.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (store.User, error)
}

type Handler struct {
	authProcessor AuthService
	internalKey   string
	logger        *observability.Logger
}

type EmailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func New(authProcessor AuthService, internalKey string, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, internalKey: internalKey, logger: logger}
}

// HandleEmailLogin handles POST /api/auth/login
func (h *Handler) HandleEmailLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req EmailLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	loggedIn, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, loggedIn)
}

// GetUserInfo handles GET /api/auth/me
func (h *Handler) GetUserInfo(c *gin.Context) {
	ctx := c.Request.Context()

	raw, ok := c.Get(userIDKey)
	if !ok {
		apierrors.RespondWithError(c, processor.ErrMissingToken)
		return
	}
	userID, err := uuid.Parse(raw.(string))
	if err != nil {
		apierrors.RespondWithError(c, processor.ErrInvalidJWTToken)
		return
	}

	user, err := h.authProcessor.GetUserByID(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// RequireRole authenticates the bearer token and admits users holding one
// of roles.
func (h *Handler) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.authorize(c, bearerToken(c), roles)
	}
}

// RequireRoleFromQuery reads the token from ?token= for browser WebSocket
// clients, which cannot set headers.
func (h *Handler) RequireRoleFromQuery(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.authorize(c, c.Query("token"), roles)
	}
}

// RequireInternalOrRole admits server-to-server callers presenting the
// internal API key, and otherwise falls back to RequireRole.
func (h *Handler) RequireInternalOrRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(internalKeyHeader)
		if h.internalKey != "" && key != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(h.internalKey)) == 1 {
				c.Set(userRoleKey, "internal")
				c.Next()
				return
			}
			h.logger.Warn(c.Request.Context(), "invalid internal api key")
			apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid internal API key"))
			return
		}
		h.authorize(c, bearerToken(c), roles)
	}
}

func (h *Handler) authorize(c *gin.Context, token string, roles []string) {
	ctx := c.Request.Context()

	user, err := h.authProcessor.Authorize(ctx, token, roles...)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Set(userIDKey, user.ID.String())
	c.Set(userRoleKey, user.Role)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: user.ID.String()},
		observability.Field{Key: "user_role", Value: user.Role},
	))
	c.Next()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
