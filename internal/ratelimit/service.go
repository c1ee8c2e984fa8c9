package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/redis"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/config"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

var ErrLimitExceeded = errors.New("rate limit exceeded")

// LimitExceededError reports which key tripped the window and when it frees up.
type LimitExceededError struct {
	Key        string
	RetryAfter time.Duration
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s, retry after %s", e.Key, e.RetryAfter)
}

func (e *LimitExceededError) Unwrap() error {
	return ErrLimitExceeded
}

// RetryAfterSeconds rounds up so clients never retry early.
func (e *LimitExceededError) RetryAfterSeconds() int {
	secs := int(math.Ceil(e.RetryAfter.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// Window is the subset of the Redis client the sliding window needs.
type Window interface {
	IsEnabled() bool
	ZRemRangeByScore(ctx context.Context, key, min, max string) error
	ZCard(ctx context.Context, key string) (int64, error)
	ZRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.Z, error)
	ZAdd(ctx context.Context, key string, members ...redis.Z) error
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

// ThrottleStore is the Postgres fallback.
type ThrottleStore interface {
	RecordContactHit(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (store.ContactHit, error)
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Service applies a per-key sliding window. Redis is preferred; Postgres
// serves when Redis is disabled or failing.
type Service struct {
	redis  Window
	store  ThrottleStore
	limit  int
	window time.Duration
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a new rate limiting service
func NewService(window Window, throttleStore ThrottleStore, cfg config.ThrottleConfig, logger *observability.Logger) *Service {
	return &Service{
		redis:  window,
		store:  throttleStore,
		limit:  cfg.Limit,
		window: cfg.Window,
		logger: logger,
		now:    time.Now,
	}
}

// EmailKey, PhoneKey and IPKey build the throttle keys for one contact.
func EmailKey(email string) string { return "email:" + strings.ToLower(strings.TrimSpace(email)) }

func PhoneKey(phone string) string { return "phone:" + strings.TrimSpace(phone) }

func IPKey(ip string) string { return "ip:" + ip }

// Allow records one hit for key and returns a *LimitExceededError when the
// window is full.
func (s *Service) Allow(ctx context.Context, key string) error {
	result, err := s.Check(ctx, key)
	if err != nil {
		return err
	}
	if !result.Allowed {
		return &LimitExceededError{Key: key, RetryAfter: result.RetryAfter}
	}
	return nil
}

// AllowContact throttles every non-empty contact handle of a public submission.
func (s *Service) AllowContact(ctx context.Context, email, phone string) error {
	if email != "" {
		if err := s.Allow(ctx, EmailKey(email)); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := s.Allow(ctx, PhoneKey(phone)); err != nil {
			return err
		}
	}
	return nil
}

// Check records a hit against key and reports the window state.
func (s *Service) Check(ctx context.Context, key string) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "throttle_key", Value: key},
		observability.Field{Key: "throttle_limit", Value: s.limit},
	)

	if s.redis != nil && s.redis.IsEnabled() {
		result, err := s.checkRedis(ctx, key)
		if err != nil {
			s.logger.WarnWithError(ctx, "Redis throttle check failed, falling back to PostgreSQL", err)
			return s.checkPostgres(ctx, key)
		}
		return result, nil
	}

	return s.checkPostgres(ctx, key)
}

func (s *Service) checkRedis(ctx context.Context, key string) (Result, error) {
	redisKey := "throttle:" + key
	now := s.now()
	windowStart := now.Add(-s.window)

	if err := s.redis.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart.UnixMilli())); err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.redis.ZCard(ctx, redisKey)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count hits: %w", err)
	}

	if int(count) >= s.limit {
		resetAt := now.Add(s.window)
		oldest, err := s.redis.ZRangeWithScores(ctx, redisKey, 0, 0)
		if err == nil && len(oldest) > 0 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).Add(s.window)
		}
		return s.blocked(now, resetAt), nil
	}

	member := fmt.Sprintf("%d:%s", now.UnixMilli(), uuid.NewString())
	if err := s.redis.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixMilli()), Member: member}); err != nil {
		return Result{}, fmt.Errorf("failed to add hit: %w", err)
	}

	if err := s.redis.Expire(ctx, redisKey, s.window+time.Minute); err != nil {
		s.logger.WarnWithError(ctx, "failed to set expiration on throttle key", err)
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(s.window),
	}, nil
}

func (s *Service) checkPostgres(ctx context.Context, key string) (Result, error) {
	now := s.now()
	hit, err := s.store.RecordContactHit(ctx, key, s.limit, s.window, now)
	if err != nil {
		return Result{}, fmt.Errorf("failed to record throttle hit: %w", err)
	}
	if !hit.Allowed {
		return s.blocked(now, hit.OldestAt.Add(s.window)), nil
	}
	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - hit.Count,
		ResetAt:   hit.OldestAt.Add(s.window),
	}, nil
}

func (s *Service) blocked(now, resetAt time.Time) Result {
	retryAfter := resetAt.Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return Result{
		Allowed:    false,
		Limit:      s.limit,
		Remaining:  0,
		ResetAt:    resetAt,
		RetryAfter: retryAfter,
	}
}
