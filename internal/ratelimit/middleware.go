package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware throttles public submissions per client IP.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := observability.GetRealClientIP(c)

		result, err := s.Check(ctx, IPKey(ip))
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": "INTERNAL_ERROR"})
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			limitErr := &LimitExceededError{Key: IPKey(ip), RetryAfter: result.RetryAfter}
			c.Header("Retry-After", fmt.Sprintf("%d", limitErr.RetryAfterSeconds()))
			s.logger.Warn(ctx, "rate limit exceeded",
				observability.Field{Key: "client_ip", Value: ip},
				observability.Field{Key: "retry_after_seconds", Value: limitErr.RetryAfterSeconds()},
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later",
				"code":  "RATE_LIMIT_EXCEEDED",
			})
			return
		}

		c.Next()
	}
}
