package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/ratelimit"
	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
	"github.com/tradesbook-ie/tradesbook/internal/shared/utils"
)

// RateLimitMiddleware throttles per authenticated user, falling back to
// client IP for anonymous requests.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	limit   ratelimit.Limit
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, limit ratelimit.Limit, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		limit:   limit,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if userID := c.GetUint(authorization.ContextKeyUserID); userID != 0 {
			key = "user:" + strconv.FormatUint(uint64(userID), 10)
		}

		allowed, remaining, err := m.limiter.Allow(c.Request.Context(), key, m.limit)
		if err != nil {
			// Fail open when Redis is unavailable.
			m.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
