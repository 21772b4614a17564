package middleware

import (
	"fmt"
	"net/http"
	"time"

	"shopping-cart-api/internal/pkg/apperror"
	"shopping-cart-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter throttles abusable endpoints (signup/login) with a fixed
// window counter in redis. A nil client disables limiting so the API still
// runs without redis in local setups.
type RateLimiter struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRateLimiter(rdb *redis.Client, logger *zap.Logger) *RateLimiter {
	if logger == nil {
		logger = zap.L().Named("middleware.ratelimit")
	}
	return &RateLimiter{rdb: rdb, logger: logger}
}

// ByIP allows at most limit requests per window per client IP and route.
func (l *RateLimiter) ByIP(limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())
		count, err := l.rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// redis outage must not take the API down with it
			l.logger.Warn("rate limit counter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			l.rdb.Expire(c.Request.Context(), key, window)
		}

		if count > limit {
			response.Error(c, http.StatusTooManyRequests, apperror.CodeInvalidState, "too many requests, slow down")
			return
		}

		c.Next()
	}
}
