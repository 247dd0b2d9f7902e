package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"webmall/internal/pkg/config"
	"webmall/internal/pkg/ratelimit"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	limit   int
	window  time.Duration
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter, cfg config.RateLimitConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		limit:   cfg.LoginLimit,
		window:  cfg.LoginWindow,
	}
}

// LoginLimit caps authentication attempts per client IP in a fixed window.
// The X-RateLimit headers are stamped on every response, allowed or not.
func (m *RateLimitMiddleware) LoginLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if key == "" {
			key = "unknown"
		}

		result := m.limiter.Check("auth:"+key, m.limit, m.window)

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			h.Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too many requests",
				"message": "Rate limit exceeded, try again later",
			})
			return
		}

		c.Next()
	}
}
