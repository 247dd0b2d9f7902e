//go:build unit

package middleware_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"webmall/internal/handler/middleware"
	"webmall/internal/pkg/clock"
	"webmall/internal/pkg/config"
	"webmall/internal/pkg/ratelimit"
	"webmall/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginLimitRouter(t *testing.T) (*gin.Engine, *clock.MockClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := ratelimit.NewMemoryStore(30 * time.Minute)
	t.Cleanup(store.Close)

	limiter := ratelimit.NewLimiter(store, clk)
	mw := middleware.NewRateLimitMiddleware(limiter, config.RateLimitConfig{
		LoginLimit:  10,
		LoginWindow: 15 * time.Minute,
	})

	router := gin.New()
	router.POST("/api/auth/login", mw.LoginLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router, clk
}

func TestLoginLimit(t *testing.T) {
	t.Run("allows up to the limit and stamps headers on every response", func(t *testing.T) {
		router, _ := newLoginLimitRouter(t)

		for i := 1; i <= 10; i++ {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", nil, "")
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
			assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, strconv.Itoa(10-i), rec.Header().Get("X-RateLimit-Remaining"))
			assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
		}
	})

	t.Run("11th request in the window is rejected with Retry-After", func(t *testing.T) {
		router, _ := newLoginLimitRouter(t)

		for i := 0; i < 10; i++ {
			httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", nil, "")
		}
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", nil, "")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "900", rec.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"Too many requests","message":"Rate limit exceeded, try again later"}`, rec.Body.String())
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		router, clk := newLoginLimitRouter(t)

		for i := 0; i < 11; i++ {
			httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", nil, "")
		}

		clk.Add(15*time.Minute + time.Second)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "9", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("rejected requests do not consume the next window", func(t *testing.T) {
		router, clk := newLoginLimitRouter(t)

		for i := 0; i < 30; i++ {
			httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", nil, "")
		}

		clk.Add(16 * time.Minute)

		for i := 1; i <= 10; i++ {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", nil, "")
			assert.Equal(t, http.StatusOK, rec.Code, "request %d after reset", i)
		}
	})
}
