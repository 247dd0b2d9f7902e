//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"webmall/internal/handler/middleware"
	"webmall/internal/pkg/config"
	"webmall/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCSRFRouter(t *testing.T, cfg config.SecurityConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCSRFMiddleware(cfg).Validate())

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }
	router.POST("/api/orders", ok)
	router.GET("/api/orders", ok)
	router.POST("/webhook", ok)
	return router
}

func TestCSRFValidate(t *testing.T) {
	cfg := config.SecurityConfig{
		AppURL:     "https://shop.example.com",
		DeployURL:  "https://preview.example.com",
		DevOrigins: []string{"http://localhost:3000"},
	}
	router := newCSRFRouter(t, cfg)

	t.Run("allows state-changing request from the app origin", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
			map[string]string{"Origin": "https://shop.example.com"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "active", rec.Header().Get("X-CSRF-Protection"))
	})

	t.Run("allows the deploy origin and dev origins", func(t *testing.T) {
		for _, o := range []string{"https://preview.example.com", "http://localhost:3000"} {
			rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
				map[string]string{"Origin": o})
			assert.Equal(t, http.StatusOK, rec.Code, o)
		}
	})

	t.Run("rejects a foreign origin with the CSRF body", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
			map[string]string{"Origin": "https://evil.example.net"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "active", rec.Header().Get("X-CSRF-Protection"))
		assert.JSONEq(t, `{"error":"CSRF validation failed","message":"Request origin not allowed"}`, rec.Body.String())
	})

	t.Run("origin must match scheme and port exactly", func(t *testing.T) {
		for _, o := range []string{
			"http://shop.example.com",       // scheme downgrade
			"https://shop.example.com:8443", // different port
			"https://shop.example.com.evil.net",
		} {
			rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
				map[string]string{"Origin": o})
			assert.Equal(t, http.StatusForbidden, rec.Code, o)
		}
	})

	t.Run("malformed origin never matches", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
			map[string]string{"Origin": "::not-a-url"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("falls back to Referer when Origin is absent", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
			map[string]string{"Referer": "https://shop.example.com/checkout"})
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
			map[string]string{"Referer": "https://evil.example.net/page"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Origin wins over Referer", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
			map[string]string{
				"Origin":  "https://evil.example.net",
				"Referer": "https://shop.example.com/checkout",
			})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("headerless request passes only with a Bearer token", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
			map[string]string{"Authorization": "Bearer some-token"})
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		// Non-Bearer authorization does not qualify for the exemption.
		rec = httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("skips safe methods and non-API paths", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/orders", nil,
			map[string]string{"Origin": "https://evil.example.net"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-CSRF-Protection"))

		rec = httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/webhook", nil,
			map[string]string{"Origin": "https://evil.example.net"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("request host is always an allowed origin", func(t *testing.T) {
		// httptest requests carry Host example.com.
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/api/orders", nil,
			map[string]string{"Origin": "http://example.com"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/", nil, nil)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}
