package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"webmall/internal/domain/user"
	"webmall/internal/usecase/commands"
	"webmall/internal/usecase/shared"
)

type AuthMiddleware struct {
	authenticator commands.Authenticator
}

const ctxAuthUserKey = "auth_user"

func NewAuthMiddleware(authenticator commands.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// RequireAuth resolves the Bearer token into a local identity. Every failure
// mode is the same 401; details go to the log only.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		authUser, err := m.authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			slog.Warn("authentication failed", "path", c.Request.URL.Path, "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAuthUserKey, authUser)
		c.Next()
	}
}

// RequireRole gates a route on the locally stored role. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authUser, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		if authUser.Role != role {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func CurrentUser(c *gin.Context) (*shared.AuthenticatedUser, bool) {
	v, exists := c.Get(ctxAuthUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*shared.AuthenticatedUser)
	return u, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	u, ok := CurrentUser(c)
	if !ok {
		return uuid.Nil, false
	}
	return u.ID, true
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	u, ok := CurrentUser(c)
	if !ok {
		return "", false
	}
	return u.Role, true
}
