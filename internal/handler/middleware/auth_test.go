//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"webmall/internal/domain/user"
	"webmall/internal/handler/middleware"
	"webmall/internal/usecase/commands"
	"webmall/internal/usecase/shared"
	"webmall/tests/common/httptest"
	commandsmock "webmall/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockAuthenticator *commandsmock.MockAuthenticator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuthenticator = commandsmock.NewMockAuthenticator(s.mockCtrl)

	mw := middleware.NewAuthMiddleware(s.mockAuthenticator)

	s.router = gin.New()
	s.router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		u, _ := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": u.Email})
	})
	s.router.GET("/admin-only", mw.RequireAuth(), mw.RequireRole(user.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func authUser(role user.Role) *shared.AuthenticatedUser {
	return &shared.AuthenticatedUser{
		ID:            uuid.New(),
		Subject:       uuid.New(),
		Email:         "someone@example.com",
		Name:          "Someone",
		Role:          role,
		EmailVerified: true,
	}
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: valid token reaches the handler with identity in context", func() {
		s.mockAuthenticator.EXPECT().Authenticate(gomock.Any(), "good-token").
			Return(authUser(user.RoleCustomer), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "good-token")
		assert.Equal(s.T(), http.StatusOK, rec.Code)
		assert.Contains(s.T(), rec.Body.String(), "someone@example.com")
	})

	s.Run("error: missing Authorization header is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "")
		assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
		assert.JSONEq(s.T(), `{"error":"Access token required"}`, rec.Body.String())
	})

	s.Run("error: non-Bearer scheme is 401 without touching the authenticator", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/protected", nil,
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
		assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: any authentication failure is the same 401", func() {
		s.mockAuthenticator.EXPECT().Authenticate(gomock.Any(), "bad-token").
			Return(nil, commands.ErrAuthenticationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "bad-token")
		assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
		assert.JSONEq(s.T(), `{"error":"Invalid or expired token"}`, rec.Body.String())
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("success: admin passes the admin gate", func() {
		s.mockAuthenticator.EXPECT().Authenticate(gomock.Any(), "admin-token").
			Return(authUser(user.RoleAdmin), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin-only", nil, "admin-token")
		assert.Equal(s.T(), http.StatusOK, rec.Code)
	})

	s.Run("error: customer at an admin route is 403", func() {
		s.mockAuthenticator.EXPECT().Authenticate(gomock.Any(), "customer-token").
			Return(authUser(user.RoleCustomer), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin-only", nil, "customer-token")
		assert.Equal(s.T(), http.StatusForbidden, rec.Code)
		assert.JSONEq(s.T(), `{"error":"Insufficient permissions"}`, rec.Body.String())
	})
}
