package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "webmall/internal/handler/dto/request"
	resdto "webmall/internal/handler/dto/response"
	"webmall/internal/handler/httperr"
	"webmall/internal/handler/middleware"
	"webmall/internal/usecase/commands"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Login
// @Description Exchange email and password for identity-provider tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	pair, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTokenPair(pair))
}

// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing identity"), "Unauthorized", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuthenticatedUser(authUser))
}
