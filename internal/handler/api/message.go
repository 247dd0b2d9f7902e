package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "webmall/internal/handler/dto/request"
	resdto "webmall/internal/handler/dto/response"
	"webmall/internal/handler/httperr"
	"webmall/internal/handler/middleware"
	"webmall/internal/usecase/commands"
	"webmall/internal/usecase/queries"
)

type MessageHandler struct {
	cmds commands.MessageCommands
	q    queries.MessageQueries
}

func NewMessageHandler(cmds commands.MessageCommands, q queries.MessageQueries) *MessageHandler {
	return &MessageHandler{cmds: cmds, q: q}
}

// @Summary Send message
// @Description Create a support message from the authenticated customer
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMessageRequest true "Create message request"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing identity"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Send message failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load message", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMessageView(view))
}

// @Summary List own messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MessageResponse
// @Failure 401 {object} map[string]string
// @Router /messages [get]
func (h *MessageHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing identity"), "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list messages", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessageList(views))
}

// @Summary List all messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MessageResponse
// @Router /admin/messages [get]
func (h *MessageHandler) ListAll(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list messages", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessageList(views))
}

// @Summary Reply to message
// @Description Store the admin reply and mark the message read
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body reqdto.ReplyMessageRequest true "Reply request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/messages/{id}/reply [post]
func (h *MessageHandler) Reply(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ReplyMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Reply(c.Request.Context(), id, req.Reply); err != nil {
		if errors.Is(err, commands.ErrMessageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Message not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reply failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load message", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessageView(view))
}

// @Summary Mark message read
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrMessageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Message not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark read failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
