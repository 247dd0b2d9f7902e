package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "webmall/internal/handler/dto/request"
	resdto "webmall/internal/handler/dto/response"
	"webmall/internal/handler/httperr"
	"webmall/internal/handler/middleware"
	"webmall/internal/pkg/export"
	"webmall/internal/usecase/commands"
	"webmall/internal/usecase/queries"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Place an order for the authenticated customer; stock and coupon are settled in one transaction
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Place order request"
// @Success 201 {object} resdto.PlacedOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing identity"), "Unauthorized", nil)
		return
	}
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	placed, err := h.cmds.Place(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyOrder):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order has no items", nil)
		case errors.Is(err, commands.ErrProductUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Product unavailable", nil)
		case errors.Is(err, commands.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Insufficient stock", nil)
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon not found", nil)
		case commands.IsCouponRejection(err), errors.Is(err, commands.ErrCouponExhausted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Place order failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPlacedOrder(placed))
}

// @Summary List own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderListItemResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing identity"), "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(items))
}

// @Summary Get order
// @Description Customers see only their own orders; admins see any
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing identity"), "Unauthorized", nil)
		return
	}

	var requesterID *uuid.UUID
	if !authUser.Role.IsAdmin() {
		requesterID = &authUser.ID
	}

	view, err := h.q.GetByID(c.Request.Context(), id, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, queries.ErrOrderAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List all orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.OrderListItemResponse
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	var page queries.OrderPage
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			page.Limit = int32(iv)
		}
	}
	if v := c.Query("offset"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			page.Offset = int32(iv)
		}
	}
	items, err := h.q.ListAll(c.Request.Context(), page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(items))
}

// @Summary Update order status
// @Description Advance an order along the fulfilment state machine
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status update"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, commands.ErrIllegalTransition):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Illegal status transition", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update status failed", nil)
		}
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, nil)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Export orders
// @Description Download all orders as an .xlsx workbook
// @Tags orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /admin/orders/export [get]
func (h *OrderHandler) Export(c *gin.Context) {
	views, err := h.q.ExportAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load orders", nil)
		return
	}
	buf, err := export.OrdersWorkbook(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Export failed", nil)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
