package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "webmall/internal/handler/dto/request"
	resdto "webmall/internal/handler/dto/response"
	"webmall/internal/handler/httperr"
	"webmall/internal/usecase/commands"
	"webmall/internal/usecase/queries"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary List inventory
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InventoryResponse
// @Router /admin/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list inventory", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryList(views))
}

// @Summary Get inventory item
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inventory/{productId} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	view, err := h.q.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, queries.ErrInventoryNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Inventory item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inventory", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryView(view))
}

// @Summary Set inventory
// @Description Create or replace the stock record for a product
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpsertInventoryRequest true "Upsert inventory request"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} map[string]string
// @Router /admin/inventory/{productId} [put]
func (h *InventoryHandler) Upsert(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	var req reqdto.UpsertInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Upsert(c.Request.Context(), productID, req.Quantity, req.Threshold); err != nil {
		if errors.Is(err, commands.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Set inventory failed", nil)
		return
	}
	view, err := h.q.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inventory", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryView(view))
}

// @Summary Adjust inventory
// @Description Set the quantity outright or shift it by a delta; stock never drops below zero
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body reqdto.AdjustInventoryRequest true "Adjust inventory request"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inventory/{productId} [patch]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	var req reqdto.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Adjust(c.Request.Context(), productID, req.ToParams()); err != nil {
		switch {
		case errors.Is(err, commands.ErrInventoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Inventory item not found", nil)
		case errors.Is(err, commands.ErrNegativeStock):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Stock cannot go below zero", nil)
		case errors.Is(err, commands.ErrInvalidAdjustment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Either quantity or delta is required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Adjust inventory failed", nil)
		}
		return
	}
	view, err := h.q.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inventory", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryView(view))
}
