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

type CategoryHandler struct {
	cmds commands.CategoryCommands
	q    queries.CategoryQueries
}

func NewCategoryHandler(cmds commands.CategoryCommands, q queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{cmds: cmds, q: q}
}

// @Summary List categories
// @Description List all categories with subcategories nested under parents
// @Tags categories
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list categories", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryTree(views))
}

// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCategoryNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load category", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Create category request"
// @Success 201 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCategorySlugTaken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slug already in use", nil)
		case errors.Is(err, commands.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Parent category does not exist", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create category failed", nil)
		}
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load category", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCategoryView(view))
}

// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Update category request"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToParams()); err != nil {
		switch {
		case errors.Is(err, commands.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found", nil)
		case errors.Is(err, commands.ErrCategorySlugTaken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slug already in use", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update category failed", nil)
		}
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load category", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}

// @Summary Delete category
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found", nil)
		case errors.Is(err, commands.ErrCategoryInUse):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Category still has products or children", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete category failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
