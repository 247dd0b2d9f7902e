package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "webmall/internal/handler/dto/request"
	resdto "webmall/internal/handler/dto/response"
	"webmall/internal/handler/httperr"
	"webmall/internal/infra/storage"
	"webmall/internal/usecase/commands"
	"webmall/internal/usecase/queries"
)

type BannerHandler struct {
	cmds commands.BannerCommands
	q    queries.BannerQueries
}

func NewBannerHandler(cmds commands.BannerCommands, q queries.BannerQueries) *BannerHandler {
	return &BannerHandler{cmds: cmds, q: q}
}

// @Summary List active banners
// @Description Active hero banners ordered by position
// @Tags banners
// @Produce json
// @Success 200 {array} resdto.BannerResponse
// @Router /banners [get]
func (h *BannerHandler) ListActive(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list banners", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBannerList(views))
}

// @Summary List all banners
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BannerResponse
// @Router /admin/banners [get]
func (h *BannerHandler) ListAll(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list banners", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBannerList(views))
}

// @Summary Create banner
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBannerRequest true "Create banner request"
// @Success 201 {object} resdto.BannerResponse
// @Failure 400 {object} map[string]string
// @Router /admin/banners [post]
func (h *BannerHandler) Create(c *gin.Context) {
	var req reqdto.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create banner failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load banner", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBannerView(view))
}

// @Summary Update banner
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Param request body reqdto.UpdateBannerRequest true "Update banner request"
// @Success 200 {object} resdto.BannerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/banners/{id} [put]
func (h *BannerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToParams()); err != nil {
		if errors.Is(err, commands.ErrBannerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Banner not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update banner failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load banner", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBannerView(view))
}

// @Summary Delete banner
// @Tags banners
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/banners/{id} [delete]
func (h *BannerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrBannerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Banner not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete banner failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload banner image
// @Tags banners
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/banners/{id}/image [post]
func (h *BannerHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image file required", nil)
		return
	}
	url, err := h.cmds.UploadImage(c.Request.Context(), id, file)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBannerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Banner not found", nil)
		case errors.Is(err, storage.ErrUnsupportedImageType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported image type", nil)
		case errors.Is(err, storage.ErrImageTooLarge):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Image exceeds size limit", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Image upload failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
