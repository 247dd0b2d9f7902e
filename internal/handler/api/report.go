package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "webmall/internal/handler/dto/response"
	"webmall/internal/handler/httperr"
	"webmall/internal/usecase/queries"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Dashboard summary
// @Description Store-wide totals, low-stock count and the latest orders
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReportSummaryResponse
// @Router /admin/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build summary", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportSummary(summary))
}
