package api

import (
	"bytes"
	"net/http"

	resdto "github.com/Fox-16s/reservat-io/internal/handler/dto/response"
	"github.com/Fox-16s/reservat-io/internal/handler/httperr"
	"github.com/Fox-16s/reservat-io/internal/infra/export"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const exportFileName = "monthly-report.xlsx"

type ReportHandler struct {
	q queries.ReservationQueries
}

func NewReportHandler(q queries.ReservationQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Monthly totals
// @Description Totals grouped by the month of the start date, newest first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MonthlyTotalResponse
// @Router /reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	views, err := h.q.MonthlyTotals(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromMonthlyTotals(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Export monthly report
// @Description xlsx workbook with a Monthly and a Reservations sheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /reports/monthly/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	monthly, err := h.q.MonthlyTotals(ctx)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	reservations, _, err := h.q.List(ctx, queries.ListFilter{})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	var buf bytes.Buffer
	if err = export.WriteReport(&buf, monthly, reservations); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build report", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
