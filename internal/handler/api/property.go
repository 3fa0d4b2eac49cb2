package api

import (
	"net/http"
	"time"

	reqdto "github.com/Fox-16s/reservat-io/internal/handler/dto/request"
	resdto "github.com/Fox-16s/reservat-io/internal/handler/dto/response"
	"github.com/Fox-16s/reservat-io/internal/handler/httperr"
	"github.com/Fox-16s/reservat-io/internal/pkg/clock"
	"github.com/Fox-16s/reservat-io/internal/pkg/config"
	"github.com/Fox-16s/reservat-io/internal/pkg/errs"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	q     queries.ReservationQueries
	loc   *time.Location
	clock clock.Clock
}

func NewPropertyHandler(q queries.ReservationQueries, cfg config.Config, clk clock.Clock) *PropertyHandler {
	return &PropertyHandler{q: q, loc: cfg.Business.Location(), clock: clk}
}

// @Summary List properties
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PropertyResponse
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromProperties(h.q.Properties()))
}

// @Summary Property calendar
// @Description Booked days of one month, each tagged with its reservation
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/calendar [get]
func (h *PropertyHandler) Calendar(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = clock.Today(h.clock, h.loc).Format("2006-01")
	}

	view, err := h.q.Calendar(c.Request.Context(), c.Param("id"), month)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromCalendarView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check availability
// @Description Runs the overlap check for a date range. Boundary days count as taken.
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param exclude_id query string false "Reservation to ignore when editing"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/availability [get]
func (h *PropertyHandler) Availability(c *gin.Context) {
	startRaw, endRaw := c.Query("start"), c.Query("end")
	start, err := reqdto.ParseDay(&startRaw, h.loc)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	end, err := reqdto.ParseDay(&endRaw, h.loc)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if start == nil || end == nil {
		abortWithUsecaseError(c, errs.Mark(errs.New("start and end are required"), reqdto.ErrInvalidDate))
		return
	}

	var excludeID *uuid.UUID
	if raw := c.Query("exclude_id"); raw != "" {
		id, perr := uuid.Parse(raw)
		if perr != nil {
			abortBadRequest(c, perr)
			return
		}
		excludeID = &id
	}

	view, err := h.q.Availability(c.Request.Context(), c.Param("id"), *start, *end, excludeID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
