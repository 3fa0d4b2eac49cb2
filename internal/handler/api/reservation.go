package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "github.com/Fox-16s/reservat-io/internal/handler/dto/request"
	resdto "github.com/Fox-16s/reservat-io/internal/handler/dto/response"
	"github.com/Fox-16s/reservat-io/internal/handler/httperr"
	"github.com/Fox-16s/reservat-io/internal/handler/middleware"
	"github.com/Fox-16s/reservat-io/internal/pkg/config"
	"github.com/Fox-16s/reservat-io/internal/usecase/commands"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	loc  *time.Location
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, loc: cfg.Business.Location()}
}

// @Summary List reservations
// @Description Reservations ordered by start date, optionally for one property
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param property_id query string false "Property ID"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (0 = all)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	filter := queries.ListFilter{PropertyID: c.Query("property_id")}
	if after := c.Query("after"); after != "" {
		filter.Cursor = &queries.Cursor{After: after}
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			abortBadRequest(c, err)
			return
		}
		filter.Limit = limit
	}

	views, next, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromReservationViews(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create reservation
// @Description Create a reservation with client data, dates, total and payments
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	in, err := req.ToInput(h.loc)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), actor, in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithCard(c, http.StatusCreated, result.ReservationID)
}

// @Summary Get reservation
// @Description Get the reservation card by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	h.respondWithCard(c, http.StatusOK, id)
}

// @Summary Edit reservation
// @Description Update client, dates and total. Payments are not edited here.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.EditReservationRequest true "Edit request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Edit(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.EditReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	in, err := req.ToInput(h.loc)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	if err = h.cmds.EditReservation(c.Request.Context(), actor, id, in); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithCard(c, http.StatusOK, id)
}

// @Summary Delete reservation
// @Description Delete a reservation and, by cascade, its payments
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	if err := h.cmds.RemoveReservation(c.Request.Context(), actor, id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List payments
// @Description Payment rows of a reservation, read from the store
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/payments [get]
func (h *ReservationHandler) Payments(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	views, err := h.q.PaymentsOf(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromPaymentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add payment
// @Description Record one payment dated now
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AddPaymentRequest true "Payment"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/payments [post]
func (h *ReservationHandler) AddPayment(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.AddPayment(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithCard(c, http.StatusCreated, id)
}

// @Summary Update payment notes
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.PaymentNotesRequest true "Notes"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/payment-notes [put]
func (h *ReservationHandler) UpdatePaymentNotes(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.PaymentNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.UpdatePaymentNotes(c.Request.Context(), actor, id, req.Notes); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithCard(c, http.StatusOK, id)
}

// @Summary Refresh reservations
// @Description Reload the reservation list from the store
// @Tags reservations
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /reservations/refresh [post]
func (h *ReservationHandler) Refresh(c *gin.Context) {
	if err := h.cmds.RefreshReservations(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) respondWithCard(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

func reservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
