package api

import (
	"errors"
	"net/http"

	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/domain/user"
	reqdto "github.com/Fox-16s/reservat-io/internal/handler/dto/request"
	"github.com/Fox-16s/reservat-io/internal/handler/httperr"
	"github.com/Fox-16s/reservat-io/internal/usecase/commands"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters only where sentinels alias each other.
var errorMappings = []errorMapping{
	{commands.ErrNoAuthenticatedUser, http.StatusUnauthorized, "No authenticated user"},

	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{property.ErrPropertyNotFound, http.StatusNotFound, "Property not found"},

	{reservation.ErrRangeUnavailable, http.StatusConflict, "Selected dates are not available"},
	{reservation.ErrDuplicatePayment, http.StatusConflict, "Payment already recorded"},
	{commands.ErrEmailAlreadyRegistered, http.StatusConflict, "Email already registered"},

	{reservation.ErrPaymentsExceedTotal, http.StatusUnprocessableEntity, "Payments exceed the total amount"},
	{reservation.ErrNonPositiveTotal, http.StatusUnprocessableEntity, "Total amount must be greater than zero"},

	{reservation.ErrClientNameRequired, http.StatusBadRequest, "Client name is required"},
	{reservation.ErrClientPhoneRequired, http.StatusBadRequest, "Client phone is required"},
	{reservation.ErrIncompleteDateRange, http.StatusBadRequest, "Both start and end dates are required"},
	{reservation.ErrInvertedDateRange, http.StatusBadRequest, "End date must not be before start date"},
	{reservation.ErrNegativeAmount, http.StatusBadRequest, "Amount must not be negative"},
	{reservation.ErrInvalidAmount, http.StatusBadRequest, "Invalid amount"},
	{reservation.ErrNonPositivePayment, http.StatusBadRequest, "Payment amount must be greater than zero"},
	{reservation.ErrInvalidPaymentType, http.StatusBadRequest, "Invalid payment type"},
	{reservation.ErrInvalidCurrency, http.StatusBadRequest, "Invalid currency"},
	{reservation.ErrPaymentDateRequired, http.StatusBadRequest, "Payment date is required"},
	{reqdto.ErrInvalidDate, http.StatusBadRequest, "Dates must be YYYY-MM-DD"},
	{queries.ErrInvalidMonth, http.StatusBadRequest, "Month must be YYYY-MM"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},

	{user.ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},
	{user.ErrPasswordTooWeak, http.StatusBadRequest, "Password must be at least 8 characters"},
	{user.ErrNameRequired, http.StatusBadRequest, "Name is required"},
	{user.ErrNameTooLong, http.StatusBadRequest, "Name is too long"},

	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserNotFound, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired token"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
}

// abortWithUsecaseError maps known sentinels to a status. Anything else is a
// store failure and becomes a 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrNoAuthenticatedUser, "No authenticated user", nil)
}

// abortBadRequest reports binding failures. Validator errors also list the
// offending fields.
func abortBadRequest(c *gin.Context, err error) {
	var detail any
	if fields := httperr.ValidationDetail(err); fields != nil {
		detail = fields
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", detail)
}
