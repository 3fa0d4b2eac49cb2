package reservation

import "errors"

// Validation errors. These are detected before any write and map to 4xx responses.
var (
	ErrClientNameRequired    = errors.New("client name is required")
	ErrClientPhoneRequired   = errors.New("client phone is required")
	ErrIncompleteDateRange   = errors.New("date range must have a start and an end")
	ErrInvertedDateRange     = errors.New("end date cannot be before start date")
	ErrRangeUnavailable      = errors.New("selected dates overlap an existing reservation")
	ErrNegativeAmount        = errors.New("amount cannot be negative")
	ErrInvalidAmount         = errors.New("amount is not a finite number or exceeds the maximum")
	ErrNonPositiveTotal      = errors.New("total amount must be greater than zero")
	ErrNonPositivePayment    = errors.New("payment amount must be greater than zero")
	ErrPaymentsExceedTotal   = errors.New("sum of payments exceeds total amount")
	ErrInvalidPaymentType    = errors.New("invalid payment type")
	ErrInvalidCurrency       = errors.New("invalid currency")
	ErrPaymentDateRequired   = errors.New("payment date is required")
	ErrDuplicatePayment      = errors.New("an identical payment is already recorded")
	ErrOwnerRequired         = errors.New("reservation owner is required")
	ErrInvalidFormTransition = errors.New("form step submitted out of order")
	ErrFormNotSubmitted      = errors.New("form has not been submitted")
)
