package request

import (
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/usecase/commands"
)

type PaymentRequest struct {
	Type     string  `json:"type" binding:"required,payment_type"`
	Amount   float64 `json:"amount" binding:"gt=0"`
	Currency string  `json:"currency" binding:"omitempty,currency"`
	Date     *string `json:"date,omitempty"`
}

// CreateReservationRequest is both form steps in one body. Client fields are
// left to the form guards so their errors stay field-specific.
type CreateReservationRequest struct {
	PropertyID  string           `json:"property_id" binding:"required"`
	ClientName  string           `json:"client_name"`
	ClientPhone string           `json:"client_phone"`
	ClientNotes *string          `json:"client_notes,omitempty"`
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
	TotalAmount float64          `json:"total_amount"`
	Payments    []PaymentRequest `json:"payments" binding:"dive"`
}

func (r CreateReservationRequest) ToInput(loc *time.Location) (commands.CreateReservationInput, error) {
	details, err := detailsInput(r.ClientName, r.ClientPhone, r.ClientNotes, r.StartDate, r.EndDate, loc)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	payments := make([]reservation.PaymentInput, 0, len(r.Payments))
	for _, p := range r.Payments {
		row := reservation.PaymentInput{Type: p.Type, Amount: p.Amount, Currency: p.Currency}
		date, derr := ParseDay(p.Date, loc)
		if derr != nil {
			return commands.CreateReservationInput{}, derr
		}
		if date != nil {
			row.Date = *date
		}
		payments = append(payments, row)
	}

	return commands.CreateReservationInput{
		PropertyID:  r.PropertyID,
		Details:     details,
		TotalAmount: r.TotalAmount,
		Payments:    payments,
	}, nil
}

// EditReservationRequest carries no payments. A missing total keeps the
// current one.
type EditReservationRequest struct {
	ClientName  string   `json:"client_name"`
	ClientPhone string   `json:"client_phone"`
	ClientNotes *string  `json:"client_notes,omitempty"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	TotalAmount *float64 `json:"total_amount,omitempty"`
}

func (r EditReservationRequest) ToInput(loc *time.Location) (commands.EditReservationInput, error) {
	details, err := detailsInput(r.ClientName, r.ClientPhone, r.ClientNotes, r.StartDate, r.EndDate, loc)
	if err != nil {
		return commands.EditReservationInput{}, err
	}
	details.TotalAmount = r.TotalAmount
	return commands.EditReservationInput{Details: details}, nil
}

type AddPaymentRequest struct {
	Type     string  `json:"type" binding:"required,payment_type"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"omitempty,currency"`
}

func (r AddPaymentRequest) ToInput() commands.AddPaymentInput {
	return commands.AddPaymentInput{Type: r.Type, Amount: r.Amount, Currency: r.Currency}
}

type PaymentNotesRequest struct {
	Notes *string `json:"payment_notes"`
}

func detailsInput(name, phone string, notes, start, end *string, loc *time.Location) (reservation.DetailsInput, error) {
	startDay, err := ParseDay(start, loc)
	if err != nil {
		return reservation.DetailsInput{}, err
	}
	endDay, err := ParseDay(end, loc)
	if err != nil {
		return reservation.DetailsInput{}, err
	}
	return reservation.DetailsInput{
		ClientName:  name,
		ClientPhone: phone,
		ClientNotes: notes,
		Start:       startDay,
		End:         endDay,
	}, nil
}
