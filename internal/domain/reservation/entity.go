package reservation

import (
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/property"

	"github.com/google/uuid"
)

type Reservation struct {
	id           uuid.UUID
	propertyID   property.ID
	userID       uuid.UUID
	client       Client
	dates        DateRange
	total        Money
	payments     []PaymentMethod
	paymentNotes *string
	createdAt    time.Time
}

func NewReservation(
	propertyID property.ID,
	userID uuid.UUID,
	client Client,
	dates DateRange,
	total Money,
	payments []PaymentMethod,
) (*Reservation, error) {
	if userID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if _, err := property.FindByID(propertyID); err != nil {
		return nil, err
	}
	if dates.IsZero() {
		return nil, ErrIncompleteDateRange
	}
	if SumAmounts(payments).GreaterThan(total) {
		return nil, ErrPaymentsExceedTotal
	}

	return &Reservation{
		id:         uuid.New(),
		propertyID: propertyID,
		userID:     userID,
		client:     client,
		dates:      dates,
		total:      total,
		payments:   append([]PaymentMethod(nil), payments...),
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	propertyID property.ID,
	userID uuid.UUID,
	client Client,
	dates DateRange,
	total Money,
	payments []PaymentMethod,
	paymentNotes *string,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		propertyID:   propertyID,
		userID:       userID,
		client:       client,
		dates:        dates,
		total:        total,
		payments:     payments,
		paymentNotes: paymentNotes,
		createdAt:    createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) PropertyID() property.ID { return r.propertyID }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) Client() Client          { return r.client }
func (r *Reservation) Dates() DateRange        { return r.dates }
func (r *Reservation) TotalAmount() Money      { return r.total }
func (r *Reservation) PaymentNotes() *string   { return r.paymentNotes }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }

// Payments returns a copy; payment rows are never mutated in place.
func (r *Reservation) Payments() []PaymentMethod {
	return append([]PaymentMethod(nil), r.payments...)
}

func (r *Reservation) PaidAmount() Money {
	return SumAmounts(r.payments)
}

// RemainingAmount never goes below zero.
func (r *Reservation) RemainingAmount() Money {
	return r.total.Sub(r.PaidAmount())
}

func (r *Reservation) Booking() Booking {
	return Booking{ReservationID: r.id, PropertyID: r.propertyID, Range: r.dates}
}

// UpdateDetails replaces client, dates and total. Existing payments are kept
// and must still fit in the new total.
func (r *Reservation) UpdateDetails(client Client, dates DateRange, total Money) error {
	if dates.IsZero() {
		return ErrIncompleteDateRange
	}
	if r.PaidAmount().GreaterThan(total) {
		return ErrPaymentsExceedTotal
	}
	r.client = client
	r.dates = dates
	r.total = total
	return nil
}

func (r *Reservation) SetPaymentNotes(notes *string) {
	r.paymentNotes = notes
}

// NewPayments returns the incoming payments whose key is not already recorded.
// Duplicates within incoming collapse to the first occurrence. Days are
// compared in loc.
func (r *Reservation) NewPayments(incoming []PaymentMethod, loc *time.Location) []PaymentMethod {
	seen := make(map[PaymentKey]struct{}, len(r.payments)+len(incoming))
	for _, p := range r.payments {
		seen[p.Key(loc)] = struct{}{}
	}
	var out []PaymentMethod
	for _, p := range incoming {
		k := p.Key(loc)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// AddPayment records a single payment. Unlike the diff used by updates, an
// identical payment already on file is an error here.
func (r *Reservation) AddPayment(p PaymentMethod, loc *time.Location) error {
	k := p.Key(loc)
	for _, existing := range r.payments {
		if existing.Key(loc) == k {
			return ErrDuplicatePayment
		}
	}
	if r.PaidAmount().Add(p.amount).GreaterThan(r.total) {
		return ErrPaymentsExceedTotal
	}
	r.payments = append(r.payments, p)
	return nil
}
