//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationBuilder builds persisted-looking reservations. Dates are
// calendar days given as "YYYY-MM-DD".
type ReservationBuilder struct {
	ID           uuid.UUID
	PropertyID   property.ID
	UserID       uuid.UUID
	ClientName   string
	ClientPhone  string
	Start        string
	End          string
	TotalCents   int64
	Payments     []reservation.PaymentMethod
	PaymentNotes *string
	CreatedBy    string
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		PropertyID:  "1",
		UserID:      uuid.New(),
		ClientName:  "Ana Pérez",
		ClientPhone: "+54 9 11 5555-1234",
		Start:       "2024-03-05",
		End:         "2024-03-10",
		TotalCents:  100000,
		CreatedBy:   "Giselle",
		CreatedAt:   time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithProperty(id property.ID) *ReservationBuilder {
	b.PropertyID = id
	return b
}

func (b *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	b.Start, b.End = start, end
	return b
}

func (b *ReservationBuilder) WithTotal(cents int64) *ReservationBuilder {
	b.TotalCents = cents
	return b
}

// WithPayment adds a persisted payment in ARS dated on day.
func (b *ReservationBuilder) WithPayment(kind reservation.PaymentType, cents int64, day string) *ReservationBuilder {
	b.Payments = append(b.Payments, reservation.ReconstructPaymentMethod(
		uuid.New(), kind, reservation.ReconstructMoney(cents), Day(day).Add(15*time.Hour), reservation.CurrencyARS,
	))
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	client := reservation.ReconstructClient(b.ClientName, b.ClientPhone, nil)
	return reservation.ReconstructReservation(
		b.ID,
		b.PropertyID,
		b.UserID,
		client,
		reservation.ReconstructDateRange(Day(b.Start), Day(b.End)),
		reservation.ReconstructMoney(b.TotalCents),
		append([]reservation.PaymentMethod(nil), b.Payments...),
		b.PaymentNotes,
		b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildRecord() queries.ReservationRecord {
	return queries.ReservationRecord{Reservation: b.BuildDomain(), CreatedBy: b.CreatedBy}
}

func (b *ReservationBuilder) BuildBooking() reservation.Booking {
	return b.BuildDomain().Booking()
}

// Day parses "YYYY-MM-DD" as midnight UTC and panics on bad input.
func Day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DayPtr is Day for optional inputs.
func DayPtr(s string) *time.Time {
	t := Day(s)
	return &t
}
