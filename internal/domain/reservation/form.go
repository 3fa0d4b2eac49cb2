package reservation

import (
	"errors"
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/pkg/clock"

	"github.com/google/uuid"
)

type FormState int

const (
	StateCollectingClientAndDates FormState = iota
	StateCollectingPayment
	StateSubmitted
)

func (s FormState) String() string {
	switch s {
	case StateCollectingClientAndDates:
		return "collecting_client_and_dates"
	case StateCollectingPayment:
		return "collecting_payment"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// DetailsInput is the client-and-dates step. TotalAmount is only read by
// edit forms, where nil keeps the current total.
type DetailsInput struct {
	ClientName  string
	ClientPhone string
	ClientNotes *string
	Start       *time.Time
	End         *time.Time
	TotalAmount *float64
}

// PaymentInput is one row of the payment step. A zero Date means now.
type PaymentInput struct {
	Type     string
	Amount   float64
	Currency string
	Date     time.Time
}

// Submission is what a submitted form hands to the mutation layer.
type Submission struct {
	Mode          FormMode
	ReservationID uuid.UUID
	PropertyID    property.ID
	Client        Client
	Dates         DateRange
	Total         Money
	Payments      []PaymentMethod
}

// Form walks a reservation through details and payment. A failed step leaves
// the form where it was.
type Form struct {
	mode       FormMode
	state      FormState
	loc        *time.Location
	clock      clock.Clock
	propertyID property.ID
	existing   *Reservation

	client   Client
	dates    DateRange
	total    Money
	payments []PaymentMethod
}

func NewCreateForm(propertyID property.ID, loc *time.Location, clk clock.Clock) (*Form, error) {
	if _, err := property.FindByID(propertyID); err != nil {
		return nil, err
	}
	return &Form{
		mode:       FormCreate,
		state:      StateCollectingClientAndDates,
		loc:        locOrUTC(loc),
		clock:      clk,
		propertyID: propertyID,
	}, nil
}

// NewEditForm starts from an existing reservation. The details step is
// terminal and payments are never carried.
func NewEditForm(existing *Reservation, loc *time.Location, clk clock.Clock) *Form {
	return &Form{
		mode:       FormEdit,
		state:      StateCollectingClientAndDates,
		loc:        locOrUTC(loc),
		clock:      clk,
		propertyID: existing.PropertyID(),
		existing:   existing,
		total:      existing.TotalAmount(),
	}
}

func (f *Form) State() FormState { return f.state }
func (f *Form) Mode() FormMode   { return f.mode }

func (f *Form) SubmitDetails(in DetailsInput, bookings []Booking) error {
	if f.state != StateCollectingClientAndDates {
		return ErrInvalidFormTransition
	}

	client, err := NewClient(in.ClientName, in.ClientPhone, in.ClientNotes)
	if err != nil {
		return err
	}
	if in.Start == nil || in.End == nil {
		return ErrIncompleteDateRange
	}
	dates, err := NewDateRangeIn(*in.Start, *in.End, f.loc)
	if err != nil {
		return err
	}

	if f.mode == FormEdit {
		bookings = ExcludeReservation(bookings, f.existing.ID())
	}
	if !IsRangeAvailable(dates, f.propertyID, bookings) {
		return ErrRangeUnavailable
	}

	if f.mode == FormCreate {
		f.client, f.dates = client, dates
		f.state = StateCollectingPayment
		return nil
	}

	total := f.existing.TotalAmount()
	if in.TotalAmount != nil {
		if total, err = positiveTotal(*in.TotalAmount); err != nil {
			return err
		}
	}
	if total.IsZero() {
		return ErrNonPositiveTotal
	}
	if f.existing.PaidAmount().GreaterThan(total) {
		return ErrPaymentsExceedTotal
	}

	f.client, f.dates, f.total = client, dates, total
	f.state = StateSubmitted
	return nil
}

func (f *Form) SubmitPayment(total float64, rows []PaymentInput) error {
	if f.state != StateCollectingPayment {
		return ErrInvalidFormTransition
	}

	t, err := positiveTotal(total)
	if err != nil {
		return err
	}

	payments := make([]PaymentMethod, 0, len(rows))
	for _, row := range rows {
		p, err := NewPaymentFromInput(row, f.clock)
		if err != nil {
			return err
		}
		payments = append(payments, p)
	}
	if SumAmounts(payments).GreaterThan(t) {
		return ErrPaymentsExceedTotal
	}

	f.total = t
	f.payments = payments
	f.state = StateSubmitted
	return nil
}

func (f *Form) Submission() (Submission, error) {
	if f.state != StateSubmitted {
		return Submission{}, ErrFormNotSubmitted
	}
	s := Submission{
		Mode:       f.mode,
		PropertyID: f.propertyID,
		Client:     f.client,
		Dates:      f.dates,
		Total:      f.total,
		Payments:   append([]PaymentMethod(nil), f.payments...),
	}
	if f.existing != nil {
		s.ReservationID = f.existing.ID()
	}
	return s, nil
}

// NewPaymentFromInput builds a single payment the way the payment step does.
func NewPaymentFromInput(row PaymentInput, clk clock.Clock) (PaymentMethod, error) {
	kind, err := ParsePaymentType(row.Type)
	if err != nil {
		return PaymentMethod{}, err
	}
	amount, err := MoneyFromDecimal(row.Amount)
	if err != nil {
		if errors.Is(err, ErrNegativeAmount) {
			return PaymentMethod{}, ErrNonPositivePayment
		}
		return PaymentMethod{}, err
	}
	currency, err := ParseCurrency(row.Currency)
	if err != nil {
		return PaymentMethod{}, err
	}
	date := row.Date
	if date.IsZero() {
		date = clk.Now()
	}
	return NewPaymentMethod(kind, amount, date, currency)
}

func positiveTotal(v float64) (Money, error) {
	m, err := MoneyFromDecimal(v)
	if errors.Is(err, ErrNegativeAmount) || (err == nil && m.IsZero()) {
		return Money{}, ErrNonPositiveTotal
	}
	return m, err
}

func locOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
