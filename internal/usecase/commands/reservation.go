package commands

import (
	"context"
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/pkg/clock"
	"github.com/Fox-16s/reservat-io/internal/pkg/errs"
	"github.com/Fox-16s/reservat-io/internal/pkg/patch"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"
	"github.com/Fox-16s/reservat-io/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoAuthenticatedUser = errs.New("No authenticated user")
	ErrReservationNotFound = queries.ErrReservationNotFound
)

type CreateReservationInput struct {
	PropertyID  string
	Details     reservation.DetailsInput
	TotalAmount float64
	Payments    []reservation.PaymentInput
}

// EditReservationInput carries the details step only. Details.TotalAmount nil
// keeps the current total.
type EditReservationInput struct {
	Details reservation.DetailsInput
}

type AddPaymentInput struct {
	Type     string
	Amount   float64
	Currency string
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, actor uuid.UUID, in CreateReservationInput) (*CreateReservationResult, error)
	EditReservation(ctx context.Context, actor uuid.UUID, id uuid.UUID, in EditReservationInput) error
	RemoveReservation(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
	AddPayment(ctx context.Context, actor uuid.UUID, id uuid.UUID, in AddPaymentInput) error
	UpdatePaymentNotes(ctx context.Context, actor uuid.UUID, id uuid.UUID, notes *string) error
	RefreshReservations(ctx context.Context) error
}

type reservationUseCaseImpl struct {
	mutations
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, cache ReservationCache, clk clock.Clock, loc *time.Location) ReservationCommands {
	if loc == nil {
		loc = time.UTC
	}
	return &reservationUseCaseImpl{
		mutations: mutations{uow: uow, cache: cache, loc: loc},
		clock:     clk,
	}
}

// CreateReservation runs the create form to completion and hands the
// submission to the write path.
func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, actor uuid.UUID, in CreateReservationInput) (*CreateReservationResult, error) {
	if actor == uuid.Nil {
		return nil, ErrNoAuthenticatedUser
	}
	propertyID, err := property.ParseID(in.PropertyID)
	if err != nil {
		return nil, err
	}

	form, err := reservation.NewCreateForm(propertyID, uc.loc, uc.clock)
	if err != nil {
		return nil, err
	}
	bookings, err := uc.bookings(ctx)
	if err != nil {
		return nil, err
	}
	if err = form.SubmitDetails(in.Details, bookings); err != nil {
		return nil, err
	}
	if err = form.SubmitPayment(in.TotalAmount, in.Payments); err != nil {
		return nil, err
	}
	sub, err := form.Submission()
	if err != nil {
		return nil, err
	}

	id, err := uc.create(ctx, actor, sub.PropertyID, sub.Client, sub.Dates, sub.Total, sub.Payments)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{ReservationID: id}, nil
}

// EditReservation changes client, dates and total. Payments are not part of
// an edit.
func (uc *reservationUseCaseImpl) EditReservation(ctx context.Context, actor uuid.UUID, id uuid.UUID, in EditReservationInput) error {
	if actor == uuid.Nil {
		return ErrNoAuthenticatedUser
	}

	records, err := uc.cache.Snapshot(ctx)
	if err != nil {
		return err
	}
	existing := findRecord(records, id)
	if existing == nil {
		return ErrReservationNotFound
	}

	form := reservation.NewEditForm(existing, uc.loc, uc.clock)
	if err = form.SubmitDetails(in.Details, bookingsOf(records)); err != nil {
		return err
	}
	sub, err := form.Submission()
	if err != nil {
		return err
	}

	return uc.update(ctx, sub.ReservationID, sub.Client, sub.Dates, sub.Total, nil)
}

func (uc *reservationUseCaseImpl) RemoveReservation(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	if actor == uuid.Nil {
		return ErrNoAuthenticatedUser
	}
	return uc.remove(ctx, id)
}

// AddPayment records one payment dated now. The row lock keeps two concurrent
// payments from both fitting under the total.
func (uc *reservationUseCaseImpl) AddPayment(ctx context.Context, actor uuid.UUID, id uuid.UUID, in AddPaymentInput) error {
	if actor == uuid.Nil {
		return ErrNoAuthenticatedUser
	}
	p, err := reservation.NewPaymentFromInput(reservation.PaymentInput{
		Type:     in.Type,
		Amount:   in.Amount,
		Currency: in.Currency,
	}, uc.clock)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reads().ReservationForUpdate(ctx, id)
		if derr != nil {
			return notFound(derr)
		}
		if len(res.NewPayments([]reservation.PaymentMethod{p}, uc.loc)) == 0 {
			return reservation.ErrDuplicatePayment
		}
		return applyUpdate(ctx, tx, res, res.Client(), res.Dates(), res.TotalAmount(), append(res.Payments(), p), uc.loc)
	})
	if err != nil {
		return err
	}

	uc.refresh(ctx)
	return nil
}

// UpdatePaymentNotes stores free text next to the payments. Blank notes clear
// the field.
func (uc *reservationUseCaseImpl) UpdatePaymentNotes(ctx context.Context, actor uuid.UUID, id uuid.UUID, notes *string) error {
	if actor == uuid.Nil {
		return ErrNoAuthenticatedUser
	}
	notes = patch.OptionalText(notes, nil)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFound(tx.Reservations().UpdatePaymentNotes(ctx, tx.DB(), id, notes))
	})
	if err != nil {
		return err
	}

	uc.refresh(ctx)
	return nil
}

func (uc *reservationUseCaseImpl) RefreshReservations(ctx context.Context) error {
	return uc.cache.Refresh(ctx)
}

func (uc *reservationUseCaseImpl) bookings(ctx context.Context) ([]reservation.Booking, error) {
	records, err := uc.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return bookingsOf(records), nil
}

func bookingsOf(records []queries.ReservationRecord) []reservation.Booking {
	out := make([]reservation.Booking, len(records))
	for i, rec := range records {
		out[i] = rec.Reservation.Booking()
	}
	return out
}

func findRecord(records []queries.ReservationRecord, id uuid.UUID) *reservation.Reservation {
	for _, rec := range records {
		if rec.Reservation.ID() == id {
			return rec.Reservation
		}
	}
	return nil
}
