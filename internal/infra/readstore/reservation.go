package readstore

import (
	"context"

	"github.com/Fox-16s/reservat-io/internal/infra"
	"github.com/Fox-16s/reservat-io/internal/infra/query"
	"github.com/Fox-16s/reservat-io/internal/infra/repository/converter"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	ListReservations(ctx context.Context, db query.DBTX) ([]query.ListReservationsRow, error)
	GetReservationByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ListReservationsRow, error)
	GetReservationForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ListReservationsRow, error)
	ListPaymentMethods(ctx context.Context, db query.DBTX) ([]query.PaymentMethods, error)
	ListPaymentMethodsByReservation(ctx context.Context, db query.DBTX, reservationID uuid.UUID) ([]query.PaymentMethods, error)
}

// ReservationReadStore takes the connection per call so callers can pick a
// pool, a read-only transaction or a write transaction.
type ReservationReadStore struct {
	queries ReservationViewQueries
}

func NewReservationReadStore(queries ReservationViewQueries) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
	}
}

// ListAll loads every reservation with its payments, ordered by start date.
func (r *ReservationReadStore) ListAll(ctx context.Context, db query.DBTX) ([]queries.ReservationRecord, error) {
	rows, err := r.queries.ListReservations(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	payments, err := r.queries.ListPaymentMethods(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment methods", err)
	}
	byReservation := converter.GroupPaymentsByReservation(payments)

	result := make([]queries.ReservationRecord, len(rows))
	for i, row := range rows {
		result[i] = queries.ReservationRecord{
			Reservation: converter.ReservationFromRow(row.Reservations, byReservation[row.ID]),
			CreatedBy:   row.CreatedBy,
		}
	}

	return result, nil
}

func (r *ReservationReadStore) FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*queries.ReservationRecord, error) {
	row, err := r.queries.GetReservationByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return r.withPayments(ctx, db, row)
}

// FindByIDForUpdate locks the reservation row; only meaningful inside a transaction.
func (r *ReservationReadStore) FindByIDForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (*queries.ReservationRecord, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return r.withPayments(ctx, db, row)
}

func (r *ReservationReadStore) PaymentsOf(ctx context.Context, db query.DBTX, reservationID uuid.UUID) ([]queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentMethodsByReservation(ctx, db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment methods", err)
	}

	result := make([]queries.PaymentView, len(rows))
	for i, row := range rows {
		result[i] = queries.ToPaymentView(converter.PaymentFromRow(row))
	}
	return result, nil
}

func (r *ReservationReadStore) withPayments(ctx context.Context, db query.DBTX, row query.ListReservationsRow) (*queries.ReservationRecord, error) {
	payments, err := r.queries.ListPaymentMethodsByReservation(ctx, db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment methods", err)
	}

	return &queries.ReservationRecord{
		Reservation: converter.ReservationFromRow(row.Reservations, payments),
		CreatedBy:   row.CreatedBy,
	}, nil
}
