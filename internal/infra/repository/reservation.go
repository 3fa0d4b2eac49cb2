package repository

import (
	"context"

	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/infra"
	"github.com/Fox-16s/reservat-io/internal/infra/query"
	"github.com/Fox-16s/reservat-io/internal/infra/repository/converter"
	"github.com/Fox-16s/reservat-io/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (pgtype.Timestamptz, error)
	UpdateReservation(ctx context.Context, db query.DBTX, arg query.UpdateReservationParams) (int64, error)
	UpdatePaymentNotes(ctx context.Context, db query.DBTX, id uuid.UUID, notes pgtype.Text) (int64, error)
	DeleteReservation(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      query.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the reservation row only; payments go through PaymentRepository.
func (r *ReservationRepository) Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToCreateParams(res)

	if _, err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return params.ID, nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, tx, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdatePaymentNotes(ctx context.Context, tx query.DBTX, id uuid.UUID, notes *string) error {
	n, err := r.queries.UpdatePaymentNotes(ctx, tx, id, pgconv.StringPtrToPgtype(notes))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment notes", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Delete removes the reservation; payment rows go with it via ON DELETE CASCADE.
func (r *ReservationRepository) Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
