package repository

import (
	"context"

	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/infra"
	"github.com/Fox-16s/reservat-io/internal/infra/query"
	"github.com/Fox-16s/reservat-io/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePaymentMethod(ctx context.Context, db query.DBTX, arg query.CreatePaymentMethodParams) (uuid.UUID, error)
}

// PaymentRepository only inserts. Payment rows are never updated, and are
// deleted only by cascade.
type PaymentRepository struct {
	queries PaymentWriteQueries
	db      query.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db query.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx query.DBTX, reservationID uuid.UUID, p reservation.PaymentMethod) (uuid.UUID, error) {
	id, err := r.queries.CreatePaymentMethod(ctx, tx, converter.PaymentToCreateParams(reservationID, p))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment method", err)
	}
	return id, nil
}
