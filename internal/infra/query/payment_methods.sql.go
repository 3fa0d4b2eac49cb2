package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPaymentMethod = `
INSERT INTO payment_methods (reservation_id, type, amount, currency, payment_date)
VALUES ($1, $2, $3::bigint::numeric / 100, $4, $5)
RETURNING id`

type CreatePaymentMethodParams struct {
	ReservationID uuid.UUID
	Type          string
	AmountCents   int64
	Currency      string
	PaymentDate   pgtype.Timestamptz
}

func (q *Queries) CreatePaymentMethod(ctx context.Context, db DBTX, arg CreatePaymentMethodParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createPaymentMethod,
		arg.ReservationID,
		arg.Type,
		arg.AmountCents,
		arg.Currency,
		arg.PaymentDate,
	).Scan(&id)
	return id, err
}

const selectPaymentMethod = `
SELECT id, reservation_id, type, (amount * 100)::bigint, currency, payment_date, created_at
FROM payment_methods`

const listPaymentMethodsByReservation = selectPaymentMethod + `
WHERE reservation_id = $1
ORDER BY payment_date ASC, created_at ASC`

func (q *Queries) ListPaymentMethodsByReservation(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]PaymentMethods, error) {
	return collectPaymentMethods(db.Query(ctx, listPaymentMethodsByReservation, reservationID))
}

const listPaymentMethods = selectPaymentMethod + `
ORDER BY reservation_id, payment_date ASC, created_at ASC`

func (q *Queries) ListPaymentMethods(ctx context.Context, db DBTX) ([]PaymentMethods, error) {
	return collectPaymentMethods(db.Query(ctx, listPaymentMethods))
}

func collectPaymentMethods(rows pgx.Rows, err error) ([]PaymentMethods, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PaymentMethods
	for rows.Next() {
		var i PaymentMethods
		if err := rows.Scan(
			&i.ID,
			&i.ReservationID,
			&i.Type,
			&i.AmountCents,
			&i.Currency,
			&i.PaymentDate,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
