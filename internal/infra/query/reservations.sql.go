package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `
INSERT INTO reservations (
    id, property_id, client_name, client_phone, client_notes,
    start_date, end_date, total_amount, user_id, payment_notes
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8::bigint::numeric / 100, $9, $10
)
RETURNING created_at`

type CreateReservationParams struct {
	ID           uuid.UUID
	PropertyID   string
	ClientName   string
	ClientPhone  string
	ClientNotes  pgtype.Text
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	TotalCents   int64
	UserID       uuid.UUID
	PaymentNotes pgtype.Text
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (pgtype.Timestamptz, error) {
	var createdAt pgtype.Timestamptz
	err := db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.PropertyID,
		arg.ClientName,
		arg.ClientPhone,
		arg.ClientNotes,
		arg.StartDate,
		arg.EndDate,
		arg.TotalCents,
		arg.UserID,
		arg.PaymentNotes,
	).Scan(&createdAt)
	return createdAt, err
}

const updateReservation = `
UPDATE reservations
SET client_name = $2,
    client_phone = $3,
    client_notes = $4,
    start_date = $5,
    end_date = $6,
    total_amount = $7::bigint::numeric / 100
WHERE id = $1`

type UpdateReservationParams struct {
	ID          uuid.UUID
	ClientName  string
	ClientPhone string
	ClientNotes pgtype.Text
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	TotalCents  int64
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.ClientName,
		arg.ClientPhone,
		arg.ClientNotes,
		arg.StartDate,
		arg.EndDate,
		arg.TotalCents,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updatePaymentNotes = `
UPDATE reservations
SET payment_notes = $2
WHERE id = $1`

func (q *Queries) UpdatePaymentNotes(ctx context.Context, db DBTX, id uuid.UUID, notes pgtype.Text) (int64, error) {
	tag, err := db.Exec(ctx, updatePaymentNotes, id, notes)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReservation = `
DELETE FROM reservations
WHERE id = $1`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const selectReservation = `
SELECT r.id, r.property_id, r.client_name, r.client_phone, r.client_notes,
       r.start_date, r.end_date, (r.total_amount * 100)::bigint,
       r.user_id, r.payment_notes, r.created_at,
       COALESCE(p.name, '')
FROM reservations r
LEFT JOIN profiles p ON p.id = r.user_id`

const getReservationByID = selectReservation + `
WHERE r.id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (ListReservationsRow, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

// Row lock so concurrent payment additions on one reservation serialize.
const getReservationForUpdate = getReservationByID + `
FOR UPDATE OF r`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (ListReservationsRow, error) {
	return scanReservation(db.QueryRow(ctx, getReservationForUpdate, id))
}

const listReservations = selectReservation + `
ORDER BY r.start_date ASC, r.created_at ASC`

func (q *Queries) ListReservations(ctx context.Context, db DBTX) ([]ListReservationsRow, error) {
	rows, err := db.Query(ctx, listReservations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListReservationsRow
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanReservation(row rowScanner) (ListReservationsRow, error) {
	var i ListReservationsRow
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.ClientName,
		&i.ClientPhone,
		&i.ClientNotes,
		&i.StartDate,
		&i.EndDate,
		&i.TotalCents,
		&i.UserID,
		&i.PaymentNotes,
		&i.CreatedAt,
		&i.CreatedBy,
	)
	return i, err
}
