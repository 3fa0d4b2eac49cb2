package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

// UserWithProfileRow is a user joined with its profile.
type UserWithProfileRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
	Name         string
	AvatarUrl    pgtype.Text
	CreatedAt    pgtype.Timestamptz
}

// Amounts are read as cents; the column is numeric(12,2).
type Reservations struct {
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
	CreatedAt    pgtype.Timestamptz
}

type ListReservationsRow struct {
	Reservations
	CreatedBy string
}

type PaymentMethods struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Type          string
	AmountCents   int64
	Currency      string
	PaymentDate   pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
}
