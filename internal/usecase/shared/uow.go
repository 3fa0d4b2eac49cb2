package shared

import (
	"context"

	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/domain/user"
	"github.com/Fox-16s/reservat-io/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Users() UserRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	// ReservationByID loads the aggregate with its payments.
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ReservationForUpdate is ReservationByID plus a row lock held until the transaction ends.
	ReservationForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error
	UpdatePaymentNotes(ctx context.Context, tx query.DBTX, id uuid.UUID, notes *string) error
	Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx query.DBTX, reservationID uuid.UUID, p reservation.PaymentMethod) (uuid.UUID, error)
}

type UserRepository interface {
	// Create writes the users row and its profile.
	Create(ctx context.Context, tx query.DBTX, u *user.User) (uuid.UUID, error)
}
