package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/infra"
	"github.com/Fox-16s/reservat-io/internal/usecase/shared"

	"github.com/google/uuid"
)

// mutations is the only write path for reservations. Every successful call
// ends with a full cache refresh; a failed call leaves the cache alone.
type mutations struct {
	uow   shared.UnitOfWork
	cache ReservationCache
	loc   *time.Location
}

func (m *mutations) create(
	ctx context.Context,
	actor uuid.UUID,
	propertyID property.ID,
	client reservation.Client,
	dates reservation.DateRange,
	total reservation.Money,
	payments []reservation.PaymentMethod,
) (uuid.UUID, error) {
	if actor == uuid.Nil {
		return uuid.Nil, ErrNoAuthenticatedUser
	}
	res, err := reservation.NewReservation(propertyID, actor, client, dates, total, payments)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			return derr
		}
		for _, p := range res.Payments() {
			if _, derr = tx.Payments().Create(ctx, tx.DB(), id, p); derr != nil {
				return derr
			}
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	m.refresh(ctx)
	return createdID, nil
}

// update overwrites client, dates and total, then inserts the incoming
// payments whose key is not on file yet. Existing payment rows are never
// touched.
func (m *mutations) update(
	ctx context.Context,
	id uuid.UUID,
	client reservation.Client,
	dates reservation.DateRange,
	total reservation.Money,
	incoming []reservation.PaymentMethod,
) error {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reads().ReservationForUpdate(ctx, id)
		if derr != nil {
			return notFound(derr)
		}
		return applyUpdate(ctx, tx, res, client, dates, total, incoming, m.loc)
	})
	if err != nil {
		return err
	}

	m.refresh(ctx)
	return nil
}

func (m *mutations) remove(ctx context.Context, id uuid.UUID) error {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFound(tx.Reservations().Delete(ctx, tx.DB(), id))
	})
	if err != nil {
		return err
	}

	m.refresh(ctx)
	return nil
}

// refresh reloads the cache after a committed write. The write already
// succeeded, so a reload failure is logged and the next read retries.
func (m *mutations) refresh(ctx context.Context) {
	if err := m.cache.Refresh(ctx); err != nil {
		slog.Warn("reservation cache refresh failed after write", "error", err)
	}
}

func applyUpdate(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	client reservation.Client,
	dates reservation.DateRange,
	total reservation.Money,
	incoming []reservation.PaymentMethod,
	loc *time.Location,
) error {
	fresh := res.NewPayments(incoming, loc)
	if err := res.UpdateDetails(client, dates, total); err != nil {
		return err
	}
	for _, p := range fresh {
		if err := res.AddPayment(p, loc); err != nil {
			return err
		}
	}

	if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
		return notFound(err)
	}
	for _, p := range fresh {
		if _, err := tx.Payments().Create(ctx, tx.DB(), res.ID(), p); err != nil {
			return err
		}
	}
	return nil
}

func notFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrReservationNotFound
	}
	return err
}
