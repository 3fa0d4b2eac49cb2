//go:build unit

// Package memstore is an in-memory unit of work for use case tests. Each
// Within call works on a copy and only publishes it when fn succeeds.
package memstore

import (
	"context"
	"sync"

	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/domain/user"
	"github.com/Fox-16s/reservat-io/internal/infra"
	"github.com/Fox-16s/reservat-io/internal/infra/query"
	"github.com/Fox-16s/reservat-io/internal/pkg/clock"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"
	"github.com/Fox-16s/reservat-io/internal/usecase/shared"

	"github.com/google/uuid"
)

type row struct {
	res      *reservation.Reservation
	payments []reservation.PaymentMethod
	notes    *string
}

type state struct {
	rows  map[uuid.UUID]row
	order []uuid.UUID
	users map[uuid.UUID]*user.User
}

func (s state) clone() state {
	out := state{
		rows:  make(map[uuid.UUID]row, len(s.rows)),
		order: append([]uuid.UUID(nil), s.order...),
		users: make(map[uuid.UUID]*user.User, len(s.users)),
	}
	for k, v := range s.rows {
		v.payments = append([]reservation.PaymentMethod(nil), v.payments...)
		out.rows[k] = v
	}
	for k, v := range s.users {
		out.users[k] = v
	}
	return out
}

type Store struct {
	mu    sync.Mutex
	cur   state
	clock clock.Clock

	// ListAllErr makes every ListAll fail until cleared.
	ListAllErr   error
	ListAllCalls int
	Commits      int
}

var (
	_ shared.UnitOfWork            = (*Store)(nil)
	_ queries.ReservationReadStore = (*Store)(nil)
)

func New(clk clock.Clock) *Store {
	return &Store{
		cur:   state{rows: map[uuid.UUID]row{}, users: map[uuid.UUID]*user.User{}},
		clock: clk,
	}
}

// Seed stores a reservation as if it had been committed.
func (s *Store) Seed(res *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.rows[res.ID()] = row{res: res, payments: res.Payments(), notes: res.PaymentNotes()}
	s.cur.order = append(s.cur.order, res.ID())
}

func (s *Store) SeedUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.users[u.ID()] = u
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cur.rows)
}

// Reservation returns the committed aggregate, or nil.
func (s *Store) Reservation(id uuid.UUID) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.cur.rows[id]
	if !ok {
		return nil
	}
	return s.cur.aggregate(r)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	work := s.cur.clone()
	s.mu.Unlock()

	if err := fn(ctx, &tx{st: &work, clock: s.clock}); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = work
	s.Commits++
	s.mu.Unlock()
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) ListAll(_ context.Context, _ query.DBTX) ([]queries.ReservationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListAllCalls++
	if s.ListAllErr != nil {
		return nil, s.ListAllErr
	}
	out := make([]queries.ReservationRecord, 0, len(s.cur.order))
	for _, id := range s.cur.order {
		out = append(out, s.cur.record(s.cur.rows[id]))
	}
	return out, nil
}

func (s *Store) FindByID(_ context.Context, _ query.DBTX, id uuid.UUID) (*queries.ReservationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.cur.rows[id]
	if !ok {
		return nil, notFound("reservation")
	}
	rec := s.cur.record(r)
	return &rec, nil
}

func (s *Store) PaymentsOf(_ context.Context, _ query.DBTX, id uuid.UUID) ([]queries.PaymentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.cur.rows[id]
	out := make([]queries.PaymentView, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, queries.ToPaymentView(p))
	}
	return out, nil
}

func (st *state) aggregate(r row) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.res.ID(), r.res.PropertyID(), r.res.UserID(), r.res.Client(), r.res.Dates(),
		r.res.TotalAmount(), append([]reservation.PaymentMethod(nil), r.payments...), r.notes, r.res.CreatedAt(),
	)
}

func (st *state) record(r row) queries.ReservationRecord {
	rec := queries.ReservationRecord{Reservation: st.aggregate(r)}
	if u, ok := st.users[r.res.UserID()]; ok {
		rec.CreatedBy = u.Name().Value()
	}
	return rec
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type tx struct {
	st    *state
	clock clock.Clock
}

func (t *tx) Reservations() shared.ReservationRepository { return &reservationRepo{t} }
func (t *tx) Payments() shared.PaymentRepository         { return &paymentRepo{t} }
func (t *tx) Users() shared.UserRepository               { return &userRepo{t} }
func (t *tx) Reads() shared.CommandReads                 { return &reads{st: t.st} }
func (t *tx) DB() query.DBTX                             { return nil }

type reads struct{ st *state }

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	found, ok := r.st.rows[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return r.st.aggregate(found), nil
}

func (r *reads) ReservationForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.ReservationByID(ctx, id)
}

type reservationRepo struct{ t *tx }

// Create keeps the aggregate id and stamps created_at from the clock, like
// the column default.
func (r *reservationRepo) Create(_ context.Context, _ query.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if _, ok := r.t.st.rows[res.ID()]; ok {
		return uuid.Nil, infra.WrapRepoErr("reservation exists", nil, infra.KindDuplicateKey)
	}
	stamped := reservation.ReconstructReservation(
		res.ID(), res.PropertyID(), res.UserID(), res.Client(), res.Dates(),
		res.TotalAmount(), nil, res.PaymentNotes(), r.t.clock.Now(),
	)
	r.t.st.rows[res.ID()] = row{res: stamped, notes: res.PaymentNotes()}
	r.t.st.order = append(r.t.st.order, res.ID())
	return res.ID(), nil
}

func (r *reservationRepo) Update(_ context.Context, _ query.DBTX, res *reservation.Reservation) error {
	cur, ok := r.t.st.rows[res.ID()]
	if !ok {
		return notFound("reservation")
	}
	cur.res = reservation.ReconstructReservation(
		res.ID(), cur.res.PropertyID(), cur.res.UserID(), res.Client(), res.Dates(),
		res.TotalAmount(), nil, cur.notes, cur.res.CreatedAt(),
	)
	r.t.st.rows[res.ID()] = cur
	return nil
}

func (r *reservationRepo) UpdatePaymentNotes(_ context.Context, _ query.DBTX, id uuid.UUID, notes *string) error {
	cur, ok := r.t.st.rows[id]
	if !ok {
		return notFound("reservation")
	}
	cur.notes = notes
	r.t.st.rows[id] = cur
	return nil
}

// Delete cascades to payments by dropping the row.
func (r *reservationRepo) Delete(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	if _, ok := r.t.st.rows[id]; !ok {
		return notFound("reservation")
	}
	delete(r.t.st.rows, id)
	order := r.t.st.order[:0]
	for _, o := range r.t.st.order {
		if o != id {
			order = append(order, o)
		}
	}
	r.t.st.order = order
	return nil
}

type paymentRepo struct{ t *tx }

func (r *paymentRepo) Create(_ context.Context, _ query.DBTX, reservationID uuid.UUID, p reservation.PaymentMethod) (uuid.UUID, error) {
	cur, ok := r.t.st.rows[reservationID]
	if !ok {
		return uuid.Nil, infra.WrapRepoErr("reservation missing", nil, infra.KindForeignKeyViolated)
	}
	id := uuid.New()
	cur.payments = append(cur.payments, reservation.ReconstructPaymentMethod(id, p.Type(), p.Amount(), p.Date(), p.Currency()))
	r.t.st.rows[reservationID] = cur
	return id, nil
}

type userRepo struct{ t *tx }

func (r *userRepo) Create(_ context.Context, _ query.DBTX, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.t.st.users {
		if existing.Email().Value() == u.Email().Value() {
			return uuid.Nil, infra.WrapRepoErr("email taken", nil, infra.KindDuplicateKey)
		}
	}
	r.t.st.users[u.ID()] = u
	return u.ID(), nil
}
