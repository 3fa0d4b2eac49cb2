package queries

import (
	"bytes"
	"context"
	"sort"
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/infra"
	"github.com/Fox-16s/reservat-io/internal/infra/query"
	"github.com/Fox-16s/reservat-io/internal/pkg/errs"
	"github.com/Fox-16s/reservat-io/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidMonth        = errs.New("month must be YYYY-MM")
)

const monthLayout = "2006-01"

type ListFilter struct {
	PropertyID string
	Cursor     *Cursor
	Limit      int
}

type ReservationQueries interface {
	List(ctx context.Context, filter ListFilter) ([]ReservationView, *Cursor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	Availability(ctx context.Context, propertyID string, start, end time.Time, excludeID *uuid.UUID) (*AvailabilityView, error)
	Calendar(ctx context.Context, propertyID string, month string) (*CalendarView, error)
	MonthlyTotals(ctx context.Context) ([]MonthlyTotalView, error)
	PaymentsOf(ctx context.Context, id uuid.UUID) ([]PaymentView, error)
	Properties() []PropertyView
}

// Snapshotter is the read side of the reservation cache.
type Snapshotter interface {
	Snapshot(ctx context.Context) ([]ReservationRecord, error)
}

type reservationQueriesImpl struct {
	cache Snapshotter
	store ReservationReadStore
	uow   shared.UnitOfWork
	loc   *time.Location
}

func NewReservationQueries(cache Snapshotter, store ReservationReadStore, uow shared.UnitOfWork, loc *time.Location) ReservationQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &reservationQueriesImpl{
		cache: cache,
		store: store,
		uow:   uow,
		loc:   loc,
	}
}

func (q *reservationQueriesImpl) Properties() []PropertyView {
	all := property.All()
	out := make([]PropertyView, len(all))
	for i, p := range all {
		out[i] = ToPropertyView(p)
	}
	return out
}

// List pages over the snapshot in start-date order. A zero limit returns
// everything after the cursor.
func (q *reservationQueriesImpl) List(ctx context.Context, filter ListFilter) ([]ReservationView, *Cursor, error) {
	var propertyID property.ID
	if filter.PropertyID != "" {
		id, err := property.ParseID(filter.PropertyID)
		if err != nil {
			return nil, nil, err
		}
		propertyID = id
	}

	records, err := q.cache.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	filtered := records[:0:0]
	for _, rec := range records {
		if propertyID != "" && rec.Reservation.PropertyID() != propertyID {
			continue
		}
		filtered = append(filtered, rec)
	}
	sortForList(filtered)

	if filter.Cursor != nil && filter.Cursor.After != "" {
		afterStart, afterID, derr := DecodeAfterCursor(filter.Cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		filtered = recordsAfter(filtered, afterStart, afterID)
	}

	limit := ValidateLimit(filter.Limit)
	var next *Cursor
	if limit > 0 && len(filtered) > limit {
		last := filtered[limit-1].Reservation
		next = &Cursor{After: EncodeAfterCursor(last.Dates().Start(), last.ID())}
		filtered = filtered[:limit]
	}

	views := make([]ReservationView, len(filtered))
	for i, rec := range filtered {
		views[i] = ToReservationView(rec)
	}
	return views, next, nil
}

// recordsAfter keeps the records strictly after (start, id) in list order.
// The cursor record itself need not still exist.
func recordsAfter(records []ReservationRecord, start time.Time, id uuid.UUID) []ReservationRecord {
	i := sort.Search(len(records), func(i int) bool {
		return compareListKey(records[i].Reservation, start, id) > 0
	})
	return records[i:]
}

// sortForList orders by start date, then id. The cursor keys on the same pair.
func sortForList(records []ReservationRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		b := records[j].Reservation
		return compareListKey(records[i].Reservation, b.Dates().Start(), b.ID()) < 0
	})
}

func compareListKey(r *reservation.Reservation, start time.Time, id uuid.UUID) int {
	if c := r.Dates().Start().Compare(start); c != 0 {
		return c
	}
	rid := r.ID()
	return bytes.Compare(rid[:], id[:])
}

// GetByID serves from the snapshot and falls back to the store, so a
// reservation committed before the cache caught up is still found.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	records, err := q.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Reservation.ID() == id {
			v := ToReservationView(rec)
			return &v, nil
		}
	}

	var rec *ReservationRecord
	err = q.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var ferr error
		rec, ferr = q.store.FindByID(ctx, db, id)
		return ferr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	v := ToReservationView(*rec)
	return &v, nil
}

func (q *reservationQueriesImpl) Availability(ctx context.Context, propertyID string, start, end time.Time, excludeID *uuid.UUID) (*AvailabilityView, error) {
	pid, err := property.ParseID(propertyID)
	if err != nil {
		return nil, err
	}
	dates, err := reservation.NewDateRangeIn(start, end, q.loc)
	if err != nil {
		return nil, err
	}

	bookings, err := q.bookings(ctx)
	if err != nil {
		return nil, err
	}
	if excludeID != nil {
		bookings = reservation.ExcludeReservation(bookings, *excludeID)
	}

	return &AvailabilityView{
		PropertyID: pid.String(),
		StartDate:  dates.Start(),
		EndDate:    dates.End(),
		Available:  reservation.IsRangeAvailable(dates, pid, bookings),
	}, nil
}

// Calendar lists every booked day of month for the property, in date order.
func (q *reservationQueriesImpl) Calendar(ctx context.Context, propertyID string, month string) (*CalendarView, error) {
	pid, err := property.ParseID(propertyID)
	if err != nil {
		return nil, err
	}
	p, _ := property.FindByID(pid)

	first, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMonth)
	}
	monthRange, err := reservation.NewDateRange(first, first.AddDate(0, 1, -1))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMonth)
	}

	records, err := q.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	days := make([]BookedDay, 0)
	for _, rec := range records {
		r := rec.Reservation
		if r.PropertyID() != pid || !r.Dates().Overlaps(monthRange) {
			continue
		}
		r.Dates().EachDay(func(day time.Time) {
			if !monthRange.Contains(day) {
				return
			}
			days = append(days, BookedDay{
				Date:          day.Format(time.DateOnly),
				ReservationID: r.ID(),
				ClientName:    r.Client().Name(),
			})
		})
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return &CalendarView{
		Property: ToPropertyView(p),
		Month:    first.Format(monthLayout),
		Days:     days,
	}, nil
}

func (q *reservationQueriesImpl) MonthlyTotals(ctx context.Context) ([]MonthlyTotalView, error) {
	records, err := q.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	totals := reservation.MonthlyTotals(reservationsOf(records))

	out := make([]MonthlyTotalView, len(totals))
	for i, m := range totals {
		out[i] = toMonthlyTotalView(m)
	}
	return out, nil
}

// PaymentsOf reads from the store rather than the snapshot, so rows removed by
// cascade are never reported.
func (q *reservationQueriesImpl) PaymentsOf(ctx context.Context, id uuid.UUID) ([]PaymentView, error) {
	var payments []PaymentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		if _, err := q.store.FindByID(ctx, db, id); err != nil {
			return err
		}
		var err error
		payments, err = q.store.PaymentsOf(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return payments, nil
}

func (q *reservationQueriesImpl) bookings(ctx context.Context) ([]reservation.Booking, error) {
	records, err := q.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reservation.BookingsOf(reservationsOf(records)), nil
}

func reservationsOf(records []ReservationRecord) []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(records))
	for i, rec := range records {
		out[i] = rec.Reservation
	}
	return out
}
