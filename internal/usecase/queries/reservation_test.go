//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"slices"
	"testing"
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/pkg/clock"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"
	"github.com/Fox-16s/reservat-io/tests/common/builder"
	"github.com/Fox-16s/reservat-io/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	q     queries.ReservationQueries
	store *memstore.Store
}

func newFixture(t *testing.T, seeds ...*reservation.Reservation) fixture {
	t.Helper()
	clk := clock.NewMockClock(refreshedAt)
	store := memstore.New(clk)
	for _, r := range seeds {
		store.Seed(r)
	}
	cache := queries.NewReservationCache(store, store)
	return fixture{q: queries.NewReservationQueries(cache, store, store, time.UTC), store: store}
}

func viewIDs(views []queries.ReservationView) []uuid.UUID {
	out := make([]uuid.UUID, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestReservationQueries_List(t *testing.T) {
	ctx := context.Background()
	a := builder.NewReservationBuilder().WithDates("2024-03-01", "2024-03-03").BuildDomain()
	b := builder.NewReservationBuilder().WithProperty("2").WithDates("2024-03-02", "2024-03-04").BuildDomain()
	c := builder.NewReservationBuilder().WithDates("2024-03-10", "2024-03-12").BuildDomain()
	f := newFixture(t, c, b, a)

	t.Run("all in start order", func(t *testing.T) {
		views, next, err := f.q.List(ctx, queries.ListFilter{})
		require.NoError(t, err)
		assert.Nil(t, next)
		assert.Equal(t, []uuid.UUID{a.ID(), b.ID(), c.ID()}, viewIDs(views))
	})

	t.Run("filtered by property", func(t *testing.T) {
		views, _, err := f.q.List(ctx, queries.ListFilter{PropertyID: "1"})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a.ID(), c.ID()}, viewIDs(views))
	})

	t.Run("pages with a cursor", func(t *testing.T) {
		page1, next, err := f.q.List(ctx, queries.ListFilter{Limit: 2})
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, []uuid.UUID{a.ID(), b.ID()}, viewIDs(page1))

		page2, next, err := f.q.List(ctx, queries.ListFilter{Limit: 2, Cursor: next})
		require.NoError(t, err)
		assert.Nil(t, next)
		assert.Equal(t, []uuid.UUID{c.ID()}, viewIDs(page2))
	})

	t.Run("cursor of a removed record keeps its same-day neighbours", func(t *testing.T) {
		sameDay := []*reservation.Reservation{
			builder.NewReservationBuilder().WithProperty("1").WithDates("2024-05-01", "2024-05-02").BuildDomain(),
			builder.NewReservationBuilder().WithProperty("2").WithDates("2024-05-01", "2024-05-03").BuildDomain(),
			builder.NewReservationBuilder().WithProperty("3").WithDates("2024-05-01", "2024-05-04").BuildDomain(),
		}
		g := newFixture(t, sameDay...)
		ids := []uuid.UUID{sameDay[0].ID(), sameDay[1].ID(), sameDay[2].ID()}
		slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

		all, _, err := g.q.List(ctx, queries.ListFilter{})
		require.NoError(t, err)
		require.Equal(t, ids, viewIDs(all), "same start date orders by id")

		start := sameDay[0].Dates().Start()
		views, _, err := g.q.List(ctx, queries.ListFilter{
			Cursor: &queries.Cursor{After: queries.EncodeAfterCursor(start, uuid.Nil)},
		})
		require.NoError(t, err)
		assert.Equal(t, ids, viewIDs(views))

		views, _, err = g.q.List(ctx, queries.ListFilter{
			Cursor: &queries.Cursor{After: queries.EncodeAfterCursor(start, ids[0])},
		})
		require.NoError(t, err)
		assert.Equal(t, ids[1:], viewIDs(views))
	})

	t.Run("unknown property", func(t *testing.T) {
		_, _, err := f.q.List(ctx, queries.ListFilter{PropertyID: "42"})
		assert.ErrorIs(t, err, property.ErrPropertyNotFound)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		_, _, err := f.q.List(ctx, queries.ListFilter{Cursor: &queries.Cursor{After: "garbage"}})
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	r := builder.NewReservationBuilder().
		WithPayment(reservation.PaymentCash, 30000, "2024-03-01").
		WithPayment(reservation.PaymentBankTransfer, 20000, "2024-03-02").
		BuildDomain()
	f := newFixture(t, r)

	t.Run("renders the card", func(t *testing.T) {
		v, err := f.q.GetByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, "Beach House", v.Property.Name)
		assert.Equal(t, 5, v.Nights)
		assert.Equal(t, 1000.0, v.TotalAmount)
		assert.Equal(t, 500.0, v.PaidAmount)
		assert.Equal(t, 500.0, v.RemainingAmount)
		assert.Len(t, v.Payments, 2)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := f.q.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestReservationQueries_GetByID_StaleSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, _, err := f.q.List(ctx, queries.ListFilter{})
	require.NoError(t, err)

	committed := builder.NewReservationBuilder().BuildDomain()
	f.store.Seed(committed)

	v, err := f.q.GetByID(ctx, committed.ID())
	require.NoError(t, err, "a committed row the cache has not loaded yet is still found")
	assert.Equal(t, committed.ID(), v.ID)
}

func TestReservationQueries_Availability(t *testing.T) {
	ctx := context.Background()
	existing := builder.NewReservationBuilder().WithDates("2024-03-05", "2024-03-10").BuildDomain()
	f := newFixture(t, existing)

	tests := []struct {
		name       string
		propertyID string
		start, end string
		exclude    *uuid.UUID
		want       bool
	}{
		{"starts on the last booked day", "1", "2024-03-10", "2024-03-12", nil, false},
		{"ends on the first booked day", "1", "2024-03-01", "2024-03-05", nil, false},
		{"day after checkout", "1", "2024-03-11", "2024-03-12", nil, true},
		{"same dates on another property", "2", "2024-03-05", "2024-03-10", nil, true},
		{"own dates while editing", "1", "2024-03-06", "2024-03-08", ptrTo(existing.ID()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := f.q.Availability(ctx, tt.propertyID, builder.Day(tt.start), builder.Day(tt.end), tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Available)
			assert.Equal(t, tt.propertyID, v.PropertyID)
		})
	}

	t.Run("inverted range", func(t *testing.T) {
		_, err := f.q.Availability(ctx, "1", builder.Day("2024-03-12"), builder.Day("2024-03-10"), nil)
		assert.ErrorIs(t, err, reservation.ErrInvertedDateRange)
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := f.q.Availability(ctx, "0", builder.Day("2024-03-10"), builder.Day("2024-03-12"), nil)
		assert.ErrorIs(t, err, property.ErrPropertyNotFound)
	})
}

func TestReservationQueries_Calendar(t *testing.T) {
	ctx := context.Background()
	spanning := builder.NewReservationBuilder().WithDates("2024-02-28", "2024-03-02").
		With(func(b *builder.ReservationBuilder) { b.ClientName = "Bruno" }).BuildDomain()
	inside := builder.NewReservationBuilder().WithDates("2024-03-30", "2024-03-31").BuildDomain()
	other := builder.NewReservationBuilder().WithProperty("3").WithDates("2024-03-01", "2024-03-01").BuildDomain()
	f := newFixture(t, spanning, inside, other)

	t.Run("clips to the month and skips other properties", func(t *testing.T) {
		v, err := f.q.Calendar(ctx, "1", "2024-03")
		require.NoError(t, err)

		want := []queries.BookedDay{
			{Date: "2024-03-01", ReservationID: spanning.ID(), ClientName: "Bruno"},
			{Date: "2024-03-02", ReservationID: spanning.ID(), ClientName: "Bruno"},
			{Date: "2024-03-30", ReservationID: inside.ID(), ClientName: "Ana Pérez"},
			{Date: "2024-03-31", ReservationID: inside.ID(), ClientName: "Ana Pérez"},
		}
		if diff := cmp.Diff(want, v.Days); diff != "" {
			t.Errorf("Calendar days mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "Beach House", v.Property.Name)
	})

	t.Run("leap February", func(t *testing.T) {
		v, err := f.q.Calendar(ctx, "1", "2024-02")
		require.NoError(t, err)
		require.Len(t, v.Days, 2)
		assert.Equal(t, "2024-02-29", v.Days[1].Date)
	})

	t.Run("empty month", func(t *testing.T) {
		v, err := f.q.Calendar(ctx, "2", "2024-03")
		require.NoError(t, err)
		assert.NotNil(t, v.Days)
		assert.Empty(t, v.Days)
	})

	t.Run("bad month", func(t *testing.T) {
		_, err := f.q.Calendar(ctx, "1", "March")
		assert.ErrorIs(t, err, queries.ErrInvalidMonth)
	})
}

func TestReservationQueries_MonthlyTotals(t *testing.T) {
	f := newFixture(t,
		builder.NewReservationBuilder().WithDates("2024-03-01", "2024-03-02").WithTotal(100000).
			WithPayment(reservation.PaymentCash, 40000, "2024-02-20").BuildDomain(),
		builder.NewReservationBuilder().WithDates("2024-03-20", "2024-03-22").WithTotal(50000).BuildDomain(),
		builder.NewReservationBuilder().WithDates("2024-04-01", "2024-04-02").WithTotal(20000).BuildDomain(),
	)

	got, err := f.q.MonthlyTotals(context.Background())
	require.NoError(t, err)

	want := []queries.MonthlyTotalView{
		{Month: "2024-04", Count: 1, Total: 200, Paid: 0, Pending: 200},
		{Month: "2024-03", Count: 2, Total: 1500, Paid: 400, Pending: 1100},
	}
	assert.Equal(t, want, got)
}

func TestReservationQueries_PaymentsOf(t *testing.T) {
	ctx := context.Background()
	r := builder.NewReservationBuilder().WithPayment(reservation.PaymentCard, 12345, "2024-03-01").BuildDomain()
	f := newFixture(t, r)

	t.Run("reads rows from the store", func(t *testing.T) {
		got, err := f.q.PaymentsOf(ctx, r.ID())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 123.45, got[0].Amount)
		assert.Equal(t, "card", got[0].Type)
	})

	t.Run("missing reservation", func(t *testing.T) {
		_, err := f.q.PaymentsOf(ctx, uuid.New())
		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestReservationQueries_Properties(t *testing.T) {
	f := newFixture(t)
	got := f.q.Properties()
	require.Len(t, got, 4)
	assert.Equal(t, queries.PropertyView{ID: "4", Name: "Lake House", ColorTag: "#D3E4FD"}, got[3])
}

func ptrTo[T any](v T) *T { return &v }
