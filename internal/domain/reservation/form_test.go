//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/pkg/clock"
	"github.com/Fox-16s/reservat-io/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formNow = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

func details(start, end string) reservation.DetailsInput {
	return reservation.DetailsInput{
		ClientName:  "Ana",
		ClientPhone: "+54 11 5555",
		Start:       builder.DayPtr(start),
		End:         builder.DayPtr(end),
	}
}

func newCreateForm(t *testing.T) *reservation.Form {
	t.Helper()
	f, err := reservation.NewCreateForm("1", time.UTC, clock.NewMockClock(formNow))
	require.NoError(t, err)
	return f
}

func TestCreateForm(t *testing.T) {
	booked := []reservation.Booking{
		builder.NewReservationBuilder().WithProperty("1").WithDates("2024-06-01", "2024-06-05").BuildBooking(),
	}

	t.Run("基本成功ケース", func(t *testing.T) {
		f := newCreateForm(t)
		assert.Equal(t, reservation.StateCollectingClientAndDates, f.State())

		require.NoError(t, f.SubmitDetails(details("2024-06-06", "2024-06-08"), booked))
		assert.Equal(t, reservation.StateCollectingPayment, f.State())

		err := f.SubmitPayment(1000, []reservation.PaymentInput{
			{Type: "cash", Amount: 600},
			{Type: "card", Amount: 400, Currency: "usd"},
		})
		require.NoError(t, err)
		assert.Equal(t, reservation.StateSubmitted, f.State())

		s, err := f.Submission()
		require.NoError(t, err)
		assert.Equal(t, reservation.FormCreate, s.Mode)
		assert.Equal(t, property.ID("1"), s.PropertyID)
		assert.Equal(t, int64(100000), s.Total.Cents())
		require.Len(t, s.Payments, 2)
		assert.Equal(t, formNow, s.Payments[0].Date())
		assert.Equal(t, reservation.CurrencyUSD, s.Payments[1].Currency())
	})

	t.Run("支払い合計が総額を超えると送信不可", func(t *testing.T) {
		f := newCreateForm(t)
		require.NoError(t, f.SubmitDetails(details("2024-07-01", "2024-07-03"), booked))

		err := f.SubmitPayment(1000, []reservation.PaymentInput{
			{Type: "cash", Amount: 600},
			{Type: "card", Amount: 500},
		})
		assert.ErrorIs(t, err, reservation.ErrPaymentsExceedTotal)
		assert.Equal(t, reservation.StateCollectingPayment, f.State())

		_, err = f.Submission()
		assert.ErrorIs(t, err, reservation.ErrFormNotSubmitted)
	})

	t.Run("重複する日付は詳細ステップで拒否", func(t *testing.T) {
		f := newCreateForm(t)
		err := f.SubmitDetails(details("2024-06-05", "2024-06-08"), booked)
		assert.ErrorIs(t, err, reservation.ErrRangeUnavailable)
		assert.Equal(t, reservation.StateCollectingClientAndDates, f.State())
	})

	t.Run("入力エラー", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*reservation.DetailsInput)
			errIs  error
		}{
			{"名前なしNG", func(in *reservation.DetailsInput) { in.ClientName = " " }, reservation.ErrClientNameRequired},
			{"電話なしNG", func(in *reservation.DetailsInput) { in.ClientPhone = "" }, reservation.ErrClientPhoneRequired},
			{"開始日なしNG", func(in *reservation.DetailsInput) { in.Start = nil }, reservation.ErrIncompleteDateRange},
			{"終了日なしNG", func(in *reservation.DetailsInput) { in.End = nil }, reservation.ErrIncompleteDateRange},
			{"逆転NG", func(in *reservation.DetailsInput) { in.End = builder.DayPtr("2024-08-01") }, reservation.ErrInvertedDateRange},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := details("2024-08-05", "2024-08-07")
				tt.mutate(&in)
				err := newCreateForm(t).SubmitDetails(in, nil)
				assert.ErrorIs(t, err, tt.errIs)
			})
		}
	})

	t.Run("支払い入力エラー", func(t *testing.T) {
		tests := []struct {
			name  string
			total float64
			rows  []reservation.PaymentInput
			errIs error
		}{
			{"総額ゼロNG", 0, nil, reservation.ErrNonPositiveTotal},
			{"総額マイナスNG", -5, nil, reservation.ErrNonPositiveTotal},
			{"不明な支払い種別NG", 100, []reservation.PaymentInput{{Type: "cheque", Amount: 10}}, reservation.ErrInvalidPaymentType},
			{"支払いゼロNG", 100, []reservation.PaymentInput{{Type: "cash", Amount: 0}}, reservation.ErrNonPositivePayment},
			{"支払いマイナスNG", 100, []reservation.PaymentInput{{Type: "cash", Amount: -1}}, reservation.ErrNonPositivePayment},
			{"総額が上限超えNG", 1e11, nil, reservation.ErrInvalidAmount},
			{"巨大な支払いNG", 1000, []reservation.PaymentInput{
				{Type: "cash", Amount: 6e16},
				{Type: "card", Amount: 6e16},
			}, reservation.ErrInvalidAmount},
			{"不明な通貨NG", 100, []reservation.PaymentInput{{Type: "cash", Amount: 10, Currency: "BTC"}}, reservation.ErrInvalidCurrency},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newCreateForm(t)
				require.NoError(t, f.SubmitDetails(details("2024-08-05", "2024-08-07"), nil))
				assert.ErrorIs(t, f.SubmitPayment(tt.total, tt.rows), tt.errIs)
				assert.Equal(t, reservation.StateCollectingPayment, f.State())
			})
		}
	})

	t.Run("支払いなしでも送信可", func(t *testing.T) {
		f := newCreateForm(t)
		require.NoError(t, f.SubmitDetails(details("2024-08-05", "2024-08-07"), nil))
		require.NoError(t, f.SubmitPayment(250.5, nil))
		s, err := f.Submission()
		require.NoError(t, err)
		assert.Empty(t, s.Payments)
		assert.Equal(t, int64(25050), s.Total.Cents())
	})

	t.Run("順序違いの遷移NG", func(t *testing.T) {
		f := newCreateForm(t)
		assert.ErrorIs(t, f.SubmitPayment(100, nil), reservation.ErrInvalidFormTransition)

		require.NoError(t, f.SubmitDetails(details("2024-08-05", "2024-08-07"), nil))
		assert.ErrorIs(t, f.SubmitDetails(details("2024-08-05", "2024-08-07"), nil), reservation.ErrInvalidFormTransition)

		require.NoError(t, f.SubmitPayment(100, nil))
		assert.ErrorIs(t, f.SubmitPayment(100, nil), reservation.ErrInvalidFormTransition)
	})

	t.Run("不明な物件NG", func(t *testing.T) {
		_, err := reservation.NewCreateForm("42", time.UTC, clock.NewMockClock(formNow))
		assert.ErrorIs(t, err, property.ErrPropertyNotFound)
	})
}

func TestEditForm(t *testing.T) {
	existing := builder.NewReservationBuilder().
		WithProperty("2").
		WithDates("2024-06-01", "2024-06-05").
		WithTotal(100000).
		WithPayment(reservation.PaymentCash, 60000, "2024-05-01").
		BuildDomain()
	neighbour := builder.NewReservationBuilder().
		WithProperty("2").
		WithDates("2024-06-10", "2024-06-12").
		BuildBooking()
	bookings := []reservation.Booking{existing.Booking(), neighbour}

	clk := clock.NewMockClock(formNow)

	t.Run("自分の日付と重なっても更新可", func(t *testing.T) {
		f := reservation.NewEditForm(existing, time.UTC, clk)
		require.NoError(t, f.SubmitDetails(details("2024-06-03", "2024-06-08"), bookings))
		assert.Equal(t, reservation.StateSubmitted, f.State())

		s, err := f.Submission()
		require.NoError(t, err)
		assert.Equal(t, reservation.FormEdit, s.Mode)
		assert.Equal(t, existing.ID(), s.ReservationID)
		assert.Equal(t, existing.TotalAmount(), s.Total)
		assert.Empty(t, s.Payments)
	})

	t.Run("他の予約と重なるとNG", func(t *testing.T) {
		f := reservation.NewEditForm(existing, time.UTC, clk)
		err := f.SubmitDetails(details("2024-06-03", "2024-06-10"), bookings)
		assert.ErrorIs(t, err, reservation.ErrRangeUnavailable)
	})

	t.Run("総額の変更", func(t *testing.T) {
		lower := 500.0
		in := details("2024-06-01", "2024-06-05")
		in.TotalAmount = &lower
		f := reservation.NewEditForm(existing, time.UTC, clk)
		assert.ErrorIs(t, f.SubmitDetails(in, bookings), reservation.ErrPaymentsExceedTotal)

		zero := 0.0
		in.TotalAmount = &zero
		f = reservation.NewEditForm(existing, time.UTC, clk)
		assert.ErrorIs(t, f.SubmitDetails(in, bookings), reservation.ErrNonPositiveTotal)

		higher := 1500.0
		in.TotalAmount = &higher
		f = reservation.NewEditForm(existing, time.UTC, clk)
		require.NoError(t, f.SubmitDetails(in, bookings))
		s, err := f.Submission()
		require.NoError(t, err)
		assert.Equal(t, int64(150000), s.Total.Cents())
	})

	t.Run("支払いステップは存在しない", func(t *testing.T) {
		f := reservation.NewEditForm(existing, time.UTC, clk)
		assert.ErrorIs(t, f.SubmitPayment(100, nil), reservation.ErrInvalidFormTransition)
	})
}
