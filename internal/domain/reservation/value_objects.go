package reservation

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// MaxMoneyCents is the largest amount a NUMERIC(12, 2) column holds.
const MaxMoneyCents int64 = 999_999_999_999

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	if cents > MaxMoneyCents {
		return Money{}, ErrInvalidAmount
	}
	return Money{cents: cents}, nil
}

// ReconstructMoney trusts the store's CHECK constraints.
func ReconstructMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromDecimal rounds a decimal amount to two fraction digits.
func MoneyFromDecimal(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrInvalidAmount
	}
	cents := math.Round(amount * 100)
	switch {
	case cents < 0:
		return Money{}, ErrNegativeAmount
	case cents > float64(MaxMoneyCents):
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(int64(cents))
}

func (m Money) Cents() int64             { return m.cents }
func (m Money) Decimal() float64         { return float64(m.cents) / 100.0 }
func (m Money) IsZero() bool             { return m.cents == 0 }
func (m Money) GreaterThan(o Money) bool { return m.cents > o.cents }

// Sub floors at zero.
// Add saturates at math.MaxInt64, which is far past MaxMoneyCents and so
// still compares greater than any valid total.
func (m Money) Add(o Money) Money {
	if o.cents > 0 && m.cents > math.MaxInt64-o.cents {
		return Money{cents: math.MaxInt64}
	}
	return Money{cents: m.cents + o.cents}
}

func (m Money) Sub(o Money) Money {
	if o.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - o.cents}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// DateRange is a closed interval of calendar days. Both ends are stored as
// midnight UTC of the calendar date.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange takes the calendar dates of start and end in their own location.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrIncompleteDateRange
	}
	s, e := calendarDay(start), calendarDay(end)
	if e.Before(s) {
		return DateRange{}, ErrInvertedDateRange
	}
	return DateRange{start: s, end: e}, nil
}

// NewDateRangeIn resolves both instants to their calendar date in loc first.
func NewDateRangeIn(start, end time.Time, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrIncompleteDateRange
	}
	return NewDateRange(start.In(loc), end.In(loc))
}

// ReconstructDateRange rebuilds a range read from DATE columns.
func ReconstructDateRange(start, end time.Time) DateRange {
	return DateRange{start: calendarDay(start), end: calendarDay(end)}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }
func (r DateRange) IsZero() bool     { return r.start.IsZero() && r.end.IsZero() }

// Days counts both ends.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func (r DateRange) Nights() int {
	return r.Days() - 1
}

func (r DateRange) Contains(day time.Time) bool {
	d := calendarDay(day)
	return !d.Before(r.start) && !d.After(r.end)
}

// Overlaps uses closed-interval semantics: a shared boundary day is a conflict.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.start.After(o.end) && !r.end.Before(o.start)
}

// EachDay yields every calendar day in the range, in order.
func (r DateRange) EachDay(fn func(day time.Time)) {
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func (r DateRange) String() string {
	return r.start.Format(time.DateOnly) + ".." + r.end.Format(time.DateOnly)
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Client struct {
	name  string
	phone string
	notes *string
}

func NewClient(name, phone string, notes *string) (Client, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Client{}, ErrClientNameRequired
	}
	if phone == "" {
		return Client{}, ErrClientPhoneRequired
	}
	var n *string
	if notes != nil {
		if v := strings.TrimSpace(*notes); v != "" {
			n = &v
		}
	}
	return Client{name: name, phone: phone, notes: n}, nil
}

func ReconstructClient(name, phone string, notes *string) Client {
	return Client{name: name, phone: phone, notes: notes}
}

func (c Client) Name() string   { return c.name }
func (c Client) Phone() string  { return c.phone }
func (c Client) Notes() *string { return c.notes }

type PaymentType string

const (
	PaymentCash         PaymentType = "cash"
	PaymentCard         PaymentType = "card"
	PaymentBankTransfer PaymentType = "bank_transfer"
)

func ParsePaymentType(s string) (PaymentType, error) {
	switch t := PaymentType(strings.TrimSpace(s)); t {
	case PaymentCash, PaymentCard, PaymentBankTransfer:
		return t, nil
	default:
		return "", ErrInvalidPaymentType
	}
}

func (t PaymentType) String() string { return string(t) }

type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"

	DefaultCurrency = CurrencyARS
)

// ParseCurrency treats the empty string as the default currency.
func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(s))); c {
	case "":
		return DefaultCurrency, nil
	case CurrencyARS, CurrencyUSD:
		return c, nil
	default:
		return "", ErrInvalidCurrency
	}
}

func (c Currency) String() string { return string(c) }
