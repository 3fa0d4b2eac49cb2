package reservation

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is an immutable payment row owned by one reservation.
type PaymentMethod struct {
	id       *uuid.UUID
	kind     PaymentType
	amount   Money
	date     time.Time
	currency Currency
}

func NewPaymentMethod(kind PaymentType, amount Money, date time.Time, currency Currency) (PaymentMethod, error) {
	if _, err := ParsePaymentType(string(kind)); err != nil {
		return PaymentMethod{}, err
	}
	if amount.Cents() <= 0 {
		return PaymentMethod{}, ErrNonPositivePayment
	}
	if date.IsZero() {
		return PaymentMethod{}, ErrPaymentDateRequired
	}
	cur, err := ParseCurrency(string(currency))
	if err != nil {
		return PaymentMethod{}, err
	}
	return PaymentMethod{kind: kind, amount: amount, date: date, currency: cur}, nil
}

func ReconstructPaymentMethod(id uuid.UUID, kind PaymentType, amount Money, date time.Time, currency Currency) PaymentMethod {
	return PaymentMethod{id: &id, kind: kind, amount: amount, date: date, currency: currency}
}

// ID is nil until the row is persisted.
func (p PaymentMethod) ID() *uuid.UUID     { return p.id }
func (p PaymentMethod) Type() PaymentType  { return p.kind }
func (p PaymentMethod) Amount() Money      { return p.amount }
func (p PaymentMethod) Date() time.Time    { return p.date }
func (p PaymentMethod) Currency() Currency { return p.currency }
func (p PaymentMethod) IsPersisted() bool  { return p.id != nil }

// PaymentKey identifies a payment by value. Two payments with the same type,
// amount and calendar day are the same payment for reconciliation purposes.
// The day is taken in the business location.
type PaymentKey struct {
	Type        PaymentType
	AmountCents int64
	Day         string
}

func (p PaymentMethod) Key(loc *time.Location) PaymentKey {
	return PaymentKey{
		Type:        p.kind,
		AmountCents: p.amount.Cents(),
		Day:         p.date.In(locOrUTC(loc)).Format(time.DateOnly),
	}
}

// SumAmounts adds raw amounts without currency conversion.
func SumAmounts(payments []PaymentMethod) Money {
	var total Money
	for _, p := range payments {
		total = total.Add(p.amount)
	}
	return total
}
