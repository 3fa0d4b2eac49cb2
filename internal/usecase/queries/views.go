package queries

import (
	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/domain/reservation"

	"github.com/google/uuid"
)

func ToPropertyView(p property.Property) PropertyView {
	return PropertyView{
		ID:       p.ID().String(),
		Name:     p.Name(),
		ColorTag: p.ColorTag(),
	}
}

func ToPaymentView(p reservation.PaymentMethod) PaymentView {
	var id uuid.UUID
	if p.ID() != nil {
		id = *p.ID()
	}
	return PaymentView{
		ID:       id,
		Type:     p.Type().String(),
		Amount:   p.Amount().Decimal(),
		Currency: p.Currency().String(),
		Date:     p.Date(),
	}
}

// ToReservationView renders the reservation card. An id missing from the
// catalog still renders, with only the raw id set.
func ToReservationView(rec ReservationRecord) ReservationView {
	r := rec.Reservation
	prop := PropertyView{ID: r.PropertyID().String()}
	if p, err := property.FindByID(r.PropertyID()); err == nil {
		prop = ToPropertyView(p)
	}

	payments := r.Payments()
	paymentViews := make([]PaymentView, len(payments))
	for i, p := range payments {
		paymentViews[i] = ToPaymentView(p)
	}

	summary := r.Summary()
	client := r.Client()
	return ReservationView{
		ID:              r.ID(),
		Property:        prop,
		UserID:          r.UserID(),
		ClientName:      client.Name(),
		ClientPhone:     client.Phone(),
		ClientNotes:     client.Notes(),
		StartDate:       r.Dates().Start(),
		EndDate:         r.Dates().End(),
		Nights:          r.Dates().Nights(),
		TotalAmount:     summary.Total.Decimal(),
		PaidAmount:      summary.Paid.Decimal(),
		RemainingAmount: summary.Remaining.Decimal(),
		Payments:        paymentViews,
		PaymentNotes:    r.PaymentNotes(),
		CreatedBy:       rec.CreatedBy,
		CreatedAt:       r.CreatedAt(),
		WhatsAppLink:    client.WhatsAppLink(),
	}
}

func toMonthlyTotalView(m reservation.MonthlyTotal) MonthlyTotalView {
	return MonthlyTotalView{
		Month:   m.Month,
		Count:   m.Count,
		Total:   m.Total.Decimal(),
		Paid:    m.Paid.Decimal(),
		Pending: m.Pending.Decimal(),
	}
}
