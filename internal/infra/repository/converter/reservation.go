package converter

import (
	"github.com/Fox-16s/reservat-io/internal/domain/property"
	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/infra/query"
	"github.com/Fox-16s/reservat-io/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func ReservationToCreateParams(res *reservation.Reservation) query.CreateReservationParams {
	client := res.Client()
	return query.CreateReservationParams{
		ID:           res.ID(),
		PropertyID:   res.PropertyID().String(),
		ClientName:   client.Name(),
		ClientPhone:  client.Phone(),
		ClientNotes:  pgconv.StringPtrToPgtype(client.Notes()),
		StartDate:    pgconv.DateToPgtype(res.Dates().Start()),
		EndDate:      pgconv.DateToPgtype(res.Dates().End()),
		TotalCents:   res.TotalAmount().Cents(),
		UserID:       res.UserID(),
		PaymentNotes: pgconv.StringPtrToPgtype(res.PaymentNotes()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) query.UpdateReservationParams {
	client := res.Client()
	return query.UpdateReservationParams{
		ID:          res.ID(),
		ClientName:  client.Name(),
		ClientPhone: client.Phone(),
		ClientNotes: pgconv.StringPtrToPgtype(client.Notes()),
		StartDate:   pgconv.DateToPgtype(res.Dates().Start()),
		EndDate:     pgconv.DateToPgtype(res.Dates().End()),
		TotalCents:  res.TotalAmount().Cents(),
	}
}

func PaymentToCreateParams(reservationID uuid.UUID, p reservation.PaymentMethod) query.CreatePaymentMethodParams {
	return query.CreatePaymentMethodParams{
		ReservationID: reservationID,
		Type:          p.Type().String(),
		AmountCents:   p.Amount().Cents(),
		Currency:      p.Currency().String(),
		PaymentDate:   pgconv.TimeToPgtype(p.Date()),
	}
}

func PaymentFromRow(row query.PaymentMethods) reservation.PaymentMethod {
	return reservation.ReconstructPaymentMethod(
		row.ID,
		reservation.PaymentType(row.Type),
		reservation.ReconstructMoney(row.AmountCents),
		pgconv.TimeFromPgtype(row.PaymentDate),
		reservation.Currency(row.Currency),
	)
}

func ReservationFromRow(row query.Reservations, payments []query.PaymentMethods) *reservation.Reservation {
	pms := make([]reservation.PaymentMethod, 0, len(payments))
	for _, p := range payments {
		pms = append(pms, PaymentFromRow(p))
	}

	return reservation.ReconstructReservation(
		row.ID,
		property.ID(row.PropertyID),
		row.UserID,
		reservation.ReconstructClient(row.ClientName, row.ClientPhone, pgconv.StringPtrFromPgtype(row.ClientNotes)),
		reservation.ReconstructDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate)),
		reservation.ReconstructMoney(row.TotalCents),
		pms,
		pgconv.StringPtrFromPgtype(row.PaymentNotes),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

// GroupPaymentsByReservation keeps the store's ordering inside each group.
func GroupPaymentsByReservation(rows []query.PaymentMethods) map[uuid.UUID][]query.PaymentMethods {
	out := make(map[uuid.UUID][]query.PaymentMethods)
	for _, r := range rows {
		out[r.ReservationID] = append(out[r.ReservationID], r)
	}
	return out
}
