package reservation

import (
	"github.com/Fox-16s/reservat-io/internal/domain/property"

	"github.com/google/uuid"
)

// Booking is the slice of a reservation the overlap check needs.
type Booking struct {
	ReservationID uuid.UUID
	PropertyID    property.ID
	Range         DateRange
}

// IsRangeAvailable reports whether candidate is free on propertyID.
// Bookings of other properties are ignored. A candidate sharing a boundary day
// with an existing booking is unavailable.
func IsRangeAvailable(candidate DateRange, propertyID property.ID, existing []Booking) bool {
	for _, b := range existing {
		if b.PropertyID != propertyID {
			continue
		}
		if candidate.Overlaps(b.Range) {
			return false
		}
	}
	return true
}

// ExcludeReservation drops the booking with the given id, used when editing.
func ExcludeReservation(existing []Booking, id uuid.UUID) []Booking {
	out := make([]Booking, 0, len(existing))
	for _, b := range existing {
		if b.ReservationID != id {
			out = append(out, b)
		}
	}
	return out
}

// BookingsOf projects reservations into bookings.
func BookingsOf(rs []*Reservation) []Booking {
	out := make([]Booking, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Booking())
	}
	return out
}
