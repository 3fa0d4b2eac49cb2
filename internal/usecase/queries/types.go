package queries

import (
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationRecord is one cached reservation plus its creator's profile name.
type ReservationRecord struct {
	Reservation *reservation.Reservation
	CreatedBy   string
}

type PropertyView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ColorTag string `json:"color_tag"`
}

type PaymentView struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	Date     time.Time `json:"date"`
}

// ReservationView is the reservation card.
type ReservationView struct {
	ID              uuid.UUID     `json:"id"`
	Property        PropertyView  `json:"property"`
	UserID          uuid.UUID     `json:"user_id"`
	ClientName      string        `json:"client_name"`
	ClientPhone     string        `json:"client_phone"`
	ClientNotes     *string       `json:"client_notes,omitempty"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	Nights          int           `json:"nights"`
	TotalAmount     float64       `json:"total_amount"`
	PaidAmount      float64       `json:"paid_amount"`
	RemainingAmount float64       `json:"remaining_amount"`
	Payments        []PaymentView `json:"payments"`
	PaymentNotes    *string       `json:"payment_notes,omitempty"`
	CreatedBy       string        `json:"created_by"`
	CreatedAt       time.Time     `json:"created_at"`
	WhatsAppLink    string        `json:"whatsapp_link,omitempty"`
}

type BookedDay struct {
	Date          string    `json:"date"`
	ReservationID uuid.UUID `json:"reservation_id"`
	ClientName    string    `json:"client_name"`
}

type CalendarView struct {
	Property PropertyView `json:"property"`
	Month    string       `json:"month"`
	Days     []BookedDay  `json:"days"`
}

type AvailabilityView struct {
	PropertyID string    `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Available  bool      `json:"available"`
}

type MonthlyTotalView struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}

// UserView is the signed-in user with profile data.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
