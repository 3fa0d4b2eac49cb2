package response

import (
	"time"

	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ColorTag string `json:"colorTag"`
}

type PaymentResponse struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	Date     time.Time `json:"date"`
}

// ReservationResponse is the reservation card. StartDate and EndDate are
// calendar dates (YYYY-MM-DD).
type ReservationResponse struct {
	ID              uuid.UUID         `json:"id"`
	Property        PropertyResponse  `json:"property"`
	UserID          uuid.UUID         `json:"userId"`
	ClientName      string            `json:"clientName"`
	ClientPhone     string            `json:"clientPhone"`
	ClientNotes     *string           `json:"clientNotes,omitempty"`
	StartDate       string            `json:"startDate"`
	EndDate         string            `json:"endDate"`
	Nights          int               `json:"nights"`
	TotalAmount     float64           `json:"totalAmount"`
	PaidAmount      float64           `json:"paidAmount"`
	RemainingAmount float64           `json:"remainingAmount"`
	Payments        []PaymentResponse `json:"payments"`
	PaymentNotes    *string           `json:"paymentNotes,omitempty"`
	CreatedBy       string            `json:"createdBy"`
	CreatedAt       time.Time         `json:"createdAt"`
	WhatsAppLink    string            `json:"whatsappLink,omitempty"`
}

type ReservationListResponse struct {
	Items      []ReservationResponse `json:"items"`
	NextCursor string                `json:"nextCursor,omitempty"`
}

type BookedDayResponse struct {
	Date          string    `json:"date"`
	ReservationID uuid.UUID `json:"reservationId"`
	ClientName    string    `json:"clientName"`
}

type CalendarResponse struct {
	Property PropertyResponse    `json:"property"`
	Month    string              `json:"month"`
	Days     []BookedDayResponse `json:"days"`
}

type AvailabilityResponse struct {
	PropertyID string `json:"propertyId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Available  bool   `json:"available"`
}

type MonthlyTotalResponse struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}

type BankingAliasResponse struct {
	Alias string `json:"alias"`
}

// Only string destinations are converted; time.Time fields copy as-is.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, _ := src.(time.Time)
				return t.Format(time.DateOnly), nil
			},
		},
	},
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := copier.CopyWithOption(&out, v, copyOption); err != nil {
		return nil, err
	}
	if out.Payments == nil {
		out.Payments = []PaymentResponse{}
	}
	return &out, nil
}

func FromReservationViews(views []queries.ReservationView, next *queries.Cursor) (*ReservationListResponse, error) {
	items := make([]ReservationResponse, 0, len(views))
	if err := copier.CopyWithOption(&items, &views, copyOption); err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Payments == nil {
			items[i].Payments = []PaymentResponse{}
		}
	}
	res := &ReservationListResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

func FromPaymentViews(views []queries.PaymentView) ([]PaymentResponse, error) {
	out := make([]PaymentResponse, 0, len(views))
	if err := copier.CopyWithOption(&out, &views, copyOption); err != nil {
		return nil, err
	}
	return out, nil
}

func FromCalendarView(v *queries.CalendarView) (*CalendarResponse, error) {
	var out CalendarResponse
	if err := copier.CopyWithOption(&out, v, copyOption); err != nil {
		return nil, err
	}
	if out.Days == nil {
		out.Days = []BookedDayResponse{}
	}
	return &out, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var out AvailabilityResponse
	if err := copier.CopyWithOption(&out, v, copyOption); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromMonthlyTotals(views []queries.MonthlyTotalView) ([]MonthlyTotalResponse, error) {
	out := make([]MonthlyTotalResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromProperties(views []queries.PropertyView) []PropertyResponse {
	out := make([]PropertyResponse, len(views))
	for i, v := range views {
		out[i] = PropertyResponse(v)
	}
	return out
}

func FromBankingAliases(views []queries.BankingAliasView) []BankingAliasResponse {
	out := make([]BankingAliasResponse, len(views))
	for i, v := range views {
		out[i] = BankingAliasResponse(v)
	}
	return out
}
