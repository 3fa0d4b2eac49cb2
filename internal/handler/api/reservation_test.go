//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Fox-16s/reservat-io/internal/domain/reservation"
	"github.com/Fox-16s/reservat-io/internal/handler/api"
	reqdto "github.com/Fox-16s/reservat-io/internal/handler/dto/request"
	resdto "github.com/Fox-16s/reservat-io/internal/handler/dto/response"
	"github.com/Fox-16s/reservat-io/internal/handler/httperr"
	"github.com/Fox-16s/reservat-io/internal/pkg/config"
	"github.com/Fox-16s/reservat-io/internal/pkg/ptr"
	"github.com/Fox-16s/reservat-io/internal/usecase/commands"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"
	"github.com/Fox-16s/reservat-io/tests/common/builder"
	"github.com/Fox-16s/reservat-io/tests/common/httptest"
	"github.com/Fox-16s/reservat-io/tests/common/testutil"
	commandsmock "github.com/Fox-16s/reservat-io/tests/mock/commands"
	queriesmock "github.com/Fox-16s/reservat-io/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	actor        uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.actor = uuid.New()

	h := api.NewReservationHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	g := s.router.Group("/reservations", s.signIn)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.POST("/refresh", h.Refresh)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Edit)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/payments", h.Payments)
	g.POST("/:id/payments", h.AddPayment)
	g.PUT("/:id/payment-notes", h.UpdatePaymentNotes)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// signIn sets the fixed actor when a bearer header is present.
func (s *ReservationHandlerTestSuite) signIn(c *gin.Context) {
	if c.GetHeader("Authorization") != "" {
		c.Set("user_id", s.actor)
	}
}

func (s *ReservationHandlerTestSuite) card(id uuid.UUID) *queries.ReservationView {
	rec := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) { b.ID = id }).
		WithPayment(reservation.PaymentCash, 60000, "2024-03-01").
		BuildRecord()
	view := queries.ToReservationView(rec)
	return &view
}

func createBody() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PropertyID:  "1",
		ClientName:  "Ana Pérez",
		ClientPhone: "+54 9 11 5555-1234",
		StartDate:   ptr.Of("2024-06-06"),
		EndDate:     ptr.Of("2024-06-08"),
		TotalAmount: 1000,
		Payments: []reqdto.PaymentRequest{
			{Type: "cash", Amount: 600},
		},
	}
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	newID := uuid.New()

	s.Run("success: returns 201 with the reservation card", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.CreateReservationInput) (*commands.CreateReservationResult, error) {
				s.Equal("1", in.PropertyID)
				s.Equal(builder.Day("2024-06-06"), *in.Details.Start)
				s.Equal(builder.Day("2024-06-08"), *in.Details.End)
				s.Equal(1000.0, in.TotalAmount)
				s.Require().Len(in.Payments, 1)
				s.Equal("cash", in.Payments[0].Type)
				s.True(in.Payments[0].Date.IsZero())
				return &commands.CreateReservationResult{ReservationID: newID}, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), newID).Return(s.card(newID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "token")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(newID, res.ID)
		s.Equal("2024-03-05", res.StartDate)
		s.Equal(600.0, res.PaidAmount)
		s.Equal(400.0, res.RemainingAmount)
		s.Equal("https://wa.me/5491155551234", res.WhatsAppLink)
		s.Equal("Beach House", res.Property.Name)
	})

	s.Run("error: 401 without an authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "No authenticated user")
	})

	s.Run("error: 400 on request validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
			msg    string
		}{
			{"missing property", testutil.Field("property_id", nil), "Invalid request format"},
			{"unknown payment type", testutil.Field("payments", []map[string]any{{"type": "cheque", "amount": 10}}), "Invalid request format"},
			{"zero payment", testutil.Field("payments", []map[string]any{{"type": "cash", "amount": 0}}), "Invalid request format"},
			{"unknown currency", testutil.Field("payments.0.currency", "EUR"), "Invalid request format"},
			{"payment without type", testutil.Field("payments.0.type", nil), "Invalid request format"},
			{"malformed date", testutil.Field("start_date", "06/06/2024"), "Dates must be YYYY-MM-DD"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), createBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 400 lists the failing fields", func() {
		body := testutil.DtoMap(s.T(), createBody(),
			testutil.Field("property_id", nil),
			testutil.Field("payments", []map[string]any{{"type": "cheque", "amount": 10}}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusBadRequest, rec.Code)

		var resp struct {
			Detail []httperr.FieldError `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.ElementsMatch([]httperr.FieldError{
			{Field: "property_id", Rule: "required"},
			{Field: "payments[0].type", Rule: "payment_type"},
		}, resp.Detail)
	})

	s.Run("error: maps form errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"payments exceed total", reservation.ErrPaymentsExceedTotal, http.StatusUnprocessableEntity, "Payments exceed the total amount"},
			{"dates taken", reservation.ErrRangeUnavailable, http.StatusConflict, "Selected dates are not available"},
			{"missing client name", reservation.ErrClientNameRequired, http.StatusBadRequest, "Client name is required"},
			{"incomplete range", reservation.ErrIncompleteDateRange, http.StatusBadRequest, "Both start and end dates are required"},
			{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.actor, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(s.card(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "token")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Payments, 1)
		s.Equal("cash", res.Payments[0].Type)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: passes filter and cursor through", func() {
		first := s.card(uuid.New())
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{
			PropertyID: "2",
			Cursor:     &queries.Cursor{After: "abc"},
			Limit:      10,
		}).Return([]queries.ReservationView{*first}, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?property_id=2&after=abc&limit=10", nil, "token")

		var res resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Items, 1)
		s.Equal("next", res.NextCursor)
	})

	s.Run("error: 400 on non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=ten", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on bad cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?after=zzz", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *ReservationHandlerTestSuite) TestEdit() {
	id := uuid.New()
	url := "/reservations/" + id.String()
	body := reqdto.EditReservationRequest{
		ClientName:  "Ana",
		ClientPhone: "123",
		StartDate:   ptr.Of("2024-06-10"),
		EndDate:     ptr.Of("2024-06-12"),
	}

	s.Run("success: edits dates only", func() {
		s.mockCommands.EXPECT().EditReservation(gomock.Any(), s.actor, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, in commands.EditReservationInput) error {
				s.Nil(in.Details.TotalAmount)
				s.Equal(builder.Day("2024-06-10"), *in.Details.Start)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(s.card(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().EditReservation(gomock.Any(), s.actor, id, gomock.Any()).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().RemoveReservation(gomock.Any(), s.actor, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().RemoveReservation(gomock.Any(), s.actor, id).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestPayments() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/payments"

	s.Run("list: returns store rows", func() {
		paid := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().PaymentsOf(gomock.Any(), id).Return([]queries.PaymentView{
			{ID: uuid.New(), Type: "bank_transfer", Amount: 250.5, Currency: "ARS", Date: paid},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var res []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal(250.5, res[0].Amount)
	})

	s.Run("add: 201 with the updated card", func() {
		s.mockCommands.EXPECT().AddPayment(gomock.Any(), s.actor, id, commands.AddPaymentInput{Type: "card", Amount: 100, Currency: "USD"}).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(s.card(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.AddPaymentRequest{Type: "card", Amount: 100, Currency: "USD"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("add: 409 on duplicate payment", func() {
		s.mockCommands.EXPECT().AddPayment(gomock.Any(), s.actor, id, gomock.Any()).
			Return(reservation.ErrDuplicatePayment).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.AddPaymentRequest{Type: "cash", Amount: 100}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Payment already recorded")
	})

	s.Run("add: 400 on missing amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "cash"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("notes: passes the raw value through", func() {
		s.mockCommands.EXPECT().UpdatePaymentNotes(gomock.Any(), s.actor, id, ptr.Of("seña por transferencia")).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(s.card(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/"+id.String()+"/payment-notes",
			reqdto.PaymentNotesRequest{Notes: ptr.Of("seña por transferencia")}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ReservationHandlerTestSuite) TestRefresh() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().RefreshReservations(gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/refresh", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 500 when the store is down", func() {
		s.mockCommands.EXPECT().RefreshReservations(gomock.Any()).Return(errors.New("dial tcp")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/refresh", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
