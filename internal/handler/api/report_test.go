//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/Fox-16s/reservat-io/internal/handler/api"
	resdto "github.com/Fox-16s/reservat-io/internal/handler/dto/response"
	"github.com/Fox-16s/reservat-io/internal/infra/export"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"
	"github.com/Fox-16s/reservat-io/tests/common/builder"
	"github.com/Fox-16s/reservat-io/tests/common/httptest"
	queriesmock "github.com/Fox-16s/reservat-io/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
	mockBanking *queriesmock.MockBankingQueries
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockBanking = queriesmock.NewMockBankingQueries(s.mockCtrl)

	reports := api.NewReportHandler(s.mockQueries)
	s.router.GET("/reports/monthly", reports.Monthly)
	s.router.GET("/reports/export", reports.Export)
	s.router.GET("/banking/aliases", api.NewBankingHandler(s.mockBanking).Aliases)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

var monthlyFixture = []queries.MonthlyTotalView{
	{Month: "2024-04", Count: 1, Total: 500, Paid: 500, Pending: 0},
	{Month: "2024-03", Count: 2, Total: 1500, Paid: 600, Pending: 900},
}

func (s *ReportHandlerTestSuite) TestMonthly() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().MonthlyTotals(gomock.Any()).Return(monthlyFixture, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/monthly", nil, "")

		var res []resdto.MonthlyTotalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal("2024-04", res[0].Month)
		s.Equal(900.0, res[1].Pending)
	})

	s.Run("error: store failure", func() {
		s.mockQueries.EXPECT().MonthlyTotals(gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/monthly", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReportHandlerTestSuite) TestExport() {
	s.Run("エクスポートはxlsxの添付ファイルを返す", func() {
		card := queries.ToReservationView(builder.NewReservationBuilder().BuildRecord())
		s.mockQueries.EXPECT().MonthlyTotals(gomock.Any()).Return(monthlyFixture, nil).Times(1)
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{}).
			Return([]queries.ReservationView{card}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/export", nil, "")

		body := httptest.AssertAttachment(s.T(), rec, export.ContentType, "monthly-report.xlsx")

		f, err := excelize.OpenReader(bytes.NewReader(body))
		s.Require().NoError(err)
		defer f.Close()

		rows, err := f.GetRows(export.ReservationsSheet)
		s.Require().NoError(err)
		s.Require().Len(rows, 2)
		s.Equal("Beach House", rows[1][0])
		s.Equal("Ana Pérez", rows[1][1])
	})

	s.Run("error: list failure aborts before writing", func() {
		s.mockQueries.EXPECT().MonthlyTotals(gomock.Any()).Return(monthlyFixture, nil).Times(1)
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/export", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReportHandlerTestSuite) TestBankingAliases() {
	s.mockBanking.EXPECT().Aliases().Return([]queries.BankingAliasView{
		{Alias: "casa.playa.mp"},
		{Alias: "cabana.sierra.bna"},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/banking/aliases", nil, "")

	var res []resdto.BankingAliasResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal([]resdto.BankingAliasResponse{{Alias: "casa.playa.mp"}, {Alias: "cabana.sierra.bna"}}, res)
}
