//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"restaurant-booking/internal/domain/schedule"
	"restaurant-booking/internal/handler/api"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/tests/common/httptest"
	usecasemock "restaurant-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockAvailabilityUseCase
	handler  *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockUC)

	s.router.GET("/api/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	s.Run("success: 200 with the slot list", func() {
		date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		slots := []schedule.TimeSlot{
			{Time: "19:00", Available: true, RemainingCapacity: 10},
			{Time: "19:30", Available: false, RemainingCapacity: 1},
		}
		s.mockUC.EXPECT().GetAvailableTimeSlots(gomock.Any(), date, 2).Return(slots, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?date=2026-09-15&numberOfGuests=2", nil)

		var body []schedule.TimeSlot
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("19:00", body[0].Time)
		s.False(body[1].Available)
	})

	s.Run("success: blocked date returns an empty list", func() {
		date := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
		s.mockUC.EXPECT().GetAvailableTimeSlots(gomock.Any(), date, 4).
			Return([]schedule.TimeSlot{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?date=2026-12-25&numberOfGuests=4", nil)

		var body []schedule.TimeSlot
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 when query params are missing", func() {
		cases := []string{
			"/api/availability",
			"/api/availability?date=2026-09-15",
			"/api/availability?numberOfGuests=2",
		}
		for _, url := range cases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
				"Fecha y número de personas son requeridos")
		}
	})

	s.Run("error: 400 for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?date=15-09-2026&numberOfGuests=2", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Fecha inválida")
	})

	s.Run("error: 400 for a non-numeric or non-positive party size", func() {
		cases := []string{
			"/api/availability?date=2026-09-15&numberOfGuests=two",
			"/api/availability?date=2026-09-15&numberOfGuests=0",
		}
		for _, url := range cases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Número de personas inválido")
		}
	})

	s.Run("error: 400 when settings are missing", func() {
		date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		s.mockUC.EXPECT().GetAvailableTimeSlots(gomock.Any(), date, 2).
			Return(nil, errs.ErrConfigurationMissing)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?date=2026-09-15&numberOfGuests=2", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			"Configuración del restaurante no encontrada")
	})
}
