//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/handler/api"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/tests/common/httptest"
	usecasemock "restaurant-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockReservationUseCase
	handler  *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockUC)

	s.router.POST("/api/reservations", s.handler.CreateReservation)
	s.router.GET("/api/reservations/:id", s.handler.GetReservation)
	s.router.PUT("/api/reservations/:id", s.handler.UpdateReservation)
	s.router.DELETE("/api/reservations/:id", s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func sampleReservation(t interface{ Helper() }, status reservation.Status) *reservation.Reservation {
	t.Helper()
	email, _ := reservation.NewEmail("maria@example.com")
	customer, _ := reservation.NewCustomer("María García", email, "+593991234567")
	eventID := "evt_123"
	return reservation.ReconstructReservation(
		uuid.New(), customer, 4,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		"19:00", nil, "degustacion", nil, nil, nil, nil,
		status, &eventID, time.Now(), time.Now(),
	)
}

func validCreateBody() map[string]any {
	return map[string]any{
		"customerName":    "María García",
		"customerEmail":   "maria@example.com",
		"customerPhone":   "+593991234567",
		"numberOfGuests":  4,
		"reservationDate": "2026-09-15",
		"reservationTime": "19:00",
		"menuType":        "degustacion",
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/api/reservations"

	s.Run("success: 201 with the created reservation", func() {
		res := sampleReservation(s.T(), reservation.StatusConfirmed)
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).Return(res, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("María García", body.CustomerName)
		s.Equal("CONFIRMED", body.Status)
	})

	s.Run("error: 400 on validation failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing customer name", mutate: func(m map[string]any) { delete(m, "customerName") }},
			{name: "invalid email", mutate: func(m map[string]any) { m["customerEmail"] = "not-an-email" }},
			{name: "zero guests", mutate: func(m map[string]any) { m["numberOfGuests"] = 0 }},
			{name: "date not ISO", mutate: func(m map[string]any) { m["reservationDate"] = "15/09/2026" }},
			{name: "missing time", mutate: func(m map[string]any) { delete(m, "reservationTime") }},
			{name: "time not HH:MM", mutate: func(m map[string]any) { m["reservationTime"] = "7pm" }},
			{name: "missing menu", mutate: func(m map[string]any) { delete(m, "menuType") }},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := validCreateBody()
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 when the slot is full", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errs.ErrSlotUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			"No hay disponibilidad para la fecha y hora seleccionadas")
	})

	s.Run("error: 400 when settings are missing", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errs.ErrConfigurationMissing)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			"Configuración del restaurante no encontrada")
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success: 200 with the reservation", func() {
		res := sampleReservation(s.T(), reservation.StatusConfirmed)
		s.mockUC.EXPECT().GetByID(gomock.Any(), res.ID()).Return(res, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+res.ID().String(), nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(res.ID(), body.ID)
		s.Equal("2026-09-15", body.ReservationDate)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Identificador de reserva inválido")
	})

	s.Run("error: 404 for an unknown reservation", func() {
		id := uuid.New()
		s.mockUC.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reserva no encontrada")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	s.Run("success: 200 with the updated reservation", func() {
		res := sampleReservation(s.T(), reservation.StatusConfirmed)
		s.mockUC.EXPECT().Update(gomock.Any(), res.ID(), gomock.Any()).Return(res, nil)

		body := map[string]any{"numberOfGuests": 6}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservations/"+res.ID().String(), body)

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	})

	s.Run("error: 400 for an unknown reservation", func() {
		id := uuid.New()
		s.mockUC.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, errs.ErrReservationNotFound)

		body := map[string]any{"numberOfGuests": 6}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservations/"+id.String(), body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Reserva no encontrada")
	})

	s.Run("error: 400 on invalid payload", func() {
		id := uuid.New()
		body := map[string]any{"numberOfGuests": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservations/"+id.String(), body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Datos de reserva inválidos")
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	s.Run("success: 200 with the cancelled reservation", func() {
		res := sampleReservation(s.T(), reservation.StatusCancelled)
		s.mockUC.EXPECT().Cancel(gomock.Any(), res.ID()).Return(res, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/"+res.ID().String(), nil)

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("CANCELLED", resp.Status)
	})

	s.Run("error: 400 when already cancelled", func() {
		id := uuid.New()
		s.mockUC.EXPECT().Cancel(gomock.Any(), id).
			Return(nil, errs.Mark(reservation.ErrAlreadyCancelled, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "La reserva ya está cancelada")
	})
}
