package api

import (
	"errors"
	"net/http"

	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Create a new table reservation after an availability check
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Datos de reserva inválidos")
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Fecha de reserva inválida")
		return
	}

	res, err := h.reservationUseCase.Create(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"No hay disponibilidad para la fecha y hora seleccionadas")
		case errors.Is(err, errs.ErrConfigurationMissing):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"Configuración del restaurante no encontrada")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Datos de reserva inválidos")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No se pudo crear la reserva")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OKWithMessage(
		resdto.FromReservation(res), "Reserva creada exitosamente"))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Identificador de reserva inválido")
		return
	}

	res, err := h.reservationUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reserva no encontrada")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No se pudo obtener la reserva")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromReservation(res)))
}

// @Summary Update reservation
// @Description Partially update a reservation; moves in time are mirrored to the calendar best-effort
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to update"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Identificador de reserva inválido")
		return
	}

	var req reqdto.UpdateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Datos de reserva inválidos")
		return
	}

	res, err := h.reservationUseCase.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reserva no encontrada")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Datos de reserva inválidos")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No se pudo actualizar la reserva")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OKWithMessage(
		resdto.FromReservation(res), "Reserva actualizada exitosamente"))
}

// @Summary Cancel reservation
// @Description Cancel a reservation; the mirrored calendar event is deleted best-effort
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Identificador de reserva inválido")
		return
	}

	res, err := h.reservationUseCase.Cancel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reserva no encontrada")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "La reserva ya está cancelada")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No se pudo cancelar la reserva")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OKWithMessage(
		resdto.FromReservation(res), "Reserva cancelada exitosamente"))
}
