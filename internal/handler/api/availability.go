package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Query slot availability
// @Description List every time slot of a day with its remaining capacity for the requested party size
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param numberOfGuests query int true "Party size"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	guestsStr := c.Query("numberOfGuests")
	if dateStr == "" || guestsStr == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing query params"),
			"Fecha y número de personas son requeridos")
		return
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Fecha inválida")
		return
	}

	guests, err := strconv.Atoi(guestsStr)
	if err != nil || guests < 1 {
		if err == nil {
			err = errs.New("party size below 1")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Número de personas inválido")
		return
	}

	slots, err := h.availabilityUseCase.GetAvailableTimeSlots(c.Request.Context(), date, guests)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrConfigurationMissing):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"Configuración del restaurante no encontrada")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"No se pudo calcular la disponibilidad")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK(slots))
}
