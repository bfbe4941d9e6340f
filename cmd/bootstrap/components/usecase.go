package components

import (
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAvailabilityUseCase,
		usecase.NewReservationUseCase,
	),
)
