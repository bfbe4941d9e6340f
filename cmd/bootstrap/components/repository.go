package components

import (
	repo_impl "restaurant-booking/internal/infra/repository"
	"restaurant-booking/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
			fx.As(new(usecase.OccupancyReader)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(usecase.SettingsRepository)),
		),
	),
)
