package bootstrap

import (
	"restaurant-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	CalendarModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
