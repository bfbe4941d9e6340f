package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-booking/internal/infra/gcal"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewCalendarService,
	),
)

// NewCalendarService builds the Google Calendar adapter when credentials are
// present, and the disabled stand-in otherwise. Reservations always work;
// only the mirroring and the external occupancy source differ.
func NewCalendarService(cfg config.Config, logger *slog.Logger) (usecase.CalendarService, error) {
	if !cfg.Calendar.Enabled() {
		logger.Warn("Google Calendar credentials not configured, mirroring disabled")
		return gcal.NewDisabledAdapter(), nil
	}

	svc, err := gcal.NewService(context.Background(), cfg.Calendar)
	if err != nil {
		return nil, err
	}
	return gcal.NewAdapter(svc, cfg.Calendar, logger), nil
}
