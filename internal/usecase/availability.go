package usecase

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/domain/schedule"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
)

type SettingsRepository interface {
	Get(ctx context.Context) (schedule.Settings, error)
	IsDateBlocked(ctx context.Context, date time.Time) (bool, error)
}

// OccupancyReader is the local-store fallback source: per-slot guest totals
// from persisted reservations.
type OccupancyReader interface {
	OccupancyByDate(ctx context.Context, date time.Time) (map[string]int, error)
}

type AvailabilityUseCase interface {
	GetAvailableTimeSlots(ctx context.Context, date time.Time, partySize int) ([]schedule.TimeSlot, error)
	CheckAvailability(ctx context.Context, date time.Time, timeLabel string, partySize int) (bool, error)
}

type availabilityUseCaseImpl struct {
	settingsRepo SettingsRepository
	occupancy    OccupancyReader
	calendar     CalendarService
	clock        clock.Clock
}

func NewAvailabilityUseCase(
	settingsRepo SettingsRepository,
	occupancy OccupancyReader,
	calendar CalendarService,
	clk clock.Clock,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		settingsRepo: settingsRepo,
		occupancy:    occupancy,
		calendar:     calendar,
		clock:        clk,
	}
}

// GetAvailableTimeSlots merges the external calendar and the slot schedule
// into a per-slot capacity view. The calendar is the preferred occupancy
// source; when it is unreachable the local store answers alone.
func (u *availabilityUseCaseImpl) GetAvailableTimeSlots(
	ctx context.Context,
	date time.Time,
	partySize int,
) ([]schedule.TimeSlot, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrConfigurationMissing
		}
		return nil, errs.Wrap(err, "failed to load restaurant settings")
	}

	// Dates outside the bookable window behave like blocked dates: no
	// slots, not an error. The window runs from today through
	// days_advance_booking days ahead.
	today := truncateToDay(u.clock.Now())
	lastBookable := today.AddDate(0, 0, settings.DaysAdvanceBooking)
	if day := truncateToDay(date); day.Before(today) || day.After(lastBookable) {
		return []schedule.TimeSlot{}, nil
	}

	blocked, err := u.settingsRepo.IsDateBlocked(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check blocked date")
	}
	if blocked {
		// Blocked means no slots, not an error.
		return []schedule.TimeSlot{}, nil
	}

	slots, err := schedule.GenerateSlots(settings)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrConfigurationMissing)
	}

	occupied, err := u.calendar.OccupiedSlots(ctx, date, settings.SlotDuration)
	if err != nil {
		slog.Warn("external calendar unavailable, computing availability from local store",
			"date", date.Format(time.DateOnly), "error", err.Error())
		occupied, err = u.occupancy.OccupancyByDate(ctx, date)
		if err != nil {
			return nil, errs.Wrap(err, "failed to load local occupancy")
		}
	}

	return schedule.BuildAvailability(slots, occupied, settings.MaxGuestsPerSlot, partySize), nil
}

// CheckAvailability is the admission check for a single slot. A label that
// is not part of the schedule is simply not available.
func (u *availabilityUseCaseImpl) CheckAvailability(
	ctx context.Context,
	date time.Time,
	timeLabel string,
	partySize int,
) (bool, error) {
	slots, err := u.GetAvailableTimeSlots(ctx, date, partySize)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Time == timeLabel {
			return slot.Available, nil
		}
	}
	return false, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
