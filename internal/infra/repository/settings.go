package repository

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/schedule"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get loads the singleton restaurant settings row. Mutated only by operators
// out-of-band, so a plain read per request is enough.
func (r *SettingsRepository) Get(ctx context.Context) (schedule.Settings, error) {
	var s schedule.Settings
	err := r.db.QueryRow(ctx, `
		SELECT opening_time, closing_time, slot_duration, max_guests_per_slot, days_advance_booking
		FROM restaurant_settings
		ORDER BY created_at
		LIMIT 1`,
	).Scan(&s.OpeningTime, &s.ClosingTime, &s.SlotDuration, &s.MaxGuestsPerSlot, &s.DaysAdvanceBooking)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return schedule.Settings{}, infra.WrapRepoErr("restaurant settings not found", err, infra.KindNotFound)
		}
		return schedule.Settings{}, infra.WrapRepoErr("failed to load restaurant settings", err)
	}
	return s, nil
}

// IsDateBlocked reports whether the date is marked fully unavailable.
func (r *SettingsRepository) IsDateBlocked(ctx context.Context, date time.Time) (bool, error) {
	var blocked bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM blocked_dates WHERE date = $1)`,
		pgconv.DateToPgtype(date),
	).Scan(&blocked)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check blocked date", err)
	}
	return blocked, nil
}
