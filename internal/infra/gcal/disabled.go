package gcal

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/errs"
)

// DisabledAdapter stands in when no calendar credentials are configured.
// Every call fails with ErrExternalService, which the callers already treat
// as "calendar unreachable": availability falls back to the local store and
// mirroring is skipped with a warning.
type DisabledAdapter struct{}

func NewDisabledAdapter() *DisabledAdapter {
	return &DisabledAdapter{}
}

func (d *DisabledAdapter) OccupiedSlots(_ context.Context, _ time.Time, _ int) (map[string]int, error) {
	return nil, errs.Mark(errs.New("calendar integration is not configured"), errs.ErrExternalService)
}

func (d *DisabledAdapter) CreateEvent(_ context.Context, _ *reservation.Reservation, _ int) (string, error) {
	return "", errs.Mark(errs.New("calendar integration is not configured"), errs.ErrExternalService)
}

func (d *DisabledAdapter) UpdateEvent(_ context.Context, _ string, _ EventChanges, _ int) error {
	return errs.Mark(errs.New("calendar integration is not configured"), errs.ErrExternalService)
}

func (d *DisabledAdapter) DeleteEvent(_ context.Context, _ string) error {
	return errs.Mark(errs.New("calendar integration is not configured"), errs.ErrExternalService)
}
