package usecase

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/gcal"
	"restaurant-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	OccupancyByDate(ctx context.Context, date time.Time) (map[string]int, error)
}

// CalendarService is the external-calendar collaborator. Create/Update/
// Delete propagate failures; the lifecycle methods here decide to swallow
// them so mirroring never gates a reservation.
type CalendarService interface {
	OccupiedSlots(ctx context.Context, date time.Time, slotDuration int) (map[string]int, error)
	CreateEvent(ctx context.Context, res *reservation.Reservation, slotDuration int) (string, error)
	UpdateEvent(ctx context.Context, eventID string, changes gcal.EventChanges, slotDuration int) error
	DeleteEvent(ctx context.Context, eventID string) error
}

type CreateReservationParams struct {
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	NumberOfGuests      int
	Date                time.Time
	StartTime           string
	EndTime             *string
	MenuType            string
	Theme               *string
	TablePreference     *string
	SpecialRequests     *string
	DietaryRestrictions *string
}

// UpdateReservationParams carries the partial update. Date and status stay
// raw here and are parsed explicitly: typed entity fields must never be
// populated by spreading request strings.
type UpdateReservationParams struct {
	NumberOfGuests      *int
	RawDate             *string
	StartTime           *string
	EndTime             *string
	MenuType            *string
	Theme               *string
	TablePreference     *string
	SpecialRequests     *string
	DietaryRestrictions *string
	RawStatus           *string
}

type ReservationUseCase interface {
	Create(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	settingsRepo    SettingsRepository
	availability    AvailabilityUseCase
	calendar        CalendarService
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	settingsRepo SettingsRepository,
	availability AvailabilityUseCase,
	calendar CalendarService,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		settingsRepo:    settingsRepo,
		availability:    availability,
		calendar:        calendar,
	}
}

// Create runs the admission check, persists the reservation as PENDING,
// attempts the calendar mirror once, and confirms. The availability read
// and the write are not transactionally isolated: two concurrent requests
// can both pass the check and consume the same capacity. Known gap,
// inherited from the admission model.
func (u *reservationUseCaseImpl) Create(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error) {
	available, err := u.availability.CheckAvailability(ctx, params.Date, params.StartTime, params.NumberOfGuests)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, errs.ErrSlotUnavailable
	}

	res, err := params.toDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.reservationRepo.Create(ctx, res); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Single mirroring attempt. Any calendar failure leaves the external
	// reference nil and never aborts the reservation.
	var eventID *string
	slotDuration := u.slotDuration(ctx)
	if id, err := u.calendar.CreateEvent(ctx, res, slotDuration); err != nil {
		slog.Warn("calendar mirroring failed, continuing without sync",
			"reservation_id", res.ID(), "error", err.Error())
	} else {
		eventID = &id
	}

	res.Confirm(eventID)
	if err := u.reservationRepo.Update(ctx, res); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.reservationRepo.FindByID(ctx, res.ID())
}

func (u *reservationUseCaseImpl) GetByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return res, nil
}

func (u *reservationUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*reservation.Reservation, error) {
	res, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd, err := params.toUpdate()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := res.ApplyUpdate(upd); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.reservationRepo.Update(ctx, res); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Re-sync the mirrored event only when the reservation moved in time.
	// Failures are logged and swallowed; the local record already changed.
	if eventID := res.GoogleEventID(); eventID != nil && upd.TimeChanged() {
		changes := gcal.EventChanges{
			Date:           upd.Date,
			StartTime:      upd.StartTime,
			EndTime:        upd.EndTime,
			NumberOfGuests: upd.NumberOfGuests,
		}
		if err := u.calendar.UpdateEvent(ctx, *eventID, changes, u.slotDuration(ctx)); err != nil {
			slog.Warn("calendar event update failed",
				"reservation_id", res.ID(), "event_id", *eventID, "error", err.Error())
		}
	}

	return res, nil
}

func (u *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Best-effort external cleanup first; a stale or invalid reference must
	// not block the cancellation.
	if eventID := res.GoogleEventID(); eventID != nil {
		if err := u.calendar.DeleteEvent(ctx, *eventID); err != nil {
			slog.Warn("calendar event deletion failed",
				"reservation_id", res.ID(), "event_id", *eventID, "error", err.Error())
		}
	}

	if err := res.Cancel(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := u.reservationRepo.Update(ctx, res); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

// slotDuration fetches the configured slot length for calendar event
// construction, falling back to 30 minutes if settings are unreadable so a
// mirroring attempt still has sane geometry.
func (u *reservationUseCaseImpl) slotDuration(ctx context.Context) int {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return 30
	}
	return settings.SlotDuration
}

func (p CreateReservationParams) toDomain() (*reservation.Reservation, error) {
	email, err := reservation.NewEmail(p.CustomerEmail)
	if err != nil {
		return nil, err
	}
	customer, err := reservation.NewCustomer(p.CustomerName, email, p.CustomerPhone)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(
		customer,
		p.NumberOfGuests,
		p.Date,
		p.StartTime,
		p.EndTime,
		p.MenuType,
		p.Theme,
		p.TablePreference,
		p.SpecialRequests,
		p.DietaryRestrictions,
	)
}

func (p UpdateReservationParams) toUpdate() (reservation.Update, error) {
	var upd reservation.Update

	// Same-named plain fields are copied as-is; the raw date and status
	// below never reach the entity without going through a parser.
	if err := copier.Copy(&upd, &p); err != nil {
		return reservation.Update{}, errs.Wrap(err, "failed to map update fields")
	}

	if p.RawDate != nil {
		parsed, err := time.Parse(time.DateOnly, *p.RawDate)
		if err != nil {
			return reservation.Update{}, errs.Wrap(err, "invalid reservation date")
		}
		upd.Date = &parsed
	}

	if p.RawStatus != nil {
		status := reservation.Status(*p.RawStatus)
		if !status.IsValid() {
			return reservation.Update{}, reservation.ErrInvalidStatus
		}
		upd.Status = &status
	}

	return upd, nil
}
