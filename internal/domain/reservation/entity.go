package reservation

import (
	"errors"
	"time"

	"restaurant-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrInvalidTimeLabel = errors.New("invalid reservation time")
)

// Reservation is the aggregate owning the booking lifecycle:
// PENDING -> CONFIRMED -> CANCELLED, with CANCELLED terminal. The external
// calendar event id is a weak back-reference; its absence or staleness never
// invalidates the reservation.
type Reservation struct {
	id                  uuid.UUID
	customer            Customer
	numberOfGuests      int
	date                time.Time // civil date, time-of-day ignored
	startTime           string    // "HH:MM"
	endTime             *string
	menuType            string
	theme               *string
	tablePreference     *string
	specialRequests     *string
	dietaryRestrictions *string
	status              Status
	googleEventID       *string
	createdAt           time.Time
	updatedAt           time.Time
}

func NewReservation(
	customer Customer,
	numberOfGuests int,
	date time.Time,
	startTime string,
	endTime *string,
	menuType string,
	theme, tablePreference, specialRequests, dietaryRestrictions *string,
) (*Reservation, error) {
	if numberOfGuests < 1 {
		return nil, ErrInvalidPartySize
	}
	if _, err := schedule.ParseClock(startTime); err != nil {
		return nil, ErrInvalidTimeLabel
	}
	if endTime != nil {
		if _, err := schedule.ParseClock(*endTime); err != nil {
			return nil, ErrInvalidTimeLabel
		}
	}

	return &Reservation{
		id:                  uuid.New(),
		customer:            customer,
		numberOfGuests:      numberOfGuests,
		date:                truncateToDate(date),
		startTime:           startTime,
		endTime:             endTime,
		menuType:            menuType,
		theme:               theme,
		tablePreference:     tablePreference,
		specialRequests:     specialRequests,
		dietaryRestrictions: dietaryRestrictions,
		status:              StatusPending,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	customer Customer,
	numberOfGuests int,
	date time.Time,
	startTime string,
	endTime *string,
	menuType string,
	theme, tablePreference, specialRequests, dietaryRestrictions *string,
	status Status,
	googleEventID *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                  id,
		customer:            customer,
		numberOfGuests:      numberOfGuests,
		date:                truncateToDate(date),
		startTime:           startTime,
		endTime:             endTime,
		menuType:            menuType,
		theme:               theme,
		tablePreference:     tablePreference,
		specialRequests:     specialRequests,
		dietaryRestrictions: dietaryRestrictions,
		status:              status,
		googleEventID:       googleEventID,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// Update is the typed partial-update payload. Date and Status arrive here
// already parsed; raw request strings never reach the entity.
type Update struct {
	NumberOfGuests      *int
	Date                *time.Time
	StartTime           *string
	EndTime             *string
	MenuType            *string
	Theme               *string
	TablePreference     *string
	SpecialRequests     *string
	DietaryRestrictions *string
	Status              *Status
}

// TimeChanged reports whether the update moves the reservation to a
// different date or start time, which is what forces a calendar re-sync.
func (u Update) TimeChanged() bool {
	return u.Date != nil || u.StartTime != nil
}

func (r *Reservation) ApplyUpdate(u Update) error {
	if u.NumberOfGuests != nil {
		if *u.NumberOfGuests < 1 {
			return ErrInvalidPartySize
		}
		r.numberOfGuests = *u.NumberOfGuests
	}
	if u.Date != nil {
		r.date = truncateToDate(*u.Date)
	}
	if u.StartTime != nil {
		if _, err := schedule.ParseClock(*u.StartTime); err != nil {
			return ErrInvalidTimeLabel
		}
		r.startTime = *u.StartTime
	}
	if u.EndTime != nil {
		if _, err := schedule.ParseClock(*u.EndTime); err != nil {
			return ErrInvalidTimeLabel
		}
		r.endTime = u.EndTime
	}
	if u.MenuType != nil {
		r.menuType = *u.MenuType
	}
	if u.Theme != nil {
		r.theme = u.Theme
	}
	if u.TablePreference != nil {
		r.tablePreference = u.TablePreference
	}
	if u.SpecialRequests != nil {
		r.specialRequests = u.SpecialRequests
	}
	if u.DietaryRestrictions != nil {
		r.dietaryRestrictions = u.DietaryRestrictions
	}
	if u.Status != nil {
		if !u.Status.IsValid() {
			return ErrInvalidStatus
		}
		if r.status.IsTerminal() && *u.Status != r.status {
			return ErrAlreadyCancelled
		}
		r.status = *u.Status
	}
	return nil
}

// Confirm finishes the two-step create: the reservation was persisted as
// PENDING, mirroring was attempted, and the result (possibly nil) is
// recorded alongside the CONFIRMED status.
func (r *Reservation) Confirm(googleEventID *string) {
	r.status = StatusConfirmed
	r.googleEventID = googleEventID
}

func (r *Reservation) Cancel() error {
	if r.status.IsTerminal() {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) Customer() Customer           { return r.customer }
func (r *Reservation) NumberOfGuests() int          { return r.numberOfGuests }
func (r *Reservation) Date() time.Time              { return r.date }
func (r *Reservation) StartTime() string            { return r.startTime }
func (r *Reservation) EndTime() *string             { return r.endTime }
func (r *Reservation) MenuType() string             { return r.menuType }
func (r *Reservation) Theme() *string               { return r.theme }
func (r *Reservation) TablePreference() *string     { return r.tablePreference }
func (r *Reservation) SpecialRequests() *string     { return r.specialRequests }
func (r *Reservation) DietaryRestrictions() *string { return r.dietaryRestrictions }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) GoogleEventID() *string       { return r.googleEventID }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
