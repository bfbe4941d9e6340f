package gcal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/schedule"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"

	"google.golang.org/api/calendar/v3"
)

// DefaultEventDuration is used when a reservation has no explicit end time.
const DefaultEventDuration = 2 * time.Hour

const eventColorID = "9" // blue, reserved for bookings

// Adapter translates between the reservation domain and the Google Calendar
// collaborator. Every API failure is marked errs.ErrExternalService so the
// usecase boundary can treat it as a soft failure.
type Adapter struct {
	svc        *calendar.Service
	calendarID string
	loc        *time.Location
	timeout    time.Duration
	logger     *slog.Logger
}

func NewAdapter(svc *calendar.Service, cfg config.CalendarConfig, logger *slog.Logger) *Adapter {
	return &Adapter{
		svc:        svc,
		calendarID: cfg.CalendarID,
		loc:        time.FixedZone(cfg.TimeZoneName, cfg.TimeZoneOffset),
		timeout:    cfg.RequestTimeout,
		logger:     logger,
	}
}

// EventsForDate fetches the events whose start falls within the local day,
// 00:00:00.000 through 23:59:59.999.
func (a *Adapter) EventsForDate(ctx context.Context, date time.Time) ([]*calendar.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, a.loc)
	endOfDay := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999_000_000, a.loc)

	res, err := a.svc.Events.List(a.calendarID).
		TimeMin(startOfDay.Format(time.RFC3339)).
		TimeMax(endOfDay.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list calendar events"), errs.ErrExternalService)
	}
	return res.Items, nil
}

// OccupiedSlots expands every event with both endpoints into the slot labels
// it overlaps and accumulates party size per label. The event start is
// rounded down to the nearest slot boundary, then stepped by slotDuration
// until the end instant, exclusive. Events missing either endpoint are
// occupancy evidence we cannot place, so they are skipped.
func (a *Adapter) OccupiedSlots(ctx context.Context, date time.Time, slotDuration int) (map[string]int, error) {
	events, err := a.EventsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]int)
	for _, event := range events {
		if event.Start == nil || event.End == nil ||
			event.Start.DateTime == "" || event.End.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, event.Start.DateTime)
		if err != nil {
			a.logger.Warn("skipping calendar event with unparsable start",
				"event_id", event.Id, "start", event.Start.DateTime)
			continue
		}
		end, err := time.Parse(time.RFC3339, event.End.DateTime)
		if err != nil {
			a.logger.Warn("skipping calendar event with unparsable end",
				"event_id", event.Id, "end", event.End.DateTime)
			continue
		}

		guests := ExtractPartySize(event)
		for _, label := range slotsBetween(start.In(a.loc), end.In(a.loc), slotDuration) {
			occupied[label] += guests
		}
	}
	return occupied, nil
}

// slotsBetween lists the "HH:MM" labels covered by [start, end). The start
// is floored to a multiple of slotDuration minutes since midnight.
func slotsBetween(start, end time.Time, slotDuration int) []string {
	if slotDuration <= 0 {
		return nil
	}
	minutes := start.Hour()*60 + start.Minute()
	floored := (minutes / slotDuration) * slotDuration
	cur := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()).
		Add(time.Duration(floored) * time.Minute)

	var labels []string
	for cur.Before(end) {
		labels = append(labels, cur.Format("15:04"))
		cur = cur.Add(time.Duration(slotDuration) * time.Minute)
	}
	return labels
}

// CreateEvent mirrors a reservation onto the calendar and returns the event
// id. Errors propagate; the caller decides whether to swallow them.
func (a *Adapter) CreateEvent(ctx context.Context, res *reservation.Reservation, slotDuration int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start, end, err := a.eventWindow(res.Date(), res.StartTime(), res.EndTime(), slotDuration)
	if err != nil {
		return "", err
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Reserva: %s - %d personas", res.Customer().Name(), res.NumberOfGuests()),
		Description: buildDescription(res),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: a.loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: a.loc.String(),
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ColorId: eventColorID,
	}

	created, err := a.svc.Events.Insert(a.calendarID, event).
		SendUpdates("none").
		Context(ctx).
		Do()
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "insert calendar event"), errs.ErrExternalService)
	}
	return created.Id, nil
}

// EventChanges is the partial update pushed to a mirrored event. Start and
// end are only recomputed when both a date and a start time are present.
type EventChanges struct {
	Date           *time.Time
	StartTime      *string
	EndTime        *string
	NumberOfGuests *int
}

func (a *Adapter) UpdateEvent(ctx context.Context, eventID string, changes EventChanges, slotDuration int) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	event, err := a.svc.Events.Get(a.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return errs.Mark(errs.Wrap(err, "get calendar event"), errs.ErrExternalService)
	}

	if changes.Date != nil && changes.StartTime != nil {
		start, end, err := a.eventWindow(*changes.Date, *changes.StartTime, changes.EndTime, slotDuration)
		if err != nil {
			return err
		}
		event.Start = &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: a.loc.String(),
		}
		event.End = &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: a.loc.String(),
		}
	}

	if changes.NumberOfGuests != nil {
		event.Summary = rewritePartySize(event.Summary, *changes.NumberOfGuests)
	}

	_, err = a.svc.Events.Update(a.calendarID, eventID, event).
		SendUpdates("none").
		Context(ctx).
		Do()
	if err != nil {
		return errs.Mark(errs.Wrap(err, "update calendar event"), errs.ErrExternalService)
	}
	return nil
}

func (a *Adapter) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	err := a.svc.Events.Delete(a.calendarID, eventID).
		SendUpdates("none").
		Context(ctx).
		Do()
	if err != nil {
		return errs.Mark(errs.Wrap(err, "delete calendar event"), errs.ErrExternalService)
	}
	return nil
}

// eventWindow builds the event start and end instants in the restaurant's
// civil-time offset. An explicit end time equal to the start means a single
// slot, so one slot duration is added; no end time at all means the default
// two-hour sitting.
func (a *Adapter) eventWindow(date time.Time, startLabel string, endLabel *string, slotDuration int) (time.Time, time.Time, error) {
	start, err := a.civilTime(date, startLabel)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	var end time.Time
	switch {
	case endLabel == nil:
		end = start.Add(DefaultEventDuration)
	case *endLabel == startLabel:
		end = start.Add(time.Duration(slotDuration) * time.Minute)
	default:
		end, err = a.civilTime(date, *endLabel)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

func (a *Adapter) civilTime(date time.Time, label string) (time.Time, error) {
	minutes, err := schedule.ParseClock(label)
	if err != nil {
		return time.Time{}, errs.Wrapf(err, "invalid time label %q", label)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, a.loc).
		Add(time.Duration(minutes) * time.Minute), nil
}

func buildDescription(res *reservation.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cliente: %s\n", res.Customer().Name())
	fmt.Fprintf(&b, "Email: %s\n", res.Customer().Email().Value())
	fmt.Fprintf(&b, "Número de personas: %d\n", res.NumberOfGuests())
	fmt.Fprintf(&b, "Menú: %s\n", res.MenuType())
	if req := res.SpecialRequests(); req != nil && *req != "" {
		fmt.Fprintf(&b, "Solicitudes especiales: %s\n", *req)
	}
	b.WriteString("\n---\nReserva creada desde el sistema de gestión del restaurante")
	return b.String()
}
