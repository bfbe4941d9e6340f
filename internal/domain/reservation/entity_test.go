//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T) reservation.Customer {
	t.Helper()
	email, err := reservation.NewEmail("maria@example.com")
	require.NoError(t, err)
	customer, err := reservation.NewCustomer("María García", email, "+593991234567")
	require.NoError(t, err)
	return customer
}

func newTestReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	res, err := reservation.NewReservation(
		newTestCustomer(t), 4,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		"19:00", nil, "degustacion", nil, nil, nil, nil,
	)
	require.NoError(t, err)
	return res
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		errIs error
	}{
		{name: "valid email", email: "maria@example.com"},
		{name: "valid email with plus", email: "maria+test@example.com"},
		{name: "surrounding whitespace is trimmed", email: "  maria@example.com  "},
		{name: "missing at sign", email: "maria.example.com", errIs: reservation.ErrInvalidEmail},
		{name: "missing tld", email: "maria@example", errIs: reservation.ErrInvalidEmail},
		{name: "empty", email: "", errIs: reservation.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reservation.NewEmail(tc.email)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewCustomer(t *testing.T) {
	email, err := reservation.NewEmail("maria@example.com")
	require.NoError(t, err)

	t.Run("blank name", func(t *testing.T) {
		_, err := reservation.NewCustomer("   ", email, "+593991234567")
		assert.ErrorIs(t, err, reservation.ErrInvalidName)
	})

	t.Run("blank phone", func(t *testing.T) {
		_, err := reservation.NewCustomer("María", email, "")
		assert.ErrorIs(t, err, reservation.ErrInvalidPhone)
	})
}

func TestNewReservation(t *testing.T) {
	t.Run("starts as PENDING with a fresh id", func(t *testing.T) {
		res := newTestReservation(t)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Nil(t, res.GoogleEventID())
	})

	t.Run("date is truncated to the civil day", func(t *testing.T) {
		res, err := reservation.NewReservation(
			newTestCustomer(t), 2,
			time.Date(2026, 9, 15, 14, 23, 5, 0, time.UTC),
			"19:00", nil, "regular", nil, nil, nil, nil,
		)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), res.Date())
	})

	t.Run("rejects party size below 1", func(t *testing.T) {
		_, err := reservation.NewReservation(
			newTestCustomer(t), 0,
			time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			"19:00", nil, "regular", nil, nil, nil, nil,
		)
		assert.ErrorIs(t, err, reservation.ErrInvalidPartySize)
	})

	t.Run("rejects malformed start time", func(t *testing.T) {
		_, err := reservation.NewReservation(
			newTestCustomer(t), 2,
			time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			"7pm", nil, "regular", nil, nil, nil, nil,
		)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeLabel)
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("updates provided fields only", func(t *testing.T) {
		res := newTestReservation(t)
		guests := 6
		start := "20:30"

		err := res.ApplyUpdate(reservation.Update{
			NumberOfGuests: &guests,
			StartTime:      &start,
		})
		require.NoError(t, err)

		assert.Equal(t, 6, res.NumberOfGuests())
		assert.Equal(t, "20:30", res.StartTime())
		assert.Equal(t, "degustacion", res.MenuType())
	})

	t.Run("rejects party size below 1", func(t *testing.T) {
		res := newTestReservation(t)
		guests := 0

		err := res.ApplyUpdate(reservation.Update{NumberOfGuests: &guests})
		assert.ErrorIs(t, err, reservation.ErrInvalidPartySize)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		res := newTestReservation(t)
		status := reservation.Status("NO_SHOW")

		err := res.ApplyUpdate(reservation.Update{Status: &status})
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("cancelled reservation cannot change status", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.Cancel())

		status := reservation.StatusConfirmed
		err := res.ApplyUpdate(reservation.Update{Status: &status})
		assert.ErrorIs(t, err, reservation.ErrAlreadyCancelled)
	})
}

func TestUpdateTimeChanged(t *testing.T) {
	date := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	start := "21:00"
	guests := 3

	assert.True(t, reservation.Update{Date: &date}.TimeChanged())
	assert.True(t, reservation.Update{StartTime: &start}.TimeChanged())
	assert.False(t, reservation.Update{NumberOfGuests: &guests}.TimeChanged())
}

func TestConfirmAndCancel(t *testing.T) {
	t.Run("confirm records the calendar reference", func(t *testing.T) {
		res := newTestReservation(t)
		eventID := "evt_123"

		res.Confirm(&eventID)

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		require.NotNil(t, res.GoogleEventID())
		assert.Equal(t, "evt_123", *res.GoogleEventID())
	})

	t.Run("confirm with no calendar reference still confirms", func(t *testing.T) {
		res := newTestReservation(t)

		res.Confirm(nil)

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Nil(t, res.GoogleEventID())
	})

	t.Run("cancel is terminal", func(t *testing.T) {
		res := newTestReservation(t)

		require.NoError(t, res.Cancel())
		assert.True(t, res.IsCancelled())

		err := res.Cancel()
		assert.ErrorIs(t, err, reservation.ErrAlreadyCancelled)
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, reservation.StatusPending.CountsTowardOccupancy())
	assert.True(t, reservation.StatusConfirmed.CountsTowardOccupancy())
	assert.False(t, reservation.StatusCancelled.CountsTowardOccupancy())

	assert.False(t, reservation.StatusConfirmed.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())

	assert.False(t, reservation.Status("UNKNOWN").IsValid())
}
