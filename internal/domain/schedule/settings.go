package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidClock      = errors.New("invalid HH:MM time label")
	ErrInvalidOpenHours  = errors.New("opening time must be before closing time")
	ErrInvalidSlotLength = errors.New("slot duration must be positive")
)

// clockRegex accepts "00:00".."24:00". "24:00" is a valid closing time for a
// restaurant that serves until midnight.
var clockRegex = regexp.MustCompile(`^([01]?\d|2[0-4]):[0-5]\d$`)

// Settings is the operator-maintained restaurant configuration. It is loaded
// explicitly per request and passed down, never read from ambient state.
type Settings struct {
	OpeningTime        string
	ClosingTime        string
	SlotDuration       int // minutes
	MaxGuestsPerSlot   int
	DaysAdvanceBooking int
}

func NewSettings(opening, closing string, slotDuration, maxGuests, daysAdvance int) (Settings, error) {
	openMin, err := ParseClock(opening)
	if err != nil {
		return Settings{}, err
	}
	closeMin, err := ParseClock(closing)
	if err != nil {
		return Settings{}, err
	}
	if openMin >= closeMin {
		return Settings{}, ErrInvalidOpenHours
	}
	if slotDuration <= 0 {
		return Settings{}, ErrInvalidSlotLength
	}
	return Settings{
		OpeningTime:        opening,
		ClosingTime:        closing,
		SlotDuration:       slotDuration,
		MaxGuestsPerSlot:   maxGuests,
		DaysAdvanceBooking: daysAdvance,
	}, nil
}

// ParseClock converts an "HH:MM" label to minutes since midnight.
func ParseClock(s string) (int, error) {
	if !clockRegex.MatchString(s) {
		return 0, ErrInvalidClock
	}
	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	if hours == 24 && minutes != 0 {
		return 0, ErrInvalidClock
	}
	return hours*60 + minutes, nil
}

// FormatClock converts minutes since midnight to an "HH:MM" label.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
