package gcal

import (
	"regexp"
	"strconv"

	"google.golang.org/api/calendar/v3"
)

// DefaultPartySize is assumed when an event carries no recognizable party
// size. The restaurant's events are written as "Reserva: {name} - N
// personas", but operators also create events by hand.
const DefaultPartySize = 2

var (
	summaryPartyRegex     = regexp.MustCompile(`(?i)(\d+)\s*personas?`)
	descriptionPartyRegex = regexp.MustCompile(`(?i)Número de personas:\s*(\d+)`)
)

// ExtractPartySize parses the party size out of a calendar event: the
// summary pattern wins, then the structured description line, then the
// default. The heuristic is lossy on free-form events; that is accepted.
func ExtractPartySize(event *calendar.Event) int {
	if m := summaryPartyRegex.FindStringSubmatch(event.Summary); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := descriptionPartyRegex.FindStringSubmatch(event.Description); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return DefaultPartySize
}

// rewritePartySize replaces the party-size token embedded in an event
// summary, keeping the rest of the text intact.
func rewritePartySize(summary string, guests int) string {
	return summaryPartyRegex.ReplaceAllString(summary, strconv.Itoa(guests)+" personas")
}
