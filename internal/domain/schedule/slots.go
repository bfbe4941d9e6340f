package schedule

// TimeSlot is the per-request availability view of one bookable slot. It is
// computed fresh on every query and never persisted.
type TimeSlot struct {
	Time              string `json:"time"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// GenerateSlots produces the ordered "HH:MM" labels from opening time up to,
// but excluding, closing time, stepping by the slot duration. When the
// duration does not evenly divide the span the final truncated slot is still
// emitted: any label strictly before closing counts.
func GenerateSlots(s Settings) ([]string, error) {
	openMin, err := ParseClock(s.OpeningTime)
	if err != nil {
		return nil, err
	}
	closeMin, err := ParseClock(s.ClosingTime)
	if err != nil {
		return nil, err
	}
	if s.SlotDuration <= 0 {
		return nil, ErrInvalidSlotLength
	}

	var slots []string
	for cur := openMin; cur < closeMin; cur += s.SlotDuration {
		slots = append(slots, FormatClock(cur))
	}
	return slots, nil
}

// BuildAvailability merges the generated slot list with per-slot occupancy
// into the availability view. The availability decision uses the unclamped
// remaining capacity; clamping only affects the reported value, so an
// oversubscribed slot reports 0 remaining but still rejects any party size.
func BuildAvailability(slots []string, occupied map[string]int, maxGuestsPerSlot, partySize int) []TimeSlot {
	result := make([]TimeSlot, len(slots))
	for i, label := range slots {
		remaining := maxGuestsPerSlot - occupied[label]
		capacity := remaining
		if capacity < 0 {
			capacity = 0
		}
		result[i] = TimeSlot{
			Time:              label,
			Available:         remaining >= partySize,
			RemainingCapacity: capacity,
		}
	}
	return result
}
