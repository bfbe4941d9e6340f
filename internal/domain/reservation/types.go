package reservation

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transition is allowed.
// CANCELLED is terminal.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// CountsTowardOccupancy reports whether a reservation in this status consumes
// slot capacity in the local-store fallback computation.
func (s Status) CountsTowardOccupancy() bool {
	return s == StatusPending || s == StatusConfirmed
}
