package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotUnavailable     = errors.New("no availability for the requested date and time")

	// Settings errors
	ErrConfigurationMissing = errors.New("restaurant settings not configured")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")

	// Calendar errors: always soft failures at the usecase boundary,
	// never allowed to fail the local write path
	ErrExternalService = errors.New("external calendar service failed")
)
