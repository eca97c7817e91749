package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers. Handlers map
// these to HTTP statuses with errs.Is; the usecase layer attaches them with
// errs.Mark.
var (
	// Venue directory errors
	ErrVenueNotFound = errors.New("venue not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotUnavailable     = errors.New("requested slots are unavailable")
	ErrInvalidTransition   = errors.New("reservation is already decided")
	ErrInvalidDecision     = errors.New("invalid decision value")

	// Authorization errors
	ErrForbidden = errors.New("operation not permitted for this role")

	// Validation errors
	ErrValidation = errors.New("invalid input")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
