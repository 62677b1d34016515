package errs

import "errors"

// Error taxonomy shared by every layer. Concrete errors wrap one of these so
// handlers can classify them with errors.Is without knowing the origin.
var (
	// The resource is missing or the actor may not see it. Authorization
	// failures on bookings and items are reported this way on purpose.
	ErrNotFound = errors.New("not found")

	ErrNotAvailable      = errors.New("not available")
	ErrInvalidState      = errors.New("invalid state")
	ErrUnsupportedFilter = errors.New("unsupported filter")

	ErrValidation             = errors.New("validation failed")
	ErrConflict               = errors.New("conflict")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrUnauthorized           = errors.New("unauthorized")
)

var kinds = []error{
	ErrNotFound,
	ErrNotAvailable,
	ErrInvalidState,
	ErrUnsupportedFilter,
	ErrValidation,
	ErrConflict,
	ErrConcurrentModification,
	ErrUnauthorized,
}
