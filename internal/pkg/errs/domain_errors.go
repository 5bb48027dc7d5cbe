package errs

import "errors"

// Sentinels shared by the query layer. The command layer declares its
// own, richer set in usecase/commands.
var (
	ErrResourceNotFound       = errors.New("resource not found")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrInvalidSlot            = errors.New("invalid slot")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)
