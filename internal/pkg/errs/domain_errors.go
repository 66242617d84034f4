package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers map these to HTTP
// statuses with errors.Is.
var (
	// Booking errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is not available for the requested dates")

	// Customer errors
	ErrDuplicateCustomerEmail = errors.New("a customer with the same email already exists")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
