package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailConflict  = errors.New("email already in use")

	// Item errors
	ErrItemNotFound   = errors.New("item not found")
	ErrItemNotOwned   = errors.New("item not owned by user")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrItemNotAvailable  = errors.New("item is not available for booking")
	ErrBookingAccess     = errors.New("no access to booking")
	ErrInvalidStateParam = errors.New("unknown booking state filter")

	// Comment errors
	ErrCommentNotAllowed = errors.New("user is not eligible to comment on item")

	// Request board errors
	ErrRequestNotFound = errors.New("item request not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
