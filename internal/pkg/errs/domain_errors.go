package errs

import "errors"

// Domain-specific sentinel errors shared between usecase and handler layers
var (
	// Identity errors
	ErrIdentityUnknown    = errors.New("unable to determine user id from signed payload")
	ErrProfileNotFound    = errors.New("user profile not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrAuthUnavailable    = errors.New("university authentication service unavailable")

	// Admissions errors
	ErrUniversityNotFound = errors.New("university not found")
	ErrProgramNotFound    = errors.New("program not found")
	ErrProgramNotAllowed  = errors.New("program not allowed for this event")

	// Registration errors
	ErrEventNotFound      = errors.New("event not found")
	ErrRegistrationClosed = errors.New("registration closed")
	ErrCapacityExhausted  = errors.New("capacity exhausted")
	ErrAlreadyRegistered  = errors.New("already registered")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
