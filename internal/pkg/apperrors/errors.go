package apperrors

import "errors"

// Common errors
var (
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
)

// Activity errors
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrActivityFull     = errors.New("activity is full")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Membership errors
var (
	ErrAlreadySignedUp = errors.New("student is already signed up")
	ErrNotSignedUp     = errors.New("student is not signed up for this activity")
)

// CustomError pairs a sentinel with a human-readable message, so
// errors.Is still matches the sentinel while Error() carries the
// detail shown to clients.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
