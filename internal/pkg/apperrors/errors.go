package apperrors

import "errors"

// Base error categories. The HTTP error mapping switches on these, so every
// domain error below unwraps to exactly one of them.
var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is not active")
	ErrValidationFailed   = errors.New("validation failed")
	ErrBadRequest         = errors.New("bad request")
	ErrIllegalState       = errors.New("operation not allowed in current state")
)

// Admin errors
var (
	ErrAdminNotFound       = sentinel(ErrResourceNotFound, "admin not found")
	ErrUsernameAlreadyUsed = sentinel(ErrConflict, "username or email already in use")
)

// User errors
var (
	ErrUserNotFound       = sentinel(ErrResourceNotFound, "user not found")
	ErrEmailAlreadyExists = sentinel(ErrConflict, "email already exists")
)

// Student errors
var (
	ErrStudentNotFound  = sentinel(ErrResourceNotFound, "student not found")
	ErrStudentSuspended = sentinel(ErrIllegalState, "account is suspended")
)

// Course errors
var (
	ErrCourseNotFound     = sentinel(ErrResourceNotFound, "course not found")
	ErrCourseCodeExists   = sentinel(ErrConflict, "course code already exists")
	ErrCourseNotPublished = sentinel(ErrIllegalState, "course is not available for application")
)

// Application errors
var (
	ErrApplicationNotFound = sentinel(ErrResourceNotFound, "application not found")
	ErrAlreadyApplied      = sentinel(ErrIllegalState, "student has already applied for a course")
	ErrInvalidStatus       = sentinel(ErrBadRequest, "invalid application status")
)

// Complaint errors
var (
	ErrComplaintNotFound = sentinel(ErrResourceNotFound, "complaint not found")
)

// sentinel builds a comparable domain error that unwraps to its base category
func sentinel(base error, message string) error {
	return &CustomError{Err: base, Message: message}
}

// CustomError carries a caller-facing message on top of an underlying error
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewIllegalStateError creates an illegal-state error carrying the specific
// cause and a caller-facing message
func NewIllegalStateError(cause error, message string) error {
	return &CustomError{Err: cause, Message: message}
}

// NewBadRequestError creates a bad-request error carrying the specific cause
// and a caller-facing message
func NewBadRequestError(cause error, message string) error {
	return &CustomError{Err: cause, Message: message}
}
