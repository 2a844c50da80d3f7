package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")
	ErrPreconditionFailed    = errors.New("precondition failed")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Child errors
var (
	ErrChildNotFound = errors.New("child not found")
	ErrChildInactive = errors.New("child is not actively enrolled")
)

// Classroom errors
var (
	ErrClassroomNotFound      = errors.New("classroom not found")
	ErrClassroomInactive      = errors.New("classroom is inactive")
	ErrClassroomAlreadyExists = errors.New("classroom with this name already exists")
	ErrClassroomHasChildren   = errors.New("classroom has assigned children and cannot be deleted")
)

// Occupancy errors. Exclusivity violations wrap ErrConflict and missing
// active states wrap ErrPreconditionFailed, so the HTTP layer can map whole
// families at once.
var (
	ErrAlreadyCheckedIn = wrap(ErrConflict, "child is already checked in")
	ErrNotCheckedIn     = wrap(ErrPreconditionFailed, "child is not checked in")
	ErrChildNotAssigned = wrap(ErrPreconditionFailed, "child has no active classroom assignment")
	ErrAlreadySignedIn  = wrap(ErrConflict, "staff member is already signed in today")
	ErrNotSignedIn      = wrap(ErrPreconditionFailed, "staff member is not signed in today")
)

func wrap(base error, message string) error {
	return &CustomError{Err: base, Message: message}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
