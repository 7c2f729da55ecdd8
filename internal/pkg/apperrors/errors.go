package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Sign-up errors
var (
	// ErrInvalidDomain is returned when a sign-up email matches neither
	// the student nor the faculty institutional domain.
	ErrInvalidDomain = errors.New("email domain is not recognized")
	// ErrProfileNotFound is returned when a student signs up without a
	// provisioned student profile for their official email.
	ErrProfileNotFound = errors.New("student profile not found")
)

// Quiz errors
var (
	// ErrNoQuestion means no question is active for the requested day.
	ErrNoQuestion = errors.New("no question for the requested day")
	// ErrNotAttempted means the student has no answer for the requested day.
	ErrNotAttempted = errors.New("question not attempted for the requested day")
	// ErrOutOfRange means the requested day lies outside the student's
	// own answered history.
	ErrOutOfRange = errors.New("requested day outside answered history")
	// ErrAlreadyAnswered means the student already submitted an answer today.
	ErrAlreadyAnswered = errors.New("answer already submitted for this day")
	// ErrQuestionExists means a question already exists for the target day.
	ErrQuestionExists = errors.New("a question already exists for this day")
)

// Is reports whether err matches target or any error in errList.
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
	Details map[string]interface{}
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

// Unwrap implements errors.Unwrap
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
