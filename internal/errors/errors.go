package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeEmptyPool     = "EMPTY_POOL"
	ErrCodeInsufficient  = "INSUFFICIENT_CANDIDATES"
	ErrCodeSessionClosed = "SESSION_CLOSED"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "EMPTY_POOL")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewUnauthorizedError creates a new UNAUTHORIZED error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Status:  401,
	}
}

// NewEmptyPoolError signals a session start over a scope with zero items.
func NewEmptyPoolError(scope string) *AppError {
	return &AppError{
		Code:    ErrCodeEmptyPool,
		Message: fmt.Sprintf("no questions available for %s", scope),
		Status:  422,
	}
}

// NewInsufficientCandidatesError signals a distractor request over a
// candidate universe with fewer distinct values than options needed.
func NewInsufficientCandidatesError(have, want int) *AppError {
	return &AppError{
		Code:    ErrCodeInsufficient,
		Message: fmt.Sprintf("need %d distinct options, only %d candidates available", want, have),
		Status:  422,
	}
}

// NewSessionClosedError signals an operation on a finished session.
func NewSessionClosedError(op string) *AppError {
	return &AppError{
		Code:    ErrCodeSessionClosed,
		Message: fmt.Sprintf("%s called on a finished session", op),
		Status:  409,
	}
}
