// Package errors defines the application-level error taxonomy. Every error a
// handler can surface to a client is declared here with its HTTP status code
// and user-facing message.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// The complete failure taxonomy. All of these are terminal and user-visible;
// nothing in the service retries them.
var (
	// ErrEmailExists is returned when registering with an email that is
	// already taken.
	ErrEmailExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_EXISTS",
		"Email already exists",
	)

	// ErrInvalidCredentials is returned when a login's email/digest pair
	// matches no user. The response does not reveal which half was wrong.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
	)

	// ErrTokenExpired is returned when a bearer token's expiry claim is in
	// the past.
	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
	)

	// ErrTokenInvalid covers every other token failure: bad signature,
	// malformed structure, unparsable claims.
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
	)
)

// DatabaseExecuteError represents an unclassified storage failure. It is not
// part of the client-facing taxonomy; the error middleware reports it as an
// internal error.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns the internal description of the failure, for logging.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying storage error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
