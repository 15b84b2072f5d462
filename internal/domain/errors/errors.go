package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same code, so detailed copies still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Because attaches cause to a copy of e. The result matches both e and cause through errors.Is.
func (e *BaseError) Because(cause error) error {
	if cause == nil {
		return e
	}

	return &causedError{BaseError: e.WithDetails(cause.Error()), cause: cause}
}

type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Unwrap() error {
	return e.cause
}

// Predefined error types
var (
	ErrPropertyNotFound = NewBaseError(
		"PROPERTY_NOT_FOUND",
		"property not found",
		"",
	)

	// ErrSubscriptionNotFound is returned when a bill is written against a subscription that does not exist.
	ErrSubscriptionNotFound = NewBaseError(
		"SUBSCRIPTION_NOT_FOUND",
		"subscription not found",
		"",
	)

	// ErrConstraintViolation is a rejected write: duplicate key, dangling foreign key or missing required column.
	ErrConstraintViolation = NewBaseError(
		"CONSTRAINT_VIOLATION",
		"write violates a storage constraint",
		"",
	)

	// ErrPartialAggregateWrite means a multi-row property write failed part way and was rolled back.
	// Retrying the whole operation is safe.
	ErrPartialAggregateWrite = NewBaseError(
		"PARTIAL_AGGREGATE_WRITE",
		"property aggregate write did not complete",
		"",
	)

	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidPropertyID = NewBaseError(
		"INVALID_PROPERTY_ID",
		"property id must not be empty",
		"",
	)
)

// DecodeError reports a stored row that breaks an invariant the mapper relies on.
// It signals storage corruption and is never retried.
type DecodeError struct {
	Table  string
	Column string
	Value  string
	Reason string
}

// NewDecodeError creates a decode error for the given column value
func NewDecodeError(table, column, value, reason string) *DecodeError {
	return &DecodeError{Table: table, Column: column, Value: value, Reason: reason}
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s.%s %q: %s", e.Table, e.Column, e.Value, e.Reason)
}

func (e *DecodeError) ErrorCode() string {
	return "DECODE_FAILED"
}

func (e *DecodeError) Message() string {
	return "stored record is corrupt"
}

func (e *DecodeError) Details() string {
	return e.Error()
}

// IsDecodeError reports whether err carries a DecodeError anywhere in its chain.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError

	return errors.As(err, &decodeErr)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
