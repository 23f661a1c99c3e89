// Package errors defines the application errors that surface to API clients
// with a status code and a stable error code.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error with a client-facing representation.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
}

// BaseError is a sentinel AppError. Wrap it with WrapMessage to add context
// while keeping errors.Is and errors.As working.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Users
var (
	ErrUserNotFound     = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserUpdateFailed = NewBaseError(http.StatusInternalServerError, "USER_UPDATE_FAILED", "Failed to update user")
)

// Subscriptions
var (
	ErrSubscriptionNotFound = NewBaseError(http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND", "Subscription not found")
	ErrSubscriptionLimitReached = NewBaseError(http.StatusForbidden,
		"SUBSCRIPTION_LIMIT_REACHED", "Subscription limit reached for the current tier")
	ErrSubscriptionAlreadyCancelled = NewBaseError(http.StatusConflict,
		"SUBSCRIPTION_ALREADY_CANCELLED", "Subscription is already cancelled")
	ErrInvalidBillingCycle = NewBaseError(http.StatusBadRequest,
		"INVALID_BILLING_CYCLE", "Billing cycle count must be at least 1 and period one of day, month, quarter, year")
)

// Devices, notifications and renewal runs
var (
	ErrDeviceNotFound       = NewBaseError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")
	ErrNotificationNotFound = NewBaseError(http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "Notification not found")
	ErrRenewalRunInProgress = NewBaseError(http.StatusConflict,
		"RENEWAL_RUN_IN_PROGRESS", "A renewal run for this offset is already in progress")
)

// Generic
var (
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrForbidden        = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrNotFound         = NewBaseError(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrConflict         = NewBaseError(http.StatusConflict, "CONFLICT", "Resource conflict")
)

// DatabaseExecuteError reports a failed write without leaking the driver error
// to clients. The cause stays reachable through errors.Unwrap for logging.
type DatabaseExecuteError struct {
	err       error
	operation string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.operation).Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
