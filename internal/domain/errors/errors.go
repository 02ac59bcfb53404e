package errors

import (
	"net/http"

	"pagecast/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so predefined errors
// still match after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidExtension = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EXTENSION",
		"extension hours must be positive",
		"",
	)

	ErrUnknownAction = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ACTION",
		"unknown expiration action",
		"",
	)

	ErrIncompleteBusiness = NewBaseError(
		http.StatusUnprocessableEntity,
		"INCOMPLETE_BUSINESS",
		"business profile is missing required fields",
		"",
	)

	ErrPathConflict = NewBaseError(
		http.StatusConflict,
		"PATH_CONFLICT",
		"another live page already uses this path",
		"",
	)

	// Auth
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid credentials",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"credentials do not grant this operation",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"too many requests",
		"",
	)

	// Not found
	ErrPageNotFound = NewBaseError(
		http.StatusNotFound,
		"PAGE_NOT_FOUND",
		"generated page not found",
		"",
	)

	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"business not found",
		"",
	)

	ErrUpdateNotFound = NewBaseError(
		http.StatusNotFound,
		"UPDATE_NOT_FOUND",
		"update not found",
		"",
	)

	// Store
	ErrCircuitOpen = NewBaseError(
		http.StatusServiceUnavailable,
		"CIRCUIT_OPEN",
		"store temporarily unavailable",
		"",
	)

	ErrRenderFailed = NewBaseError(
		http.StatusInternalServerError,
		"RENDER_FAILED",
		"page rendering failed",
		"",
	)

	ErrPayloadCorrupt = NewBaseError(
		http.StatusInternalServerError,
		"PAYLOAD_CORRUPT",
		"stored page payload could not be decoded",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// StoreError is an object-store or database I/O failure. Callers retry it with
// backoff; the pipeline itself makes a single attempt.
type StoreError struct {
	err     error
	op      string
	timeout bool
}

// NewStoreError wraps an I/O failure of operation op.
func NewStoreError(err error, op string) AppError {
	return &StoreError{
		err:     err,
		op:      op,
		timeout: errors.IsTimeout(err),
	}
}

func (e *StoreError) Error() string {
	return errors.Wrapf(e.err, "store operation %s failed", e.op).Error()
}

func (e *StoreError) Unwrap() error { return e.err }

func (e *StoreError) HTTPCode() int { return http.StatusServiceUnavailable }

func (e *StoreError) ErrorCode() string {
	if e.timeout {
		return "STORE_TIMEOUT"
	}

	return "STORE_ERROR"
}

func (e *StoreError) Message() string { return "storage temporarily unavailable, retry later" }

func (e *StoreError) Details() string { return e.op }

// Retryable is always true for store errors.
func (e *StoreError) Retryable() bool { return true }

// IsRetryable reports whether err is a store failure worth retrying.
func IsRetryable(err error) bool {
	var storeErr *StoreError

	return errors.As(err, &storeErr) || errors.Is(err, ErrCircuitOpen)
}

// CodeOf returns the business error code for err, INTERNAL_ERROR when err is not an AppError.
func CodeOf(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ErrInternalError.ErrorCode()
}

// MessageOf returns a user-facing message for err.
func MessageOf(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		if d := appErr.Details(); d != "" {
			return appErr.Message() + ": " + d
		}

		return appErr.Message()
	}

	return err.Error()
}
