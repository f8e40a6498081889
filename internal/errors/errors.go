// Package errors provides custom error types for the ExpenseFlow API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	ErrInvalidTransaction = &AppError{Code: "INVALID_TRANSACTION", Message: "Transaction amount must be positive and reference an existing account or card", StatusCode: http.StatusBadRequest}
	ErrEntityNotFound     = &AppError{Code: "ENTITY_NOT_FOUND", Message: "Account or card not found", StatusCode: http.StatusNotFound}
)

// Persistence errors. A snapshot that cannot be read back is fatal: the store
// is a whole-snapshot overwrite with no partial-recovery path.
var (
	ErrPersistenceFailure = &AppError{Code: "PERSISTENCE_FAILURE", Message: "Failed to read or write the ledger snapshot", StatusCode: http.StatusInternalServerError}
)
