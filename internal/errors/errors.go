// Package errors provides custom error types for the lottery ledger.
// Service-layer failures are returned as *AppError so every surface (HTTP,
// console) can report a stable code and a message without leaking internals.
package errors

import (
	stderrors "errors"
	"net/http"
)

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

// Is matches another AppError by code, so wrapped copies of a sentinel
// compare equal to the sentinel itself.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

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

// IsNotFound reports whether err is one of the lookup-miss errors.
func IsNotFound(err error) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.StatusCode == http.StatusNotFound
}

// General errors.
var (
	ErrInvalidInput       = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound           = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer     = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrStorageUnavailable = &AppError{Code: "STORAGE_UNAVAILABLE", Message: "The backing store could not be written; no changes were applied", StatusCode: http.StatusServiceUnavailable}
)

// Lottery errors.
var (
	ErrLotteryNotFound  = &AppError{Code: "LOTTERY_NOT_FOUND", Message: "Lottery not found", StatusCode: http.StatusNotFound}
	ErrInvalidPrice     = &AppError{Code: "INVALID_PRICE", Message: "Price per fraction must be greater than zero", StatusCode: http.StatusBadRequest}
	ErrInvalidInventory = &AppError{Code: "INVALID_INVENTORY", Message: "Inventory cannot be negative", StatusCode: http.StatusBadRequest}
	ErrInvalidFractions = &AppError{Code: "INVALID_FRACTIONS", Message: "Fractions per ticket must be greater than zero", StatusCode: http.StatusBadRequest}
)

// Sale errors.
var (
	ErrSaleNotFound      = &AppError{Code: "SALE_NOT_FOUND", Message: "Sale not found", StatusCode: http.StatusNotFound}
	ErrNoFieldsToUpdate  = &AppError{Code: "NO_FIELDS_TO_UPDATE", Message: "No updatable fields were supplied", StatusCode: http.StatusBadRequest}
	ErrInvalidSaleAmount = &AppError{Code: "INVALID_SALE_AMOUNT", Message: "Fractions sold must be greater than zero", StatusCode: http.StatusBadRequest}
	ErrInvalidSaleValue  = &AppError{Code: "INVALID_SALE_VALUE", Message: "Sale value cannot be negative", StatusCode: http.StatusBadRequest}
)
