package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ruleteo Business Logic (RUL) ----

func ErrInvalidAmount() *AppError {
	return New("RUL_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrCardNotFound() *AppError {
	return New("RUL_002", "Card not found", http.StatusNotFound)
}

func ErrTransferRejected() *AppError {
	return New("RUL_003", "Transfer rejected: unknown card or non-positive amount", http.StatusUnprocessableEntity)
}

// Validation returns a RUL_004 request validation error.
func Validation(message string) *AppError {
	return New("RUL_004", message, http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorage(err error) *AppError {
	return Wrap("SYS_001", "State storage failure", http.StatusInternalServerError, err)
}

func ErrRateLimitExceeded() *AppError {
	return New("SYS_003", "Too many requests, retry later", http.StatusTooManyRequests)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}
