package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidPeriod ErrorCode = "INVALID_PERIOD"

	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Write conflicts
	ErrCodeConflict ErrorCode = "CONFLICT"
)

// AppError is an error carrying a stable code for the HTTP layer.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
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

// NewAppError creates an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError returns the first AppError in err's chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFound reports whether err means a missing entity.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == ErrCodeNotFound
}

var (
	ErrNotFound         = errors.New("not found")
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)

	ErrInvalidPeriod = errors.New("start period cannot be after end period")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInUse         = errors.New("still referenced by orders")
)
