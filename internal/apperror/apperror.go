package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failure")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInputTooShort     = errors.New("input too short")
)

type AppError struct {
	Err     error  // sentinel the error maps to
	Message string // human-readable error message
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(login string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("User %s not found", login),
	}
}

func ValidationFailed(message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
	}
}

func SourceUnavailable(cause error) *AppError {
	return &AppError{
		Err:     ErrSourceUnavailable,
		Message: fmt.Sprintf("github api unavailable: %v", cause),
	}
}

func InputTooShort(param string, minLength int) *AppError {
	return &AppError{
		Err:     ErrInputTooShort,
		Message: fmt.Sprintf("query parameter %q must be at least %d characters", param, minLength),
	}
}
