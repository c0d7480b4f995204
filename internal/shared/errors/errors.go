// Package errors provides application-level error types and utilities.
// It defines the error taxonomy shared by handlers, use cases, and the
// dashboard sync engine.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation_error"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeUnauthorized  ErrorType = "unauthorized"
	ErrorTypeInternal      ErrorType = "internal_error"
	ErrorTypeBadRequest    ErrorType = "bad_request"
	ErrorTypeConfiguration ErrorType = "configuration_error"
	ErrorTypeStore         ErrorType = "store_error"
	ErrorTypeAttachment    ErrorType = "attachment_error"
	ErrorTypeTooLarge      ErrorType = "attachment_too_large"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: first(details),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Code:    http.StatusNotFound,
		Details: first(details),
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: message,
		Code:    http.StatusUnauthorized,
		Details: first(details),
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeBadRequest,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: first(details),
	}
}

// NewConfigurationError creates an error for missing or invalid server
// configuration. The detailed cause stays in server logs; callers only
// see a generic message.
func NewConfigurationError(details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: "Server configuration error",
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

// NewStoreError wraps a backing-store failure. Store errors are local
// and recoverable: the surrounding admin session continues.
func NewStoreError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeStore,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

// NewAttachmentError creates an error for attachment upload or delete
// failures.
func NewAttachmentError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeAttachment,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: first(details),
	}
}

// NewTooLargeError creates an error for attachments exceeding the size
// limit. Raised locally, before any network call.
func NewTooLargeError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeTooLarge,
		Message: message,
		Code:    http.StatusBadRequest,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsStoreError checks if the error is a backing-store error
func IsStoreError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeStore
}

// IsTooLargeError checks if the error is an attachment size rejection
func IsTooLargeError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeTooLarge
}

// IsConfigurationError checks if the error is a configuration error
func IsConfigurationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConfiguration
}

func first(details []string) string {
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
