// Package errors provides application-level error types and utilities.
// It defines the error kinds surfaced by the ingestion core: not found,
// transient and permanent transport failures, data integrity, configuration
// and invalid input errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeTransportTransient ErrorType = "transport_transient"
	ErrorTypeTransportPermanent ErrorType = "transport_permanent"
	ErrorTypeDataIntegrity      ErrorType = "data_integrity"
	ErrorTypeConfiguration      ErrorType = "configuration"
	ErrorTypeInvalidInput       ErrorType = "invalid_input"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newError(errType ErrorType, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Details: detail,
	}
}

// NewNotFoundError creates a new not found error. Used when the remote has no
// record for an ID, or the ID is absent from a list-only endpoint.
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, message, details...)
}

// NewTransportTransientError creates a retryable transport error
// (gateway timeout, bad gateway, service unavailable, OS level I/O error).
func NewTransportTransientError(message string, details ...string) *AppError {
	return newError(ErrorTypeTransportTransient, message, details...)
}

// NewTransportPermanentError creates a non-retryable transport error
// (authentication or schema failure).
func NewTransportPermanentError(message string, details ...string) *AppError {
	return newError(ErrorTypeTransportPermanent, message, details...)
}

// NewDataIntegrityError creates an error for a rejected store write.
func NewDataIntegrityError(message string, details ...string) *AppError {
	return newError(ErrorTypeDataIntegrity, message, details...)
}

// NewConfigurationError creates an error for invalid entity metadata.
// These must surface at registry build, never at run time.
func NewConfigurationError(message string, details ...string) *AppError {
	return newError(ErrorTypeConfiguration, message, details...)
}

// NewInvalidInputError creates an error for bad caller input
// (ID <= 0, unknown category, invalid image size).
func NewInvalidInputError(message string, details ...string) *AppError {
	return newError(ErrorTypeInvalidInput, message, details...)
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

func isType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsTransportTransientError checks if the error is a retryable transport error
func IsTransportTransientError(err error) bool {
	return isType(err, ErrorTypeTransportTransient)
}

// IsTransportPermanentError checks if the error is a permanent transport error
func IsTransportPermanentError(err error) bool {
	return isType(err, ErrorTypeTransportPermanent)
}

// IsDataIntegrityError checks if the error is a data integrity error
func IsDataIntegrityError(err error) bool {
	return isType(err, ErrorTypeDataIntegrity)
}

// IsConfigurationError checks if the error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}

// IsInvalidInputError checks if the error is an invalid input error
func IsInvalidInputError(err error) bool {
	return isType(err, ErrorTypeInvalidInput)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite / PostgreSQL unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	return false
}
