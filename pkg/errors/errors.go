package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - raised by the dashboard and proxy use cases
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeCacheMiss

	// Infrastructure errors - upstream providers and local storage
	ErrorTypeProvider
	ErrorTypeStorage

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeCacheMiss:
		return "CACHE_MISS"
	case ErrorTypeProvider:
		return "PROVIDER_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	CacheMissError     = ErrorTypeCacheMiss
	ProviderError      = ErrorTypeProvider
	StorageError       = ErrorTypeStorage
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	// StatusCode carries the upstream HTTP status for provider errors, 0 when unknown.
	StatusCode int
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain error constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewCacheMissError(message string) *AppError {
	return New(CacheMissError, message)
}

// Infrastructure error constructors

// NewProviderError builds an upstream failure. statusCode is the upstream HTTP
// status, or 0 when the call never produced a response.
func NewProviderError(statusCode int, message string, cause error) *AppError {
	return &AppError{
		Type:       ProviderError,
		Message:    message,
		Cause:      cause,
		StatusCode: statusCode,
	}
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(StorageError, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// Helper functions for error type checking. They look through wrapping so
// use cases can add context with fmt.Errorf("...: %w", err).

func typeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

func IsValidationError(err error) bool {
	return typeOf(err) == ValidationError
}

func IsNotFoundError(err error) bool {
	return typeOf(err) == NotFoundError
}

func IsCacheMissError(err error) bool {
	return typeOf(err) == CacheMissError
}

func IsProviderError(err error) bool {
	return typeOf(err) == ProviderError
}

func IsStorageError(err error) bool {
	return typeOf(err) == StorageError
}

func IsConfigurationError(err error) bool {
	return typeOf(err) == ConfigurationError
}

// StatusCode returns the upstream status carried by a provider error, or 0.
func StatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Type == ProviderError {
		return appErr.StatusCode
	}
	return 0
}
