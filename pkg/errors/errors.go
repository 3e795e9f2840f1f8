package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Chart errors
	ErrChartKind    ErrorCode = "CHART_KIND"
	ErrDatasetEmpty ErrorCode = "DATASET_EMPTY"
	ErrDatasetValue ErrorCode = "DATASET_VALUE"

	// Document errors
	ErrDocumentParse ErrorCode = "DOCUMENT_PARSE"
	ErrDocumentRoot  ErrorCode = "DOCUMENT_ROOT"

	// Output errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// SvgletError represents a structured error with code and details
type SvgletError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SvgletError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SvgletError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SvgletError) Is(target error) bool {
	var targetErr *SvgletError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SvgletError with the given code and message
func New(code ErrorCode, message string) *SvgletError {
	return &SvgletError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SvgletError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SvgletError {
	return &SvgletError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SvgletError
func Wrap(err error, code ErrorCode, message string) *SvgletError {
	if err == nil {
		return nil
	}
	return &SvgletError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SvgletError {
	if err == nil {
		return nil
	}
	return &SvgletError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SvgletError) WithDetail(key string, value interface{}) *SvgletError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var svgletErr *SvgletError
	if errors.As(err, &svgletErr) {
		return svgletErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SvgletError
func GetErrorCode(err error) ErrorCode {
	var svgletErr *SvgletError
	if errors.As(err, &svgletErr) {
		return svgletErr.Code
	}
	return ErrUnknown
}
