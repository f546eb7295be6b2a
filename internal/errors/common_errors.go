package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeNotFound          ErrorType = "NOT_FOUND"
	ErrTypeDecode            ErrorType = "DECODE"
	ErrTypeValidation        ErrorType = "VALIDATION"
	ErrTypeUnsupportedFormat ErrorType = "UNSUPPORTED_FORMAT"
	ErrTypeConfig            ErrorType = "CONFIG"
)

// Context keys attached by the constructors below.
const (
	ContextSource = "source"
	ContextField  = "field"
	ContextIndex  = "index"
	ContextOffset = "offset"
	ContextLine   = "line"
	ContextColumn = "column"
	ContextFormat = "format"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError reports a source that does not exist or cannot be read.
func NewNotFoundError(source string, cause error) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("missing file: %s", source), cause).
		WithContext(ContextSource, source)
}

// NewDecodeError reports a source whose content is not a JSON array of
// objects. Position is attached by the caller when known.
func NewDecodeError(source, reason string) *AppError {
	return NewAppError(ErrTypeDecode, fmt.Sprintf("invalid JSON in %s: %s", source, reason), nil).
		WithContext(ContextSource, source)
}

// NewValidationError reports a single record field that violates its rules.
func NewValidationError(field, message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil).
		WithContext(ContextField, field)
}

// NewUnsupportedFormatError reports an output format outside the known set.
func NewUnsupportedFormatError(format string) *AppError {
	return NewAppError(ErrTypeUnsupportedFormat, fmt.Sprintf("unsupported format: %s", format), nil).
		WithContext(ContextFormat, format)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsType reports whether any AppError in err's chain has the given type.
func IsType(err error, errType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errType {
			return true
		}
		err = appErr.Cause
	}
	return false
}

// ContextValue returns the first value stored under key by any AppError in
// err's chain.
func ContextValue(err error, key string) (interface{}, bool) {
	for err != nil {
		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			return nil, false
		}
		if v, ok := appErr.Context[key]; ok {
			return v, true
		}
		err = appErr.Cause
	}
	return nil, false
}
