package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "message only",
			err:  NewAppError(ErrTypeValidation, "Name cannot be empty", nil),
			want: "Name cannot be empty",
		},
		{
			name: "message with cause",
			err:  NewAppError(ErrTypeNotFound, "missing file: a.json", fs.ErrNotExist),
			want: "missing file: a.json: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewNotFoundError("students.json", fs.ErrNotExist)

	assert.True(t, stderrors.Is(err, fs.ErrNotExist))

	var appErr *AppError
	require.True(t, stderrors.As(fmt.Errorf("load: %w", err), &appErr))
	assert.Equal(t, ErrTypeNotFound, appErr.Type)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantType    ErrorType
		wantMessage string
		wantContext map[string]interface{}
	}{
		{
			name:        "not found",
			err:         NewNotFoundError("students.json", nil),
			wantType:    ErrTypeNotFound,
			wantMessage: "missing file: students.json",
			wantContext: map[string]interface{}{ContextSource: "students.json"},
		},
		{
			name:        "decode",
			err:         NewDecodeError("rooms.json", "empty document"),
			wantType:    ErrTypeDecode,
			wantMessage: "invalid JSON in rooms.json: empty document",
			wantContext: map[string]interface{}{ContextSource: "rooms.json"},
		},
		{
			name:        "validation",
			err:         NewValidationError("room", "room required"),
			wantType:    ErrTypeValidation,
			wantMessage: "room required",
			wantContext: map[string]interface{}{ContextField: "room"},
		},
		{
			name:        "unsupported format",
			err:         NewUnsupportedFormatError("yaml"),
			wantType:    ErrTypeUnsupportedFormat,
			wantMessage: "unsupported format: yaml",
			wantContext: map[string]interface{}{ContextFormat: "yaml"},
		},
		{
			name:        "config",
			err:         NewConfigError("bad config", nil),
			wantType:    ErrTypeConfig,
			wantMessage: "bad config",
			wantContext: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantMessage, tt.err.Error())
			assert.Equal(t, tt.wantContext, tt.err.Context)
		})
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrTypeDecode, Message: "bad"}

	err.WithContext(ContextLine, 3).WithContext(ContextColumn, 7)

	assert.Equal(t, 3, err.Context[ContextLine])
	assert.Equal(t, 7, err.Context[ContextColumn])
}

func TestIsType(t *testing.T) {
	inner := NewValidationError("id", "ID and room must be non-negative")
	outer := NewAppError(ErrTypeValidation, "data validation failed: student record 0", inner)

	assert.True(t, IsType(outer, ErrTypeValidation))
	assert.True(t, IsType(fmt.Errorf("wrapped: %w", outer), ErrTypeValidation))
	assert.False(t, IsType(outer, ErrTypeNotFound))
	assert.False(t, IsType(stderrors.New("plain"), ErrTypeValidation))
	assert.False(t, IsType(nil, ErrTypeValidation))

	mixed := NewAppError(ErrTypeConfig, "outer", NewNotFoundError("x", nil))
	assert.True(t, IsType(mixed, ErrTypeNotFound))
}

func TestContextValue(t *testing.T) {
	inner := NewValidationError("name", "Name cannot be empty")
	outer := NewAppError(ErrTypeValidation, "data validation failed", inner).
		WithContext(ContextIndex, 2)

	field, ok := ContextValue(outer, ContextField)
	require.True(t, ok)
	assert.Equal(t, "name", field)

	index, ok := ContextValue(outer, ContextIndex)
	require.True(t, ok)
	assert.Equal(t, 2, index)

	_, ok = ContextValue(outer, ContextOffset)
	assert.False(t, ok)
}
