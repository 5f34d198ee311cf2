//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrAmbiguous)
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "priority out of range",
		Location: "/work/src/xcompany/mariadb",
		Field:    "priority",
		Hint:     "Use a value between 1 and 98",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /work/src/xcompany/mariadb")
	assert.Contains(t, output, "Field: priority")
	assert.Contains(t, output, "priority out of range")
	assert.Contains(t, output, "Hint: Use a value between 1 and 98")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(
		"no service name given",
		"/work",
		"serviceName",
		"Pass the service name as argument",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "no service name given", detail.Message)
	assert.Equal(t, "/work", detail.Location)
	assert.Equal(t, "serviceName", detail.Field)
	assert.Equal(t, "Pass the service name as argument", detail.Hint)
}

func TestNewNotFoundAndAmbiguous(t *testing.T) {
	assert.True(t, errors.Is(NewNotFoundError("no image found", "/work/src", ""), ErrNotFound))
	assert.True(t, errors.Is(NewAmbiguousError("more than one image", "/work/src", ""), ErrAmbiguous))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "schema check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "schema check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"validation", NewValidationError("bad", "", "", ""), ExitValidationError},
		{"ambiguous", NewAmbiguousError("two images", "", ""), ExitValidationError},
		{"not found", NewNotFoundError("missing", "", ""), ExitNotFound},
		{"fs permission", fmt.Errorf("writing file: %w", fs.ErrPermission), ExitPermissionDenied},
		{"explicit exit error", NewExitError(errors.New("x"), 7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	exitErr := NewExitError(ErrNotFound, ExitNotFound)
	assert.True(t, errors.Is(exitErr, ErrNotFound))
	assert.Equal(t, "not found", exitErr.Error())
}
