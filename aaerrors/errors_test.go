package aaerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "empty error",
			err:      &ParseError{},
			expected: "parse error",
		},
		{
			name:     "with path",
			err:      &ParseError{Path: "asyncapi.yaml"},
			expected: "parse error in asyncapi.yaml",
		},
		{
			name:     "with path and line",
			err:      &ParseError{Path: "asyncapi.yaml", Line: 12},
			expected: "parse error in asyncapi.yaml at line 12",
		},
		{
			name:     "with full location and message",
			err:      &ParseError{Path: "asyncapi.yaml", Line: 12, Column: 3, Message: "bad indentation"},
			expected: "parse error in asyncapi.yaml at line 12, column 3: bad indentation",
		},
		{
			name:     "with cause",
			err:      &ParseError{Message: "unreadable", Cause: errors.New("EOF")},
			expected: "parse error: unreadable: EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *DecodeError
		expected string
	}{
		{
			name:     "missing field",
			err:      NewMissingField("servers.production", "protocol"),
			expected: "missing required field: servers.production.protocol",
		},
		{
			name:     "unknown field",
			err:      NewUnknownField("servers.production.bindings.ws", "unexpectedField"),
			expected: "unknown field: servers.production.bindings.ws.unexpectedField",
		},
		{
			name:     "type mismatch",
			err:      NewTypeMismatch("securitySchemes.main.apiKey", "in", `"user" or "password"`),
			expected: `type mismatch: securitySchemes.main.apiKey.in (expected "user" or "password")`,
		},
		{
			name:     "field only",
			err:      &DecodeError{Field: "host", IsMissingField: true},
			expected: "missing required field: host",
		},
		{
			name:     "generic decode error with cause",
			err:      &DecodeError{Path: "servers.production", Message: "invalid object", Cause: errors.New("unexpected end of JSON input")},
			expected: "decode error: servers.production: invalid object: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDecodeErrorIs(t *testing.T) {
	missing := NewMissingField("server", "host")
	unknown := NewUnknownField("bindings.ws", "retry")
	mismatch := NewTypeMismatch("server", "tags", "array")

	assert.ErrorIs(t, missing, ErrDecode)
	assert.ErrorIs(t, missing, ErrMissingField)
	assert.NotErrorIs(t, missing, ErrUnknownField)
	assert.NotErrorIs(t, missing, ErrTypeMismatch)

	assert.ErrorIs(t, unknown, ErrDecode)
	assert.ErrorIs(t, unknown, ErrUnknownField)
	assert.NotErrorIs(t, unknown, ErrMissingField)

	assert.ErrorIs(t, mismatch, ErrDecode)
	assert.ErrorIs(t, mismatch, ErrTypeMismatch)
	assert.NotErrorIs(t, mismatch, ErrMissingField)
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"parse error", &ParseError{Message: "x"}, ErrParse},
		{"decode error", &DecodeError{Field: "x"}, ErrDecode},
		{"validation error", &ValidationError{Message: "x"}, ErrValidation},
		{"config error", &ConfigError{Option: "x"}, ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)

			// Wrapped errors must still match
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestUnwrapChaining(t *testing.T) {
	cause := errors.New("root cause")
	err := &ParseError{Message: "failed", Cause: cause}
	assert.ErrorIs(t, err, cause)

	var parseErr *ParseError
	wrapped := fmt.Errorf("loading document: %w", err)
	require.ErrorAs(t, wrapped, &parseErr)
	assert.Equal(t, "failed", parseErr.Message)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{
		Path:    "servers.production",
		Field:   "host",
		Message: "placeholder {region} has no matching variable",
	}
	assert.Equal(t, "validation error at servers.production.host: placeholder {region} has no matching variable", err.Error())
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{
		Option:  "WithFilePath",
		Value:   "",
		Message: "file path cannot be empty",
	}
	assert.Equal(t, "configuration error for WithFilePath: file path cannot be empty", err.Error())
}
