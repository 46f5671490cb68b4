// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"io"
	"testing"

	"github.com/quietfmt/murmur/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "write_error",
			code:    errors.ErrWrite,
			message: "failed to write message",
			wantStr: "[WRITE] failed to write message",
		},
		{
			name:    "consumed_error",
			code:    errors.ErrConsumed,
			message: "builder already rendered",
			wantStr: "[CONSUMED] builder already rendered",
		},
		{
			name:    "config_error",
			code:    errors.ErrConfigValid,
			message: "unknown color",
			wantStr: "[CONFIG_INVALID] unknown color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	cause := io.ErrClosedPipe
	err := errors.Wrap(cause, errors.ErrWrite, "failed to write line")

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrWrite, err.Code)
	assert.Equal(t, "[WRITE] failed to write line: io: read/write on closed pipe", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrWrite, "no cause"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFlush, "no cause %d", 1))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := errors.Wrapf(io.EOF, errors.ErrWrite, "line %d", 2)

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrWrite, "anything")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrFlush, "anything")))
	// The original cause stays reachable through the wrap chain.
	assert.True(t, stderrors.Is(err, io.EOF))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrFlush, "failed to flush buffer")

	assert.True(t, errors.IsErrorCode(err, errors.ErrFlush))
	assert.False(t, errors.IsErrorCode(err, errors.ErrWrite))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrFlush))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrFlush))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConsumed, errors.GetErrorCode(errors.New(errors.ErrConsumed, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrWrite, "failed to write line").
		WithDetail("line", 3).
		WithDetail("sink", "stdout")

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, 3, details["line"])
	assert.Equal(t, "stdout", details["sink"])
}
