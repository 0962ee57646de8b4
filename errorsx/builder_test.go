package errorsx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")

	require.NotNil(t, err)
	require.Equal(t, "test error", err.Message())
	require.Empty(t, err.Context())
	require.Nil(t, err.Unwrap())

	_, hasCode := err.StatusCode()
	require.False(t, hasCode)
	_, hasStatus := err.Status()
	require.False(t, hasStatus)
}

func TestNewf(t *testing.T) {
	err := Newf("invalid value: %d (expected %d)", 5, 10)

	require.NotNil(t, err)
	require.Equal(t, "invalid value: 5 (expected 10)", err.Message())
}

func TestNewBuilder_FullChain(t *testing.T) {
	cause := errors.New("file not found")
	err := NewBuilder("failed to process file").
		WithContext("processing user upload").
		WithSource(cause).
		WithStatusCode(500).
		WithStatus("Internal Server Error").
		Build()

	require.Equal(t, "failed to process file", err.Message())
	require.Equal(t, []string{"processing user upload"}, err.Context())
	require.Equal(t, cause, err.Unwrap())

	code, ok := err.StatusCode()
	require.True(t, ok)
	require.Equal(t, uint32(500), code)

	status, ok := err.Status()
	require.True(t, ok)
	require.Equal(t, "Internal Server Error", status)
}

func TestWithContext_Ordering(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
	}{
		{"no entries", nil},
		{"single entry", []string{"first"}},
		{"two entries", []string{"first", "second"}},
		{"many entries", []string{"a", "b", "c", "d", "e"}},
		{"duplicate entries", []string{"same", "same", "same"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder("test")
			for _, entry := range tt.entries {
				b.WithContext(entry)
			}
			err := b.Build()

			require.Len(t, err.Context(), len(tt.entries))
			for i, entry := range tt.entries {
				require.Equal(t, entry, err.Context()[i])
			}
		})
	}
}

func TestWithStatusCode_LastWriteWins(t *testing.T) {
	err := NewBuilder("test").
		WithStatusCode(404).
		WithStatusCode(500).
		Build()

	code, ok := err.StatusCode()
	require.True(t, ok)
	require.Equal(t, uint32(500), code)
}

func TestWithStatus_LastWriteWins(t *testing.T) {
	err := NewBuilder("test").
		WithStatus("Not Found").
		WithStatus("Internal Server Error").
		Build()

	status, ok := err.Status()
	require.True(t, ok)
	require.Equal(t, "Internal Server Error", status)
}

func TestWithSource_LastWriteWins(t *testing.T) {
	first := errors.New("first cause")
	second := errors.New("second cause")

	err := NewBuilder("test").
		WithSource(first).
		WithSource(second).
		Build()

	require.Equal(t, second, err.Unwrap())
	require.NotErrorIs(t, err, first)
}

func TestWithStatusCode_NoValidation(t *testing.T) {
	// Advisory values are stored verbatim, including ones with no meaning
	// in any transport.
	tests := []struct {
		name string
		code uint32
	}{
		{"zero", 0},
		{"standard http", 503},
		{"out of http range", 99999},
		{"max uint32", ^uint32(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewBuilder("test").WithStatusCode(tt.code).Build()
			code, ok := err.StatusCode()
			require.True(t, ok)
			require.Equal(t, tt.code, code)
		})
	}
}

func TestWithSource_RenderedTextPreserved(t *testing.T) {
	cause := errors.New("file not found")
	err := NewBuilder("higher level error").WithSource(cause).Build()

	require.NotNil(t, err.Unwrap())
	require.Equal(t, "file not found", err.Unwrap().Error())
}

func TestBuild_CapturesBacktrace(t *testing.T) {
	err := New("test")

	require.NotEmpty(t, err.Backtrace())
	require.Contains(t, err.Backtrace().String(), "TestBuild_CapturesBacktrace")
}
