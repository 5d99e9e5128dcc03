package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "direct error",
			err:      New(CodePrecondition, "missing token"),
			expected: CodePrecondition,
		},
		{
			name:     "wrapped cause keeps outer code",
			err:      Wrap(CodeTransport, "upload failed", errors.New("connection refused")),
			expected: CodeTransport,
		},
		{
			name:     "fmt-wrapped error still resolves",
			err:      fmt.Errorf("submit: %w", New(CodeDecode, "bad payload")),
			expected: CodeDecode,
		},
		{
			name:     "plain error defaults to internal",
			err:      errors.New("boom"),
			expected: CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeOf(tt.err))
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("timeout")
	err := Wrap(CodeTransport, "document submit failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "document submit failed")
	assert.Contains(t, err.Error(), "timeout")
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(CodeInvalidInput, "unsupported content type %q", "image/gif")

	assert.True(t, errors.Is(err, &Error{Code: CodeInvalidInput}))
	assert.False(t, errors.Is(err, &Error{Code: CodeTransport}))
}
