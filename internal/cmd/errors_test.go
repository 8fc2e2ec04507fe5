package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	rerrors "github.com/relkit/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: ExitSuccess},
		{name: "plain error", err: errors.New("boom"), expected: ExitGeneralError},
		{name: "configuration", err: rerrors.NewConfigurationError("bad record", "/p", "foo", ""), expected: ExitConfigurationError},
		{name: "io", err: rerrors.NewIOError("write failed", "/p", "foo", errors.New("disk full")), expected: ExitIOError},
		{name: "not found", err: rerrors.NewNotFoundError("missing", "/p", ""), expected: ExitNotFound},
		{name: "wrapped configuration", err: fmt.Errorf("component foo: %w", rerrors.ErrConfiguration), expected: ExitConfigurationError},
		{name: "exit error wins", err: NewExitError(errors.New("custom"), 42), expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Configuration Error", ExitCodeName(ExitConfigurationError))
	assert.Equal(t, "I/O Error", ExitCodeName(ExitIOError))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
