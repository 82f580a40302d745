package handler

import (
	"errors"
	"fmt"
	"testing"

	"wordsaver/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		userErr  bool
		expected string
	}{
		{
			name:     "wrapped duplicate",
			err:      fmt.Errorf("%w: %q", domain.ErrDuplicateWord, "apple"),
			userErr:  true,
			expected: "This word is already in your list",
		},
		{
			name:     "missing entry",
			err:      domain.ErrEntryNotFound,
			userErr:  true,
			expected: "This word is not in your list",
		},
		{
			name:     "speech unavailable",
			err:      fmt.Errorf("espeak-ng: %w", domain.ErrUnsupportedCapability),
			userErr:  true,
			expected: "Speech is not available on this server",
		},
		{
			name:     "unexpected error",
			err:      errors.New("connection reset"),
			userErr:  false,
			expected: msgGenericError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.userErr, isUserError(tt.err))
			assert.Equal(t, tt.expected, userMessage(tt.err))
		})
	}
}
