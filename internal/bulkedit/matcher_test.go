package bulkedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatcher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pattern     string
		opts        MatchOptions
		expectedErr error
	}{
		{
			name:    "simple pattern",
			pattern: "api/users",
		},
		{
			name:        "empty pattern",
			pattern:     "",
			expectedErr: ErrEmptyPattern,
		},
		{
			name:        "whitespace pattern",
			pattern:     "   ",
			expectedErr: ErrEmptyPattern,
		},
		{
			name:    "valid regex",
			pattern: `.*/api/.*`,
			opts:    MatchOptions{Regex: true},
		},
		{
			name:        "invalid regex",
			pattern:     `[unclosed`,
			opts:        MatchOptions{Regex: true},
			expectedErr: ErrInvalidPattern,
		},
		{
			name:    "invalid regex ignored in substring mode",
			pattern: `[unclosed`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewMatcher(tc.pattern, tc.opts)
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, m)
		})
	}
}

func TestMatcherMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		opts     MatchOptions
		text     string
		expected bool
	}{
		{
			name:     "substring hit",
			pattern:  "login",
			text:     "POST https://example.com/login",
			expected: true,
		},
		{
			name:     "substring miss",
			pattern:  "logout",
			text:     "POST https://example.com/login",
			expected: false,
		},
		{
			name:     "case insensitive by default",
			pattern:  "LOGIN",
			text:     "https://example.com/login",
			expected: true,
		},
		{
			name:     "case sensitive miss",
			pattern:  "LOGIN",
			opts:     MatchOptions{CaseSensitive: true},
			text:     "https://example.com/login",
			expected: false,
		},
		{
			name:     "case sensitive hit",
			pattern:  "login",
			opts:     MatchOptions{CaseSensitive: true},
			text:     "https://example.com/login",
			expected: true,
		},
		{
			name:     "regex finds anywhere",
			pattern:  `/api/v\d+`,
			opts:     MatchOptions{Regex: true},
			text:     "https://example.com/api/v2/users",
			expected: true,
		},
		{
			name:     "regex anchored miss",
			pattern:  `^https://other`,
			opts:     MatchOptions{Regex: true},
			text:     "https://example.com/api",
			expected: false,
		},
		{
			name:     "regex case insensitive by default",
			pattern:  `API`,
			opts:     MatchOptions{Regex: true},
			text:     "https://example.com/api",
			expected: true,
		},
		{
			name:     "regex case sensitive",
			pattern:  `API`,
			opts:     MatchOptions{Regex: true, CaseSensitive: true},
			text:     "https://example.com/api",
			expected: false,
		},
		{
			name:     "invert flips a hit",
			pattern:  "login",
			opts:     MatchOptions{Invert: true},
			text:     "https://example.com/login",
			expected: false,
		},
		{
			name:     "invert flips a miss",
			pattern:  "logout",
			opts:     MatchOptions{Invert: true},
			text:     "https://example.com/login",
			expected: true,
		},
		{
			name:     "empty candidate never matches",
			pattern:  "login",
			text:     "",
			expected: false,
		},
		{
			name:     "empty candidate matches when inverted",
			pattern:  "login",
			opts:     MatchOptions{Invert: true},
			text:     "",
			expected: true,
		},
		{
			name:     "pattern is trimmed",
			pattern:  "  login  ",
			text:     "https://example.com/login",
			expected: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewMatcher(tc.pattern, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.Matches(tc.text))
		})
	}
}
