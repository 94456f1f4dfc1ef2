package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atlanticdynamic/jmxbulk/internal/bulkedit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRules = `
version = "v1"

[[rule]]
target = "samplers"
pattern = "/v1/"
action = "delete"

[[rule]]
target = "headers"
pattern = "^X-Debug"
regex = true
`

func TestFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("valid rule file", func(t *testing.T) {
		t.Parallel()

		rs, err := FromBytes([]byte(validRules))
		require.NoError(t, err)
		require.Len(t, rs.Rules, 2)
		assert.Equal(t, TargetSamplers, rs.Rules[0].Target)
		assert.Equal(t, "delete", rs.Rules[0].Action)
		assert.Equal(t, TargetHeaders, rs.Rules[1].Target)
		assert.True(t, rs.Rules[1].Regex)
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		_, err := FromBytes(nil)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("malformed toml", func(t *testing.T) {
		t.Parallel()

		_, err := FromBytes([]byte("[[rule"))
		assert.ErrorIs(t, err, ErrFailedToLoadRules)
	})
}

func TestFromBytesValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		source      string
		expectedErr error
	}{
		{
			name:        "unsupported version",
			source:      "version = \"v2\"\n\n[[rule]]\ntarget = \"samplers\"\npattern = \"x\"\n",
			expectedErr: ErrUnsupportedVersion,
		},
		{
			name:        "no rules",
			source:      "version = \"v1\"\n",
			expectedErr: ErrNoRules,
		},
		{
			name:        "bad target",
			source:      "[[rule]]\ntarget = \"threads\"\npattern = \"x\"\n",
			expectedErr: ErrInvalidTarget,
		},
		{
			name:        "bad sampler action",
			source:      "[[rule]]\ntarget = \"samplers\"\npattern = \"x\"\naction = \"drop\"\n",
			expectedErr: bulkedit.ErrInvalidAction,
		},
		{
			name:        "header rule cannot disable",
			source:      "[[rule]]\ntarget = \"headers\"\npattern = \"x\"\naction = \"disable\"\n",
			expectedErr: ErrInvalidAction,
		},
		{
			name:        "empty pattern",
			source:      "[[rule]]\ntarget = \"samplers\"\npattern = \"\"\n",
			expectedErr: bulkedit.ErrEmptyPattern,
		},
		{
			name:        "bad regex",
			source:      "[[rule]]\ntarget = \"samplers\"\npattern = \"[\"\nregex = true\n",
			expectedErr: bulkedit.ErrInvalidPattern,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := FromBytes([]byte(tc.source))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestFromFilePath(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rules.toml")
		require.NoError(t, os.WriteFile(path, []byte(validRules), 0o644))

		rs, err := FromFilePath(path)
		require.NoError(t, err)
		assert.Len(t, rs.Rules, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := FromFilePath(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validRules), 0o644))

		_, err := FromFilePath(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported rule file extension")
	})
}
