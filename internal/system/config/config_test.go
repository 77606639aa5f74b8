// Released under an MIT license. See LICENSE.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unset(t *testing.T, keys ...string) {
	t.Helper()

	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestDefaults(t *testing.T) {
	home := t.TempDir()

	t.Setenv("HOME", home)
	unset(t, "FL_HISTORY", "FL_PROMPT", "FL_HISTORY_LIMIT", "FL_DEBUG")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".fl_history"), c.History)
	assert.Equal(t, 1000, c.HistoryLimit)
	assert.Equal(t, "> ", c.Prompt)
	assert.False(t, c.Debug)
}

func TestOverrides(t *testing.T) {
	t.Setenv("FL_HISTORY", "/tmp/h")
	t.Setenv("FL_PROMPT", "fl> ")
	t.Setenv("FL_HISTORY_LIMIT", "10")
	t.Setenv("FL_DEBUG", "true")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/h", c.History)
	assert.Equal(t, 10, c.HistoryLimit)
	assert.Equal(t, "fl> ", c.Prompt)
	assert.True(t, c.Debug)
}

func TestInvalid(t *testing.T) {
	t.Setenv("FL_HISTORY_LIMIT", "lots")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
}
