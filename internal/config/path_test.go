package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("tilde prefix", func(t *testing.T) {
		assert.Equal(t, filepath.Join(home, "data"), ExpandPath("~/data"))
	})

	t.Run("bare tilde", func(t *testing.T) {
		assert.Equal(t, home, ExpandPath("~"))
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv("POCKETBOOK_TEST_DIR", "/tmp/pb")
		assert.Equal(t, "/tmp/pb/data", ExpandPath("$POCKETBOOK_TEST_DIR/data"))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandPath(""))
	})
}
