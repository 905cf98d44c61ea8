package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitKeyValue(t *testing.T) {
	t.Run("splits on first equals", func(t *testing.T) {
		key, value, err := splitKeyValue("category=Food")
		require.NoError(t, err)
		assert.Equal(t, "category", key)
		assert.Equal(t, "Food", value)
	})

	t.Run("value may contain equals", func(t *testing.T) {
		key, value, err := splitKeyValue("description=a=b")
		require.NoError(t, err)
		assert.Equal(t, "description", key)
		assert.Equal(t, "a=b", value)
	})

	t.Run("empty value is allowed", func(t *testing.T) {
		key, value, err := splitKeyValue("source=")
		require.NoError(t, err)
		assert.Equal(t, "source", key)
		assert.Empty(t, value)
	})

	t.Run("missing equals fails", func(t *testing.T) {
		_, _, err := splitKeyValue("category")
		assert.Error(t, err)
	})

	t.Run("empty key fails", func(t *testing.T) {
		_, _, err := splitKeyValue("=Food")
		assert.Error(t, err)
	})
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"jan.qfx", "feb.qfx", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	t.Run("expands patterns", func(t *testing.T) {
		files, err := expandGlobs([]string{filepath.Join(dir, "*.qfx")})
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("passes through literal paths", func(t *testing.T) {
		missing := filepath.Join(dir, "missing.ofx")
		files, err := expandGlobs([]string{missing})
		require.NoError(t, err)
		assert.Equal(t, []string{missing}, files)
	})

	t.Run("rejects malformed patterns", func(t *testing.T) {
		_, err := expandGlobs([]string{"[bad"})
		assert.Error(t, err)
	})
}
