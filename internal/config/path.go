// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDataDir is where the CSV data files live unless storage.path
// is configured.
const DefaultDataDir = "$HOME/.local/share/pocketbook"

// DefaultDBPath is the SQLite database location for the sqlite backend
// unless storage.path is configured.
const DefaultDBPath = "$HOME/.local/share/pocketbook/pocketbook.db"

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
