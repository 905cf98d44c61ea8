package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"pocketbook/internal/common"
	"pocketbook/internal/config"
	"pocketbook/internal/ledger"
	"pocketbook/internal/service"
	"pocketbook/internal/storage"
)

// initLedger initializes the configured storage backend and wraps it
// in a Ledger. The caller must Close the returned store.
func initLedger() (*ledger.Ledger, service.Store, error) {
	store, err := initStore()
	if err != nil {
		return nil, nil, common.NewUserError("failed to open data store", err)
	}
	return ledger.New(store), store, nil
}

// initStore selects the storage backend from configuration: csv (the
// default, one file per entity) or sqlite.
func initStore() (service.Store, error) {
	backend := viper.GetString("storage.backend")
	if backend == "" {
		backend = "csv"
	}

	path := viper.GetString("storage.path")

	switch backend {
	case "csv":
		if path == "" {
			path = config.DefaultDataDir
		}
		return storage.NewCSVStore(config.ExpandPath(path))
	case "sqlite":
		if path == "" {
			path = config.DefaultDBPath
		}
		return storage.NewSQLiteStore(config.ExpandPath(path))
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want csv or sqlite)", backend)
	}
}

// splitKeyValue splits a "key=value" query flag. The value may itself
// contain '='.
func splitKeyValue(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	return key, value, nil
}
