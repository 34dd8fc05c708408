// Package store implements the key-value backing store for kbase.
// Two durable backends are provided: sqlite (single kv table) and file
// (one JSON document per key, written atomically). A memory store is
// available for tests and fakes.
package store

import (
	"os"

	"github.com/opsdesk/kbase/pkg/types"
)

// Open validates config, creates the data directory if needed, and
// returns the selected backend. The caller must Close the store.
func Open(config types.Config) (types.Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	switch config.Backend {
	case types.BackendSQLite:
		return openSQLite(dataDir)
	default:
		return openFile(dataDir)
	}
}
