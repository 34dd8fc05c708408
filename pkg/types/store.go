package types

import "errors"

// Store is the durable key-value backing store. Values are JSON documents
// keyed by string. Writes persist synchronously before returning; there is
// no transactionality across keys.
type Store interface {
	// Read returns the value stored under key.
	// Returns ErrKeyNotFound if the key has never been written.
	Read(key string) ([]byte, error)

	// Write persists value under key, replacing any previous value.
	// The write is all-or-nothing at single-key granularity.
	Write(key string, value []byte) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Store errors.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrStoreClosed = errors.New("store is closed")
)
