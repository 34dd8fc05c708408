package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/opsdesk/kbase/pkg/types"
)

// File stores each key as <key>.json inside the data directory. Writes
// use the temp-file, fsync, rename pattern so a value on disk is always
// either the previous document or the new one, never a torn write.
type File struct {
	mu      sync.Mutex
	dataDir string
	closed  bool
}

func openFile(dataDir string) (*File, error) {
	return &File{dataDir: dataDir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dataDir, key+".json")
}

// Read returns the document stored under key.
func (f *File) Read(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, types.ErrStoreClosed
	}

	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, types.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

// Write atomically replaces the document stored under key.
func (f *File) Write(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return types.ErrStoreClosed
	}

	tmp, err := os.CreateTemp(f.dataDir, ".kv-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing value: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Close marks the store closed. Idempotent.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
