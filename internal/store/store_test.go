package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/kbase/pkg/types"
)

// backends returns every store implementation under test, each against a
// fresh temp directory.
func backends(t *testing.T) map[string]types.Store {
	t.Helper()

	sqliteStore, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	fileStore, err := Open(types.Config{Backend: types.BackendFile, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { fileStore.Close() })

	return map[string]types.Store{
		"sqlite": sqliteStore,
		"file":   fileStore,
		"memory": NewMemory(),
	}
}

func TestStoreReadWrite(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Read("users")
			assert.ErrorIs(t, err, types.ErrKeyNotFound)

			require.NoError(t, s.Write("users", []byte(`[{"id":"1"}]`)))

			got, err := s.Read("users")
			require.NoError(t, err)
			assert.Equal(t, []byte(`[{"id":"1"}]`), got)
		})
	}
}

func TestStoreWriteReplaces(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write("color", []byte(`"#EC0000"`)))
			require.NoError(t, s.Write("color", []byte(`"#004481"`)))

			got, err := s.Read("color")
			require.NoError(t, err)
			assert.Equal(t, []byte(`"#004481"`), got)
		})
	}
}

func TestStoreKeysIndependent(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write("a", []byte("1")))
			require.NoError(t, s.Write("b", []byte("2")))

			a, err := s.Read("a")
			require.NoError(t, err)
			b, err := s.Read("b")
			require.NoError(t, err)
			assert.Equal(t, []byte("1"), a)
			assert.Equal(t, []byte("2"), b)
		})
	}
}

func TestStoreClosedRejectsOperations(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Close())
			require.NoError(t, s.Close()) // idempotent

			_, err := s.Read("k")
			assert.ErrorIs(t, err, types.ErrStoreClosed)
			assert.ErrorIs(t, s.Write("k", []byte("v")), types.ErrStoreClosed)
		})
	}
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	_, err := Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	_, err = Open(types.Config{Backend: "bolt"})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(types.Config{Backend: types.BackendFile, DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Write("entries", []byte(`[]`)))
	require.NoError(t, s.Close())

	s, err = Open(types.Config{Backend: types.BackendFile, DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Read("entries")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(types.Config{Backend: types.BackendFile, DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write("users", []byte(`[]`)))

	matches, err := filepath.Glob(filepath.Join(dir, ".kv-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Write("categories", []byte(`[{"id":"1","name":"Hardware"}]`)))
	require.NoError(t, s.Close())

	s, err = Open(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Read("categories")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1","name":"Hardware"}]`), got)
}
