package kb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opsdesk/kbase/internal/store"
	"github.com/opsdesk/kbase/pkg/types"
)

// newTestDB returns a seeded Database over an in-memory store.
func newTestDB(t *testing.T) *Database {
	t.Helper()
	db := New(store.NewMemory())
	require.NoError(t, db.Init())
	return db
}

// admin and reader return the seeded session identities.
func admin(t *testing.T, db *Database) *types.User {
	t.Helper()
	u, err := db.Auth().Authenticate("admin", "123")
	require.NoError(t, err)
	return u
}

func reader(t *testing.T, db *Database) *types.User {
	t.Helper()
	u, err := db.Auth().Authenticate("user", "123")
	require.NoError(t, err)
	return u
}
