// Full knowledge-base lifecycle over each durable backend: seed, login,
// author an entry, search it, then walk the two-phase delete.
package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/kbase/internal/store"
	"github.com/opsdesk/kbase/pkg/kb"
	"github.com/opsdesk/kbase/pkg/types"
)

// openDB opens a seeded database on the given backend in an isolated
// temp directory. Returns the database and a reopen function that
// simulates a process restart against the same directory.
func openDB(t *testing.T, backend string) (*kb.Database, func() *kb.Database) {
	t.Helper()
	dir := t.TempDir()

	open := func() *kb.Database {
		s, err := store.Open(types.Config{Backend: backend, DataDir: dir})
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		db := kb.New(s)
		require.NoError(t, db.Init())
		return db
	}
	return open(), open
}

func TestLifecycle(t *testing.T) {
	for _, backend := range []string{types.BackendFile, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			db, reopen := openDB(t, backend)

			// Seeded credentials work out of the box.
			admin, err := db.Auth().Authenticate("admin", "123")
			require.NoError(t, err)
			require.True(t, admin.IsAdmin())

			_, err = db.Auth().Authenticate("admin", "wrong")
			require.ErrorIs(t, err, types.ErrInvalidCredentials)

			// Author a fresh entry in a fresh category.
			cats, err := db.Categories().Add(types.Category{Name: "Email & Messaging"})
			require.NoError(t, err)
			catID := cats[len(cats)-1].ID

			entries, err := db.Entries().Add(admin, types.Entry{
				Title:      "Outlook keeps asking for a password",
				Content:    "<p>Clear the credential cache and sign in again.</p>",
				CategoryID: catID,
			})
			require.NoError(t, err)
			entryID := entries[0].ID
			assert.Equal(t, admin.Name, entries[0].AuthorName)

			// Search finds it through the tag-stripped content.
			visible := kb.Apply(db.Entries().GetAll(), kb.Filter{Query: "credential cache"}, time.Now())
			require.Len(t, visible, 1)
			assert.Equal(t, entryID, visible[0].ID)

			// The referenced category is protected until the entry goes.
			_, err = db.Categories().Delete(admin, catID)
			require.ErrorIs(t, err, types.ErrCategoryInUse)

			// Everything above survives a restart.
			db2 := reopen()
			all := db2.Entries().GetAll()
			require.Len(t, all, 3)
			assert.Equal(t, entryID, all[0].ID)

			// Cancelled deletion changes nothing; confirmed deletion sticks.
			pending, err := db2.Entries().StageDelete(admin, entryID)
			require.NoError(t, err)
			pending.Cancel()
			require.Len(t, db2.Entries().GetAll(), 3)

			pending, err = db2.Entries().StageDelete(admin, entryID)
			require.NoError(t, err)
			remaining, err := pending.Confirm()
			require.NoError(t, err)
			require.Len(t, remaining, 2)

			// Now the category can go too.
			_, err = db2.Categories().Delete(admin, catID)
			require.NoError(t, err)

			db3 := reopen()
			require.Len(t, db3.Entries().GetAll(), 2)
			for _, c := range db3.Categories().GetAll() {
				assert.NotEqual(t, catID, c.ID)
			}
		})
	}
}

func TestAccountsAcrossRestart(t *testing.T) {
	db, reopen := openDB(t, types.BackendFile)

	users, err := db.Auth().Register(types.User{
		Name:     "Maria Silva",
		Username: "msilva",
		Password: "s3cret",
		Role:     types.RoleUser,
	})
	require.NoError(t, err)
	require.Len(t, users, 3)

	_, err = db.Auth().Register(types.User{
		Name:     "Impostor",
		Username: "msilva",
		Password: "x",
		Role:     types.RoleUser,
	})
	require.ErrorIs(t, err, types.ErrDuplicateUsername)

	db2 := reopen()
	user, err := db2.Auth().Authenticate("msilva", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", user.Name)
	assert.False(t, user.IsAdmin())
}
