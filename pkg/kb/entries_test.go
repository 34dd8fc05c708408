package kb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/kbase/pkg/types"
)

func TestEntriesAdd(t *testing.T) {
	t.Run("prepends so the collection stays newest first", func(t *testing.T) {
		db := newTestDB(t)
		actor := admin(t, db)

		updated, err := db.Entries().Add(actor, types.Entry{
			Title:      "Password reset walkthrough",
			Content:    "<p>Use the self-service portal.</p>",
			CategoryID: "4",
		})
		require.NoError(t, err)
		require.Len(t, updated, 3)
		assert.Equal(t, "Password reset walkthrough", updated[0].Title)
		assert.NotEmpty(t, updated[0].ID)
		assert.False(t, updated[0].CreatedAt.IsZero())
		assert.Equal(t, actor.Name, updated[0].AuthorName)
	})

	t.Run("unknown category rejected, nothing persisted", func(t *testing.T) {
		db := newTestDB(t)
		actor := admin(t, db)
		before := db.Entries().GetAll()

		_, err := db.Entries().Add(actor, types.Entry{
			Title: "Orphan", Content: "<p>x</p>", CategoryID: "999",
		})
		assert.ErrorIs(t, err, types.ErrUnknownCategory)
		assert.Equal(t, before, db.Entries().GetAll())
	})

	t.Run("non-admin refused", func(t *testing.T) {
		db := newTestDB(t)

		_, err := db.Entries().Add(reader(t, db), types.Entry{
			Title: "T", Content: "<p>c</p>", CategoryID: "1",
		})
		assert.ErrorIs(t, err, types.ErrPermissionDenied)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		db := newTestDB(t)

		_, err := db.Entries().Add(admin(t, db), types.Entry{
			Content: "<p>c</p>", CategoryID: "1",
		})
		assert.ErrorIs(t, err, types.ErrInvalidTitle)
	})
}

func TestEntriesUpdate(t *testing.T) {
	t.Run("replaces matching entry, keeps CreatedAt", func(t *testing.T) {
		db := newTestDB(t)
		original := db.Entries().GetAll()[1] // seed entry 102

		updated, err := db.Entries().Update(types.Entry{
			ID:         original.ID,
			Title:      "Printer Setup (Floor 3, updated)",
			Content:    original.Content,
			CategoryID: original.CategoryID,
			AuthorName: original.AuthorName,
			CreatedAt:  time.Now(), // must be ignored
			Views:      original.Views,
		})
		require.NoError(t, err)
		assert.Equal(t, "Printer Setup (Floor 3, updated)", updated[1].Title)
		assert.True(t, updated[1].CreatedAt.Equal(original.CreatedAt))
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		db := newTestDB(t)
		before := db.Entries().GetAll()

		after, err := db.Entries().Update(types.Entry{ID: "ghost", Title: "X"})
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestEntriesTwoPhaseDelete(t *testing.T) {
	t.Run("staging does not mutate the store", func(t *testing.T) {
		db := newTestDB(t)
		before := db.Entries().GetAll()

		pending, err := db.Entries().StageDelete(admin(t, db), "101")
		require.NoError(t, err)
		assert.Equal(t, "101", pending.ID())
		assert.Equal(t, before, db.Entries().GetAll())
	})

	t.Run("cancel leaves the collection unchanged", func(t *testing.T) {
		db := newTestDB(t)
		before := db.Entries().GetAll()

		pending, err := db.Entries().StageDelete(admin(t, db), "101")
		require.NoError(t, err)
		pending.Cancel()
		assert.Equal(t, before, db.Entries().GetAll())

		// Confirm after cancel must not delete either.
		after, err := pending.Confirm()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("confirm removes the entry and persists", func(t *testing.T) {
		db := newTestDB(t)

		pending, err := db.Entries().StageDelete(admin(t, db), "101")
		require.NoError(t, err)

		updated, err := pending.Confirm()
		require.NoError(t, err)
		require.Len(t, updated, 1)
		assert.Equal(t, "102", updated[0].ID)
		assert.Equal(t, updated, db.Entries().GetAll())
	})

	t.Run("non-admin cannot stage", func(t *testing.T) {
		db := newTestDB(t)

		_, err := db.Entries().StageDelete(reader(t, db), "101")
		assert.ErrorIs(t, err, types.ErrPermissionDenied)
	})
}
