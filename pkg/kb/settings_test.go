package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/kbase/internal/store"
	"github.com/opsdesk/kbase/pkg/types"
)

func TestHeaderColor(t *testing.T) {
	t.Run("defaults when never written", func(t *testing.T) {
		db := New(store.NewMemory())
		assert.Equal(t, types.DefaultHeaderColor, db.Settings().HeaderColor())
	})

	t.Run("round trips", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.Settings().SetHeaderColor("#004481"))
		assert.Equal(t, "#004481", db.Settings().HeaderColor())
	})

	t.Run("empty set restores the default", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.Settings().SetHeaderColor(""))
		assert.Equal(t, types.DefaultHeaderColor, db.Settings().HeaderColor())
	})
}
