package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/kbase/pkg/types"
)

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)

	t.Run("seeded admin credentials", func(t *testing.T) {
		u, err := db.Auth().Authenticate("admin", "123")
		require.NoError(t, err)
		assert.Equal(t, "admin-1", u.ID)
		assert.Equal(t, types.RoleAdmin, u.Role)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := db.Auth().Authenticate("admin", "wrong")
		assert.ErrorIs(t, err, types.ErrInvalidCredentials)
	})

	t.Run("unknown username rejected", func(t *testing.T) {
		_, err := db.Auth().Authenticate("nobody", "123")
		assert.ErrorIs(t, err, types.ErrInvalidCredentials)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		_, err := db.Auth().Authenticate("Admin", "123")
		assert.ErrorIs(t, err, types.ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)

	updated, err := db.Auth().Register(types.User{
		Name: "New Hire", Username: "hire", Password: "pw", Role: types.RoleUser,
	})
	require.NoError(t, err)
	assert.Len(t, updated, 3)

	// Registration goes through the same uniqueness rule as Add.
	_, err = db.Auth().Register(types.User{
		Name: "Again", Username: "hire", Password: "pw", Role: types.RoleUser,
	})
	assert.ErrorIs(t, err, types.ErrDuplicateUsername)

	u, err := db.Auth().Authenticate("hire", "pw")
	require.NoError(t, err)
	assert.Equal(t, "New Hire", u.Name)
}
