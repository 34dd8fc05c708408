package kb

import "github.com/opsdesk/kbase/pkg/types"

// Users is the user repository. Usernames are unique, case-sensitive.
type Users struct {
	db *Database
}

// GetAll returns the current persisted users, in insertion order.
// Falls back to seed data when the store holds nothing usable.
func (r *Users) GetAll() []types.User {
	var users []types.User
	if !r.db.read(keyUsers, &users) {
		return seedUsers()
	}
	return users
}

// Add validates the candidate, rejects duplicate usernames, appends,
// persists, and returns the fresh collection. On any error the stored
// collection is unchanged.
func (r *Users) Add(user types.User) ([]types.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	current := r.GetAll()
	for _, u := range current {
		if u.Username == user.Username {
			return nil, types.ErrDuplicateUsername
		}
	}

	if user.ID == "" {
		user.ID = newID()
	}
	updated := append(current, user)
	if err := r.db.write(keyUsers, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Update replaces the user matching updated.ID. An actor may edit
// themselves; editing anyone else requires the administrator role. An
// empty password means "keep the existing one". Unknown IDs are a
// no-op: the collection is returned unchanged.
func (r *Users) Update(actor *types.User, updated types.User) ([]types.User, error) {
	if actor == nil || (!actor.IsAdmin() && !sameID(actor.ID, updated.ID)) {
		return nil, types.ErrPermissionDenied
	}

	current := r.GetAll()
	changed := false
	for i, u := range current {
		if !sameID(u.ID, updated.ID) {
			continue
		}
		if updated.Password == "" {
			updated.Password = u.Password
		}
		// Username changes still honor uniqueness against everyone else.
		for j, other := range current {
			if j != i && other.Username == updated.Username {
				return nil, types.ErrDuplicateUsername
			}
		}
		if err := updated.Validate(); err != nil {
			return nil, err
		}
		current[i] = updated
		changed = true
		break
	}
	if !changed {
		return current, nil
	}

	if err := r.db.write(keyUsers, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes the user with the given ID. Administrator only, and
// an actor may never delete their own active session's identity.
func (r *Users) Delete(actor *types.User, id string) ([]types.User, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, types.ErrPermissionDenied
	}
	if sameID(actor.ID, id) {
		return nil, types.ErrSelfDelete
	}

	current := r.GetAll()
	updated := current[:0:0]
	for _, u := range current {
		if !sameID(u.ID, id) {
			updated = append(updated, u)
		}
	}
	if err := r.db.write(keyUsers, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
