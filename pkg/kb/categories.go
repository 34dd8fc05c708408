package kb

import "github.com/opsdesk/kbase/pkg/types"

// Categories is the category repository. Deletion is guarded: a
// category referenced by any entry cannot be removed.
type Categories struct {
	db *Database
}

// GetAll returns the current persisted categories, in insertion order.
func (r *Categories) GetAll() []types.Category {
	var categories []types.Category
	if !r.db.read(keyCategories, &categories) {
		return seedCategories()
	}
	return categories
}

// Add validates, appends, persists, and returns the fresh collection.
// Any authenticated user may create a category; they are also created
// inline during entry creation.
func (r *Categories) Add(category types.Category) ([]types.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if category.ID == "" {
		category.ID = newID()
	}

	updated := append(r.GetAll(), category)
	if err := r.db.write(keyCategories, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Rename changes the name of the category with the given ID.
// Administrator only. Unknown IDs are a no-op.
func (r *Categories) Rename(actor *types.User, id, name string) ([]types.Category, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, types.ErrPermissionDenied
	}
	if name == "" {
		return nil, types.ErrInvalidName
	}

	current := r.GetAll()
	changed := false
	for i, c := range current {
		if sameID(c.ID, id) {
			current[i].Name = name
			changed = true
			break
		}
	}
	if !changed {
		return current, nil
	}

	if err := r.db.write(keyCategories, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes the category with the given ID. Administrator only.
// The delete is refused outright, with nothing persisted, while any
// entry still references the category; deletion never cascades.
func (r *Categories) Delete(actor *types.User, id string) ([]types.Category, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, types.ErrPermissionDenied
	}

	for _, e := range r.db.Entries().GetAll() {
		if sameID(e.CategoryID, id) {
			return nil, types.ErrCategoryInUse
		}
	}

	current := r.GetAll()
	updated := current[:0:0]
	for _, c := range current {
		if !sameID(c.ID, id) {
			updated = append(updated, c)
		}
	}
	if err := r.db.write(keyCategories, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// NameOf returns the display name for a category ID, or "Uncategorized"
// when the ID matches nothing.
func (r *Categories) NameOf(id string) string {
	for _, c := range r.GetAll() {
		if sameID(c.ID, id) {
			return c.Name
		}
	}
	return "Uncategorized"
}
