package kb

import (
	"time"

	"github.com/opsdesk/kbase/pkg/types"
)

// Entries is the knowledge-entry repository. The collection is kept
// newest-first: Add prepends. Deletion is two-phase; see StageDelete.
type Entries struct {
	db *Database
}

// GetAll returns the current persisted entries, newest first.
func (r *Entries) GetAll() []types.Entry {
	var entries []types.Entry
	if !r.db.read(keyEntries, &entries) {
		return seedEntries()
	}
	return entries
}

// Add validates the entry, checks that its category exists, prepends,
// persists, and returns the fresh collection. Administrator only.
// CreatedAt is stamped here when unset and never changes afterwards.
func (r *Entries) Add(actor *types.User, entry types.Entry) ([]types.Entry, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, types.ErrPermissionDenied
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	known := false
	for _, c := range r.db.Categories().GetAll() {
		if sameID(c.ID, entry.CategoryID) {
			known = true
			break
		}
	}
	if !known {
		return nil, types.ErrUnknownCategory
	}

	if entry.ID == "" {
		entry.ID = newID()
	}
	if entry.AuthorName == "" {
		entry.AuthorName = actor.Name
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	updated := append([]types.Entry{entry}, r.GetAll()...)
	if err := r.db.write(keyEntries, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Update replaces the entry matching updated.ID. Unknown IDs are a
// no-op. CreatedAt is immutable: the stored timestamp always wins.
func (r *Entries) Update(updated types.Entry) ([]types.Entry, error) {
	current := r.GetAll()
	changed := false
	for i, e := range current {
		if sameID(e.ID, updated.ID) {
			updated.CreatedAt = e.CreatedAt
			current[i] = updated
			changed = true
			break
		}
	}
	if !changed {
		return current, nil
	}

	if err := r.db.write(keyEntries, current); err != nil {
		return nil, err
	}
	return current, nil
}

// StageDelete records the intent to delete an entry. Administrator
// only. Nothing touches the store until Confirm; Cancel abandons the
// intent with no effect.
func (r *Entries) StageDelete(actor *types.User, id string) (*PendingDelete, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, types.ErrPermissionDenied
	}
	return &PendingDelete{entries: r, id: id}, nil
}

// PendingDelete is a staged entry deletion. Exactly one of Confirm or
// Cancel should be called; both are safe to call more than once, and
// only the first Confirm has an effect.
type PendingDelete struct {
	entries *Entries
	id      string
	settled bool
}

// ID returns the identifier of the entry staged for deletion.
func (p *PendingDelete) ID() string { return p.id }

// Confirm executes the deletion: reads the current collection, removes
// the matching entry, persists, and returns the fresh collection.
func (p *PendingDelete) Confirm() ([]types.Entry, error) {
	if p.settled {
		return p.entries.GetAll(), nil
	}

	current := p.entries.GetAll()
	updated := current[:0:0]
	for _, e := range current {
		if !sameID(e.ID, p.id) {
			updated = append(updated, e)
		}
	}
	if err := p.entries.db.write(keyEntries, updated); err != nil {
		return nil, err
	}
	p.settled = true
	return updated, nil
}

// Cancel abandons the staged deletion. The stored collection is
// untouched.
func (p *PendingDelete) Cancel() {
	p.settled = true
}
