// Package kb implements the knowledge-base data service: per-entity
// repositories over a key-value backing store, the credential gate, and
// the search/filter pipeline that derives the visible entry subset.
//
// Every repository operation follows the same discipline: read the
// current persisted collection, mutate it, persist, and return the
// fresh decoded collection. There is no in-memory mirror, so callers
// never act on state staler than what is on durable storage. The cost
// is that writes spanning two collections are not atomic.
package kb

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opsdesk/kbase/pkg/types"
)

// Backing store keys. Each repository exclusively owns its key.
const (
	keyUsers       = "kbase_users_v1"
	keyCategories  = "kbase_categories_v1"
	keyEntries     = "kbase_entries_v1"
	keyHeaderColor = "kbase_header_color_v1"
)

// Database is the knowledge-base data service. It wraps a Store with
// the four entity repositories and the auth gate. Construct with New
// and inject wherever data access is needed; there is no package-level
// instance.
type Database struct {
	store types.Store
	log   zerolog.Logger
}

// Option configures a Database.
type Option func(*Database)

// WithLogger sets the side-channel logger used to report recovered
// storage failures. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Database) { d.log = log }
}

// New creates a Database on top of the given store.
func New(store types.Store, opts ...Option) *Database {
	d := &Database{
		store: store,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init seeds every key that has never been written. Keys that already
// hold data are left untouched, so restarts never clobber user data.
func (d *Database) Init() error {
	seeds := []struct {
		key   string
		value any
	}{
		{keyUsers, seedUsers()},
		{keyCategories, seedCategories()},
		{keyEntries, seedEntries()},
		{keyHeaderColor, types.DefaultHeaderColor},
	}
	for _, s := range seeds {
		if _, err := d.store.Read(s.key); err == nil {
			continue
		} else if !errors.Is(err, types.ErrKeyNotFound) {
			return fmt.Errorf("checking %s: %w", s.key, err)
		}
		if err := d.write(s.key, s.value); err != nil {
			return err
		}
	}
	return nil
}

// Users returns the user repository.
func (d *Database) Users() *Users { return &Users{db: d} }

// Categories returns the category repository.
func (d *Database) Categories() *Categories { return &Categories{db: d} }

// Entries returns the entry repository.
func (d *Database) Entries() *Entries { return &Entries{db: d} }

// Settings returns the settings repository.
func (d *Database) Settings() *Settings { return &Settings{db: d} }

// Auth returns the credential gate.
func (d *Database) Auth() *Gate { return &Gate{db: d} }

// read decodes the value under key into v. Returns false when the key
// is absent or the stored value cannot be decoded; decode failures are
// logged and swallowed so the caller can fall back to defaults.
func (d *Database) read(key string, v any) bool {
	data, err := d.store.Read(key)
	if err != nil {
		if !errors.Is(err, types.ErrKeyNotFound) {
			d.log.Error().Err(err).Str("key", key).Msg("read failed, using defaults")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		d.log.Error().Err(err).Str("key", key).Msg("decode failed, using defaults")
		return false
	}
	return true
}

// write encodes v and persists it under key. A successful return means
// the value is durable.
func (d *Database) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := d.store.Write(key, data); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

// newID generates a UUID v7 for entity IDs. IDs are opaque strings;
// nothing outside generation may interpret them.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// canonicalID normalizes an identifier for comparison. IDs may arrive
// from flags or decoded documents with stray whitespace; comparisons
// always go through this form.
func canonicalID(id string) string {
	return strings.TrimSpace(id)
}

// sameID reports whether two identifiers match in canonical form.
func sameID(a, b string) bool {
	return canonicalID(a) == canonicalID(b)
}
