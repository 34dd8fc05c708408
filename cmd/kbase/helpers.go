// Shared helpers for kbase CLI commands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/opsdesk/kbase/internal/ai"
	"github.com/opsdesk/kbase/internal/store"
	"github.com/opsdesk/kbase/pkg/kb"
	"github.com/opsdesk/kbase/pkg/types"
)

// sideLogger reports recovered storage and AI failures to stderr
// without polluting command output.
func sideLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// openDatabase resolves directories, opens the configured store, and
// returns a seeded Database. The caller must invoke the returned
// closer.
func openDatabase() (*kb.Database, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	s, err := store.Open(types.Config{Backend: backend, DataDir: dataDir})
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	db := kb.New(s, kb.WithLogger(sideLogger()))
	if err := db.Init(); err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("seed store: %w", err)
	}
	return db, func() { s.Close() }, nil
}

// currentUser loads the active session and resolves it against the user
// repository. Returns an error when nobody is logged in.
func currentUser(db *kb.Database) (*types.User, error) {
	id, err := loadSession()
	if err != nil {
		return nil, err
	}
	for _, u := range db.Users().GetAll() {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	_ = clearSession()
	return nil, fmt.Errorf("session user no longer exists, please login again")
}

// requireAdmin returns the active session user, failing unless they
// hold the administrator role.
func requireAdmin(db *kb.Database) (*types.User, error) {
	user, err := currentUser(db)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, types.ErrPermissionDenied
	}
	return user, nil
}

// newAssistant builds the AI helper. The key comes from the
// GEMINI_API_KEY environment variable; a .env file in the working
// directory is honored if present.
func newAssistant(ctx context.Context) *ai.Assistant {
	_ = godotenv.Load()
	return ai.New(ctx, os.Getenv("GEMINI_API_KEY"), sideLogger())
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
