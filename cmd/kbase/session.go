// Session persistence for the kbase CLI. The session file holds only
// the logged-in user's ID; it is a convenience pointer, not a security
// token. This boundary is not hardened.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const sessionFileName = "session"

func sessionPath() (string, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, sessionFileName), nil
}

// saveSession records the user ID of the active session.
func saveSession(userID string) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(userID+"\n"), 0o600)
}

// loadSession returns the user ID of the active session.
func loadSession() (string, error) {
	path, err := sessionPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("not logged in, run: kbase login")
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", fmt.Errorf("not logged in, run: kbase login")
	}
	return id, nil
}

// clearSession removes the session file. Missing file is not an error.
func clearSession() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
