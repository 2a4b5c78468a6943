// Package session owns the client-generated identifier that correlates
// chat turns. Created once per install, read many times afterwards.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const fileName = "session"

// Load returns the persisted session id from dir, creating and saving
// a fresh one on first use.
func Load(dir string) (string, error) {
	path := filepath.Join(dir, fileName)

	data, err := os.ReadFile(path)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if id != "" {
			return id, nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read session file: %w", err)
	}

	id := uuid.NewString()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("failed to persist session id: %w", err)
	}
	return id, nil
}
