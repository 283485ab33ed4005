// Package sessionfile persists the authentication session as a single JSON
// file under the XDG state directory.
package sessionfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fairai-labs/fairctl/internal/domain"
	"github.com/fairai-labs/fairctl/internal/util"
)

const sessionFileName = "session.json"

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a store rooted at the XDG state directory.
func NewStore() (*Store, error) {
	dir, err := util.StateDir()
	if err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, sessionFileName)}, nil
}

// NewStoreAt creates a store over an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored session, or (nil, nil) when none exists.
func (s *Store) Load() (*domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("session file is corrupt: %w", err)
	}
	return &session, nil
}

// Save writes the session. The file is owner-readable only since it holds
// the bearer token.
func (s *Store) Save(session *domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
