// Package snapshot reads and writes the JSON user snapshot files, the only
// persistent state in the system.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lougail/github-users-api/internal/apperror"
	"github.com/lougail/github-users-api/internal/model"
)

type Store struct {
	Path string
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path must not be empty")
	}
	return &Store{Path: path}, nil
}

// Load reads and parses the whole snapshot. A missing or corrupt file is a
// validation failure, callers decide whether that is fatal.
func (s *Store) Load() ([]model.User, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, apperror.ValidationFailed(fmt.Sprintf("cannot read snapshot %s: %v", s.Path, err))
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, apperror.ValidationFailed(fmt.Sprintf("snapshot %s is not valid JSON: %v", s.Path, err))
	}
	return users, nil
}

// Save overwrites the snapshot with the given records, creating the parent
// directory when needed.
func (s *Store) Save(users []model.User) error {
	if users == nil {
		users = []model.User{}
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", s.Path, err)
	}
	return nil
}
