package registry

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/keetool/kee/models"
	"github.com/spf13/afero"
)

// Store persists the kee registry as indented JSON under ~/.aws/kee.json.
type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, homeDir string) *Store {
	return &Store{
		fs:   fs,
		path: filepath.Join(homeDir, ".aws", "kee.json"),
	}
}

// Path returns the registry file location, for user-facing messages.
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry. A missing file, an unreadable file, or malformed
// JSON all yield the empty default state; corrupt state is dropped rather
// than surfaced.
func (s *Store) Load() models.RegistryState {
	state := models.NewRegistryState()

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return state
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return models.NewRegistryState()
	}
	if state.Accounts.Len() == 0 {
		state.Accounts = models.NewAccounts()
	}
	return state
}

// Save writes the full state, replacing whatever was on disk. Write errors
// propagate to the caller.
func (s *Store) Save(state models.RegistryState) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}
