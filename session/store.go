// Package session owns the client-side authentication lifecycle: the
// persisted credential store, the process-wide auth state machine and the
// guard that gates administrative views.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

// record is the on-disk session shape: the opaque bearer token plus the
// cached profile as a JSON blob. Nothing else is ever persisted.
type record struct {
	Token   string `yaml:"token"`
	Profile string `yaml:"profile,omitempty"`
}

// Store is a mechanical persistence facade for the session credentials.
// It performs no validation, no network calls and no expiry logic.
type Store struct {
	mu   sync.Mutex
	path string
}

// DefaultPath returns the standard location of the session file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "adopctl", "session.yaml"), nil
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// load reads the current record from disk. A missing or unreadable file
// means no session.
func (s *Store) load() record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return record{}
	}
	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return record{}
	}
	return rec
}

// Token returns the persisted bearer token, or "" when absent.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Token
}

// Profile returns the cached profile, or nil when absent. The cached
// profile is advisory only and must never be trusted without a valid
// token.
func (s *Store) Profile() *adopcion.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.load()
	if rec.Profile == "" {
		return nil
	}
	var admin adopcion.Admin
	if err := json.Unmarshal([]byte(rec.Profile), &admin); err != nil {
		return nil
	}
	return &admin
}

// Save overwrites both token and profile atomically (temp file + rename).
func (s *Store) Save(token string, profile *adopcion.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := record{Token: token}
	if profile != nil {
		blob, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("encoding profile: %w", err)
		}
		rec.Profile = string(blob)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("creating session file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear removes both token and profile. Clearing an empty store is not an
// error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
