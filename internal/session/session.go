// Package session persists the authenticated identity between invocations.
// It is the only client-side persisted state: everything else is refetched
// from the backend. The store is injected explicitly, hydrated once at
// startup and cleared on logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/medvault/medvault-cli/config"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/crypto"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrCorruptSession = errors.New("corrupt session file")
)

// Identity is the persisted session record.
type Identity struct {
	Username          string         `json:"username"`
	Role              authorize.Role `json:"role"`
	FirstLogin        bool           `json:"first_login"`
	IsProfileComplete bool           `json:"isProfileComplete"`
}

// Store reads and writes the identity file. When an encryption key is
// configured the record is AES-256-GCM encrypted at rest.
type Store struct {
	path string
	key  []byte
}

// NewStore creates a Store from config. An empty path falls back to
// $HOME/.medvault/session.json; an empty encryption key means the file is
// stored as plain JSON.
func NewStore(cfg config.SessionConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve session path: %w", err)
		}
		path = filepath.Join(home, ".medvault", "session.json")
	}
	s := &Store{path: path}
	if cfg.EncryptionKey != "" {
		key, err := crypto.KeyFromHex(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("session encryption key: %w", err)
		}
		s.key = key
	}
	return s, nil
}

// Load hydrates the persisted identity. Returns ErrNoSession when no session
// file exists.
func (s *Store) Load() (*Identity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	if s.key != nil {
		plain, err := crypto.Decrypt(s.key, string(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
		}
		data = []byte(plain)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if id.Username == "" || !authorize.IsValidRole(id.Role) {
		return nil, ErrCorruptSession
	}
	return &id, nil
}

// Save writes the identity, creating parent directories as needed. The file
// is owner-readable only.
func (s *Store) Save(id Identity) error {
	if id.Username == "" {
		return errors.New("save session: username is empty")
	}
	if !authorize.IsValidRole(id.Role) {
		return fmt.Errorf("save session: invalid role %q", id.Role)
	}

	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if s.key != nil {
		enc, err := crypto.Encrypt(s.key, string(data))
		if err != nil {
			return fmt.Errorf("encrypt session: %w", err)
		}
		data = []byte(enc)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
