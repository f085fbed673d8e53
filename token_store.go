package identity

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-errors"
)

// FileTokenStore keeps the persisted token as a single file inside a
// client-local directory, named after the configured storage key.
type FileTokenStore struct {
	dir string
	key string
}

// NewFileTokenStore creates a file-backed token store rooted at dir.
func NewFileTokenStore(dir string, cfg Config) *FileTokenStore {
	key := DefaultStorageKey
	if cfg != nil && cfg.GetStorageKey() != "" {
		key = cfg.GetStorageKey()
	}
	return &FileTokenStore{dir: dir, key: key}
}

func (s *FileTokenStore) path() string {
	return filepath.Join(s.dir, s.key)
}

// Load reads the persisted token. A missing file means "logged out" and
// returns an empty string with no error.
func (s *FileTokenStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to read persisted token")
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the raw token, creating the storage directory when needed.
// The file is private to the current user.
func (s *FileTokenStore) Save(_ context.Context, raw string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to create token storage directory")
	}
	if err := os.WriteFile(s.path(), []byte(raw), 0o600); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to persist token")
	}
	return nil
}

// Clear removes the persisted token. Clearing an absent token is a no-op.
func (s *FileTokenStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, errors.CategoryInternal, "failed to remove persisted token")
	}
	return nil
}

var _ TokenStore = (*FileTokenStore)(nil)

// MemoryTokenStore is an in-process TokenStore, mainly for tests and
// ephemeral sessions.
type MemoryTokenStore struct {
	mu    sync.Mutex
	value string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

func (s *MemoryTokenStore) Save(_ context.Context, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = raw
	return nil
}

func (s *MemoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
	return nil
}

var _ TokenStore = (*MemoryTokenStore)(nil)
