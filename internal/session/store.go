package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const tokenFile = "session_token"

// Store abstracts the durable key-value storage the bearer token survives
// process restarts in. Injectable so tests run without touching the disk.
type Store interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// FileStore keeps the token in a single file under a fixed directory,
// readable by the owning user only.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed token store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: strings.TrimSpace(dir)}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, tokenFile)
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(token), 0o600)
}

func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryStore is a Store kept entirely in memory, for tests and ephemeral runs.
type MemoryStore struct {
	token string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemoryStore) Load() (string, error) { return s.token, nil }

func (s *MemoryStore) Clear() error {
	s.token = ""
	return nil
}
