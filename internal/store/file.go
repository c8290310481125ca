// Package store provides TokenStore backends: a token file on disk for the
// CLI, a Redis slot for daemon deployments, and an in-memory store for
// tests. Each backend holds at most one token; Save supersedes atomically.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

const tokenFileMode = 0o600

// FileStore persists the token as a single file, the CLI analogue of the
// browser's localStorage slot.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path. When path is empty the
// default location under the user config directory is used.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("store: resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "creatorhub", "token")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load(_ context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("store: read token file: %w", err)
	}
	tok := strings.TrimSpace(string(raw))
	if tok == "" {
		return "", domain.ErrNoToken
	}
	return tok, nil
}

// Save writes the token via a temp file and rename so a crash mid-write
// never leaves a truncated slot.
func (s *FileStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("store: create token dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token+"\n"), tokenFileMode); err != nil {
		return fmt.Errorf("store: write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("store: replace token file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: remove token file: %w", err)
	}
	return nil
}
