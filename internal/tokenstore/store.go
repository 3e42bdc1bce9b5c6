// Package tokenstore caches the Hive session token in a single file so
// repeated invocations do not hit the API's login rate limit.
package tokenstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/hheat/hheat/internal/logging"
)

// Store reads and writes one token file.
type Store struct {
	path string
}

// New returns a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the token file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached token. A missing file, an unreadable file and an
// empty file all report ok == false; the caller then logs in.
func (s *Store) Load() (token string, ok bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debug("No cached token", zap.String("path", s.path))
		} else {
			logging.Warn("Ignoring unreadable token file", zap.String("path", s.path), zap.Error(err))
		}
		return "", false
	}

	token = strings.TrimSpace(string(data))
	if token == "" {
		logging.Debug("Cached token file is empty", zap.String("path", s.path))
		return "", false
	}

	logging.Debug("Loaded cached token", zap.String("path", s.path))
	return token, true
}

// Save replaces the cached token. The file is written to a temporary sibling
// and renamed into place so a crash never leaves a truncated token.
func (s *Store) Save(token string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write temporary token file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save token file %s: %w", s.path, err)
	}

	logging.Debug("Saved token", zap.String("path", s.path))
	return nil
}
