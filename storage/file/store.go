// Package file implements storage.CacheStore on a single local file.
//
// Saves write a temporary file in the target directory, sync it and rename
// it over the target, so readers see either the old or the new blob.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/poiesic/faqit/storage"
)

// Store is a file-backed cache store.
type Store struct {
	path   string
	mu     sync.RWMutex
	closed bool
	logger *slog.Logger
}

// NewStore creates a store for path. The parent directory is created if needed.
//
// Returns storage.CacheStore interface to enforce abstraction.
func NewStore(path string) (storage.CacheStore, error) {
	return newStore(path)
}

func newStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("file store: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}
	return &Store{
		path:   path,
		logger: slog.Default().With("component", "file-store", "path", path),
	}, nil
}

// LoadCache reads the whole file.
func (s *Store) LoadCache(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}
	return data, nil
}

// SaveCache atomically replaces the file.
func (s *Store) SaveCache(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("file store: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("file store: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("file store: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file store: close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("file store: rename: %w", err)
	}
	committed = true

	s.logger.Debug("saved cache", "bytes", len(data))
	return nil
}

// DeleteCache removes the file if present.
func (s *Store) DeleteCache(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file store: %w", err)
	}
	return nil
}

// Close marks the store closed. Further calls fail with storage.ErrStorageClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
