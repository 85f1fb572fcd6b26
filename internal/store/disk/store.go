package disk

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// cacheSizeMax bounds diskv's read cache. The three collections are tiny.
const cacheSizeMax = 1024 * 1024

// Store keeps one file per collection under a base directory.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// NewStore creates a disk store rooted at basePath, creating it if needed.
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			CacheSizeMax: cacheSizeMax,
			FilePerm:     0o644,
			PathPerm:     0o755,
		}),
		basePath: basePath,
	}, nil
}

// Load reads a collection file; a missing file is not an error.
func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, nil
	}
	data, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return data, nil
}

// Save writes a collection file through a temp file and rename.
func (s *Store) Save(_ context.Context, key string, blob []byte) error {
	if err := s.d.WriteStream(key, bytes.NewReader(blob), true); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Ping checks that the base directory is still there.
func (s *Store) Ping(context.Context) error {
	info, err := os.Stat(s.basePath)
	if err != nil {
		return fmt.Errorf("store directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store path %s is not a directory", s.basePath)
	}
	return nil
}

func (s *Store) Close() error { return nil }
