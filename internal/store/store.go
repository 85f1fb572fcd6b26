package store

import (
	"context"
	"fmt"
	"strings"
)

// Keys under which the registry persists its three collections. They match
// the localStorage keys used by browser builds of the launcher.
const (
	KeyCustomSites   = "customSites"
	KeyNameOverrides = "customPopularSiteNames"
	KeyHiddenSites   = "hiddenPopularSites"
)

// BlobStore persists opaque blobs by key.
//
// Load returns (nil, nil) when the key has never been written.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Backend names accepted by LAUNCHPAD_STORE.
const (
	BackendDisk   = "disk"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ParseBackend validates a backend name.
func ParseBackend(s string) (string, error) {
	switch b := strings.ToLower(strings.TrimSpace(s)); b {
	case BackendDisk, BackendRedis, BackendSQLite, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("unknown store backend %q", s)
	}
}
