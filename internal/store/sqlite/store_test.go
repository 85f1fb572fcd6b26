package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/launchpad/internal/logger"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := NewStore(path, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreSaveLoad(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "launchpad.db"))
	ctx := context.Background()

	blob, err := s.Load(ctx, "customPopularSiteNames")
	require.NoError(t, err)
	assert.Nil(t, blob)

	require.NoError(t, s.Save(ctx, "customPopularSiteNames", []byte(`{"a":"b"}`)))
	require.NoError(t, s.Save(ctx, "customPopularSiteNames", []byte(`{"a":"c"}`)))

	blob, err = s.Load(ctx, "customPopularSiteNames")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"c"}`, string(blob))

	var count int64
	require.NoError(t, s.db.Model(&Blob{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "save must upsert, not append")
}

func TestStoreKeysAreIndependent(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "launchpad.db"))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "customSites", []byte(`[]`)))
	require.NoError(t, s.Save(ctx, "hiddenPopularSites", []byte(`["x"]`)))

	sites, err := s.Load(ctx, "customSites")
	require.NoError(t, err)
	hidden, err := s.Load(ctx, "hiddenPopularSites")
	require.NoError(t, err)

	assert.Equal(t, `[]`, string(sites))
	assert.Equal(t, `["x"]`, string(hidden))
	assert.NoError(t, s.Ping(ctx))
}
