package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingDeletionConfirm(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, nil)
	site, err := r.AddCustomSite(ctx, "", "a.com")
	require.NoError(t, err)

	p := NewPendingDeletion(r)
	token := p.Request(site)
	require.NotEmpty(t, token)

	pending, ok := p.Pending()
	require.True(t, ok)
	assert.Equal(t, site, pending.Site)

	_, err = p.Confirm(ctx, "wrong")
	assert.True(t, IsValidation(err))
	assert.Len(t, r.CustomSites(), 1, "wrong token must not delete")

	removed, err := p.Confirm(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, site, removed)
	assert.Empty(t, r.CustomSites())

	_, ok = p.Pending()
	assert.False(t, ok)

	_, err = p.Confirm(ctx, token)
	assert.True(t, IsNotFound(err))
}

func TestPendingDeletionCancelAndReplace(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, nil)
	a, err := r.AddCustomSite(ctx, "", "a.com")
	require.NoError(t, err)
	b, err := r.AddCustomSite(ctx, "", "b.com")
	require.NoError(t, err)

	p := NewPendingDeletion(r)
	first := p.Request(a)
	second := p.Request(b)
	assert.NotEqual(t, first, second)

	_, err = p.Confirm(ctx, first)
	assert.Error(t, err, "replaced request is stale")

	assert.True(t, p.Cancel())
	assert.False(t, p.Cancel())
	assert.Len(t, r.CustomSites(), 2)
}
